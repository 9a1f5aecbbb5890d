package renderer

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-view/engine/mesh"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/scene.wgsl
var sceneShaderSource string

const (
	sceneVertexEntry   = "vs_main"
	sceneFragmentEntry = "fs_main"
)

// meshVertexLayout matches mesh.Vertex: position at location 0, normal at location 1.
var meshVertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: mesh.VertexStride,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
	},
}

// alphaBlend is standard source-over blending.
var alphaBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
}
