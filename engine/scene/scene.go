package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-view/engine/mesh"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer/uniform"
)

// Target is where a scene draws: it accepts the per-object uniforms and then
// draws one primitive with them.
type Target interface {
	uniform.Sink

	// Draw issues a draw of the uploaded mesh for shape using the current object uniforms.
	//
	// Parameters:
	//   - shape: the primitive to draw
	//
	// Returns:
	//   - error: error if the mesh has not been uploaded or the draw fails
	Draw(shape mesh.Shape) error
}

// MeshUploader receives generated meshes before the first frame.
type MeshUploader interface {
	// UploadMesh creates the GPU buffers for a primitive.
	//
	// Parameters:
	//   - shape: the primitive the mesh belongs to
	//   - m: the generated mesh
	//
	// Returns:
	//   - error: error if buffer creation fails
	UploadMesh(shape mesh.Shape, m mesh.Mesh) error
}

// Scene is an ordered list of draw commands.
// Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Commands returns a copy of the draw commands in draw order.
	//
	// Returns:
	//   - []DrawCommand: the draw commands
	Commands() []DrawCommand

	// Count returns the number of draw commands.
	Count() int

	// Add appends draw commands. Shapes not seen before are built on the next Prepare.
	//
	// Parameters:
	//   - commands: the commands to append
	Add(commands ...DrawCommand)

	// Clear removes all draw commands. Uploaded meshes are kept.
	Clear()

	// Prepare generates the mesh of every shape referenced by the commands on the worker
	// pool and uploads each one once. Shapes already uploaded are skipped.
	//
	// Parameters:
	//   - uploader: receives each generated mesh
	//
	// Returns:
	//   - error: the joined upload errors, if any
	Prepare(uploader MeshUploader) error

	// Render evaluates each command in order: model matrix, object color,
	// texturing and lighting off, then draw.
	//
	// Parameters:
	//   - target: the uniform sink and draw surface
	//
	// Returns:
	//   - error: the first draw error, wrapped with the command name
	Render(target Target) error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	commands []DrawCommand
	uploaded map[mesh.Shape]bool

	// buildPool runs mesh generation in Prepare.
	buildPool    worker.DynamicWorkerPool
	buildWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new, inactive, empty Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:           &sync.RWMutex{},
		name:         name,
		uploaded:     make(map[mesh.Shape]bool),
		buildWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithBuildWorkers can override the default.
	s.buildPool = worker.NewDynamicWorkerPool(s.buildWorkers, 256, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Commands() []DrawCommand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]DrawCommand(nil), s.commands...)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.commands)
}

func (s *scene) Add(commands ...DrawCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, commands...)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = s.commands[:0]
}

func (s *scene) Prepare(uploader MeshUploader) error {
	if uploader == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []mesh.Shape
	seen := make(map[mesh.Shape]bool)
	for _, cmd := range s.commands {
		if s.uploaded[cmd.Shape] || seen[cmd.Shape] {
			continue
		}
		seen[cmd.Shape] = true
		pending = append(pending, cmd.Shape)
	}
	if len(pending) == 0 {
		return nil
	}

	// Phase 1: build every mesh on the pool. Each task owns one slot of built,
	// and the WaitGroup is the barrier before upload.
	built := make([]mesh.Mesh, len(pending))
	var wg sync.WaitGroup
	for i, shape := range pending {
		wg.Add(1)
		s.buildPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				built[i] = mesh.Build(shape)
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Phase 2: upload serially, the GPU queue is single-threaded.
	var errs []error
	for i, shape := range pending {
		if err := uploader.UploadMesh(shape, built[i]); err != nil {
			errs = append(errs, fmt.Errorf("scene %q: upload %s: %w", s.name, shape, err))
			continue
		}
		s.uploaded[shape] = true
	}
	return errors.Join(errs...)
}

func (s *scene) Render(target Target) error {
	if target == nil {
		return nil
	}

	s.mu.RLock()
	commands := append([]DrawCommand(nil), s.commands...)
	s.mu.RUnlock()

	for _, cmd := range commands {
		target.SetMat4(uniform.Model, cmd.ModelMatrix())
		target.SetVec4(uniform.ObjectColor, cmd.Color)
		target.SetInt(uniform.UseTexture, 0)
		target.SetInt(uniform.UseLighting, 0)
		if err := target.Draw(cmd.Shape); err != nil {
			return fmt.Errorf("scene: draw %q: %w", cmd.label(), err)
		}
	}
	return nil
}
