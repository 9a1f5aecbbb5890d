package uniform

import (
	"encoding/binary"
	"math"
)

// Kind is the shader type of a uniform block member.
type Kind int

const (
	KindMat4 Kind = iota
	KindVec3
	KindVec4
	KindInt
)

// size returns the byte size of a member of this kind.
func (k Kind) size() int {
	switch k {
	case KindMat4:
		return 64
	case KindVec3:
		return 12
	case KindVec4:
		return 16
	default:
		return 4
	}
}

// align returns the std140 base alignment of a member of this kind.
func (k Kind) align() int {
	switch k {
	case KindMat4, KindVec3, KindVec4:
		return 16
	default:
		return 4
	}
}

// Field describes one named member of a uniform block.
type Field struct {
	Name string
	Kind Kind
}

type member struct {
	offset int
	kind   Kind
}

// Block is a CPU-side uniform buffer laid out with std140 / WGSL uniform alignment rules.
// Values are stored little-endian and uploaded verbatim by the renderer backend.
// A Block is not safe for concurrent use; the renderer guards it.
type Block struct {
	label   string
	members map[string]member
	order   []string
	data    []byte
}

var _ Sink = &Block{}

// NewBlock lays out the given fields in order and allocates a zeroed buffer.
// The total size is rounded up to a multiple of 16 bytes.
//
// Parameters:
//   - label: debug label for the block
//   - fields: the members in declaration order
//
// Returns:
//   - *Block: the allocated block
func NewBlock(label string, fields ...Field) *Block {
	b := &Block{
		label:   label,
		members: make(map[string]member, len(fields)),
	}
	offset := 0
	for _, f := range fields {
		offset = alignUp(offset, f.Kind.align())
		b.members[f.Name] = member{offset: offset, kind: f.Kind}
		b.order = append(b.order, f.Name)
		offset += f.Kind.size()
	}
	b.data = make([]byte, alignUp(offset, 16))
	return b
}

// NewFrameBlock creates the per-frame block: view (0), projection (64), viewPosition (128); 144 bytes.
//
// Returns:
//   - *Block: the frame uniform block
func NewFrameBlock() *Block {
	return NewBlock("frame",
		Field{Name: View, Kind: KindMat4},
		Field{Name: Projection, Kind: KindMat4},
		Field{Name: ViewPosition, Kind: KindVec3},
	)
}

// NewObjectBlock creates the per-draw block: model (0), objectColor (64), bUseTexture (80),
// bUseLighting (84), objectTexture (88); 96 bytes.
//
// Returns:
//   - *Block: the object uniform block
func NewObjectBlock() *Block {
	return NewBlock("object",
		Field{Name: Model, Kind: KindMat4},
		Field{Name: ObjectColor, Kind: KindVec4},
		Field{Name: UseTexture, Kind: KindInt},
		Field{Name: UseLighting, Kind: KindInt},
		Field{Name: ObjectTexture, Kind: KindInt},
	)
}

// Label returns the debug label.
func (b *Block) Label() string {
	return b.label
}

// Size returns the block size in bytes.
func (b *Block) Size() int {
	return len(b.data)
}

// Has reports whether the block contains a member called name.
func (b *Block) Has(name string) bool {
	_, ok := b.members[name]
	return ok
}

// Offset returns the byte offset of the named member, or -1 if it is absent.
func (b *Block) Offset(name string) int {
	m, ok := b.members[name]
	if !ok {
		return -1
	}
	return m.offset
}

// Names returns the member names in declaration order.
func (b *Block) Names() []string {
	return append([]string(nil), b.order...)
}

// Bytes returns the raw block contents. The slice aliases the block's storage.
func (b *Block) Bytes() []byte {
	return b.data
}

func (b *Block) SetMat4(name string, m [16]float32) {
	if off, ok := b.lookup(name, KindMat4); ok {
		b.putFloats(off, m[:])
	}
}

func (b *Block) SetVec3(name string, v [3]float32) {
	if off, ok := b.lookup(name, KindVec3); ok {
		b.putFloats(off, v[:])
	}
}

func (b *Block) SetVec4(name string, v [4]float32) {
	if off, ok := b.lookup(name, KindVec4); ok {
		b.putFloats(off, v[:])
	}
}

func (b *Block) SetInt(name string, v int32) {
	if off, ok := b.lookup(name, KindInt); ok {
		binary.LittleEndian.PutUint32(b.data[off:], uint32(v))
	}
}

// Float reads back the float32 at the given member and component index.
//
// Parameters:
//   - name: the member name
//   - index: component index within the member
//
// Returns:
//   - float32: the stored value
//   - bool: false if the member is absent or the index is out of range
func (b *Block) Float(name string, index int) (float32, bool) {
	m, ok := b.members[name]
	if !ok || m.kind == KindInt || index < 0 || index*4 >= m.kind.size() {
		return 0, false
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b.data[m.offset+index*4:])), true
}

// Int reads back an integer member.
func (b *Block) Int(name string) (int32, bool) {
	m, ok := b.members[name]
	if !ok || m.kind != KindInt {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(b.data[m.offset:])), true
}

// lookup returns the offset of name when it exists with the expected kind.
func (b *Block) lookup(name string, kind Kind) (int, bool) {
	m, ok := b.members[name]
	if !ok || m.kind != kind {
		return 0, false
	}
	return m.offset, true
}

func (b *Block) putFloats(offset int, values []float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(b.data[offset+i*4:], math.Float32bits(v))
	}
}

func alignUp(v, a int) int {
	return (v + a - 1) / a * a
}
