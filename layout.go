package vertexlayout

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"

	"github.com/gogpu/gputypes"
)

// Attribute describes one field of a record as the pipeline reads it.
type Attribute struct {
	// Format is the data format of the field.
	Format Format

	// Offset is the byte offset of the field from the start of the record.
	Offset uint64

	// Slot is the shader location; it equals the field's declaration index.
	Slot uint32
}

// GPU converts the attribute to its gputypes form.
func (a Attribute) GPU() (gputypes.VertexAttribute, error) {
	f, err := a.Format.GPU()
	if err != nil {
		return gputypes.VertexAttribute{}, fmt.Errorf("location %d: %w", a.Slot, err)
	}
	return gputypes.VertexAttribute{
		Format:         f,
		Offset:         a.Offset,
		ShaderLocation: a.Slot,
	}, nil
}

// Layout is the immutable result of Build. It is safe for concurrent use
// and is meant to be built once per record type and shared.
type Layout struct {
	fields     []Field
	attributes []Attribute
	sumSize    uint64
	recordSize uint64
	hasRecord  bool
	stride     uint64
	policy     StridePolicy
}

// Stride returns the byte distance between consecutive records.
func (l *Layout) Stride() uint64 { return l.stride }

// SumSize returns the sum of the attribute sizes.
func (l *Layout) SumSize() uint64 { return l.sumSize }

// RecordSize returns the captured host record size, if any.
func (l *Layout) RecordSize() (uint64, bool) { return l.recordSize, l.hasRecord }

// StridePolicy returns the policy the stride was derived with.
func (l *Layout) StridePolicy() StridePolicy { return l.policy }

// Padding returns the bytes the host record carries beyond the declared
// attributes. It is 0 when no record size was captured.
func (l *Layout) Padding() uint64 {
	if !l.hasRecord || l.recordSize <= l.sumSize {
		return 0
	}
	return l.recordSize - l.sumSize
}

// Len returns the number of attributes.
func (l *Layout) Len() int { return len(l.attributes) }

// Attribute returns the i-th attribute.
func (l *Layout) Attribute(i int) Attribute { return l.attributes[i] }

// Attributes returns a copy of the attributes in slot order.
func (l *Layout) Attributes() []Attribute {
	return append([]Attribute(nil), l.attributes...)
}

// Fields returns a copy of the declared fields.
func (l *Layout) Fields() []Field {
	return append([]Field(nil), l.fields...)
}

// Describe projects the layout for the given step mode. Every descriptor of
// a layout shares the same stride and attribute list; only StepMode differs.
// The returned Attributes must not be modified.
func (l *Layout) Describe(mode StepMode) Descriptor {
	n := len(l.attributes)
	return Descriptor{
		Stride:     l.stride,
		Attributes: l.attributes[:n:n],
		StepMode:   mode,
	}
}

// Vertex returns the per-vertex descriptor.
func (l *Layout) Vertex() Descriptor { return l.Describe(StepModeVertex) }

// Instance returns the per-instance descriptor.
func (l *Layout) Instance() Descriptor { return l.Describe(StepModeInstance) }

// Descriptor is the vertex buffer description a render pipeline consumes.
type Descriptor struct {
	// Stride is the byte distance between consecutive records.
	Stride uint64

	// Attributes lists the fields in slot order.
	Attributes []Attribute

	// StepMode selects per-vertex or per-instance stepping.
	StepMode StepMode
}

// GPU converts the descriptor to a gputypes vertex buffer layout.
func (d Descriptor) GPU() (gputypes.VertexBufferLayout, error) {
	attrs := make([]gputypes.VertexAttribute, len(d.Attributes))
	for i, a := range d.Attributes {
		ga, err := a.GPU()
		if err != nil {
			return gputypes.VertexBufferLayout{}, err
		}
		attrs[i] = ga
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: d.Stride,
		StepMode:    d.StepMode.GPU(),
		Attributes:  attrs,
	}, nil
}

// Equal reports whether d and other describe the same buffer.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.Stride != other.Stride || d.StepMode != other.StepMode || len(d.Attributes) != len(other.Attributes) {
		return false
	}
	for i := range d.Attributes {
		if d.Attributes[i] != other.Attributes[i] {
			return false
		}
	}
	return true
}

// Hash computes an FNV-1a hash of the descriptor, suitable as part of a
// pipeline cache key. Equal descriptors hash equally.
func (d Descriptor) Hash() uint64 {
	h := fnv.New64a()
	hashWriteUint64(h, d.Stride)
	hashWriteUint32(h, uint32(d.StepMode))
	//nolint:gosec // G115: attribute count is bounded by GPU limits (< 32)
	hashWriteUint32(h, uint32(len(d.Attributes)))
	for i := range d.Attributes {
		a := &d.Attributes[i]
		hashWriteUint32(h, a.Slot)
		hashWriteUint32(h, uint32(a.Format))
		hashWriteUint64(h, a.Offset)
	}
	return h.Sum64()
}

func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:])
}

func hashWriteUint64(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}
