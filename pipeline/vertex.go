package pipeline

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/vertexlayout"
	"github.com/gogpu/wgpu/hal"
)

// ErrLocationConflict is returned when two buffers of one pipeline use the
// same shader location.
var ErrLocationConflict = errors.New("pipeline: shader location used by more than one vertex buffer")

// VertexBuffers converts descriptors into the buffer layouts of one
// pipeline, in buffer slot order.
func VertexBuffers(descs ...vertexlayout.Descriptor) ([]gputypes.VertexBufferLayout, error) {
	owner := make(map[uint32]int)
	layouts := make([]gputypes.VertexBufferLayout, 0, len(descs))
	for i, d := range descs {
		for _, a := range d.Attributes {
			if prev, ok := owner[a.Slot]; ok {
				return nil, fmt.Errorf("%w: location %d in buffers %d and %d",
					ErrLocationConflict, a.Slot, prev, i)
			}
			owner[a.Slot] = i
		}
		layout, err := d.GPU()
		if err != nil {
			return nil, fmt.Errorf("pipeline: buffer %d: %w", i, err)
		}
		layouts = append(layouts, layout)
	}
	return layouts, nil
}

// VertexState builds the vertex stage of a render pipeline reading the given
// buffers with the shader entry point of module.
func VertexState(module hal.ShaderModule, entryPoint string, descs ...vertexlayout.Descriptor) (hal.VertexState, error) {
	buffers, err := VertexBuffers(descs...)
	if err != nil {
		return hal.VertexState{}, err
	}
	vertexlayout.Logger().Debug("pipeline: vertex state",
		"entry", entryPoint,
		"buffers", len(buffers))
	return hal.VertexState{
		Module:     module,
		EntryPoint: entryPoint,
		Buffers:    buffers,
	}, nil
}

// Relocate returns a copy of d whose shader locations start at base instead
// of 0. Use it to place a per-instance buffer after a per-vertex buffer.
// d itself is not modified.
func Relocate(d vertexlayout.Descriptor, base uint32) vertexlayout.Descriptor {
	attrs := make([]vertexlayout.Attribute, len(d.Attributes))
	for i, a := range d.Attributes {
		a.Slot += base
		attrs[i] = a
	}
	d.Attributes = attrs
	return d
}
