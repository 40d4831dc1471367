// Package vertexlayout derives vertex buffer layouts for WebGPU render
// pipelines from the ordered field types of a packed record.
//
// # Overview
//
// A record is declared once as an ordered list of field types. Build walks
// the list, looks each type up in a Registry and assigns it a format, a byte
// offset and a shader location:
//
//	layout, err := vertexlayout.BuildTypes(
//	    vertexlayout.Vec4,    // float32x4, offset 0,  location 0
//	    vertexlayout.Vec3,    // float32x3, offset 16, location 1
//	    vertexlayout.Vec2,    // float32x2, offset 28, location 2
//	    vertexlayout.Float32, // float32,   offset 36, location 3
//	)
//	// layout.Stride() == 40
//
// Go structs can be registered directly; their fields are read in
// declaration order at initialization time:
//
//	type Vertex struct {
//	    Position [3]float32
//	    UV       [2]float32
//	}
//
//	var vertexLayout = vertexlayout.MustFor[Vertex]()
//
// # Descriptors
//
// A Layout is immutable. Describe projects it as a per-vertex or
// per-instance Descriptor; both share the same stride and attributes.
// Descriptor.GPU converts to gputypes.VertexBufferLayout, and the pipeline
// subpackage assembles the vertex stage of a gogpu/wgpu render pipeline.
//
// # Stride
//
// By default the stride is the sum of the attribute sizes, which always
// agrees with the offsets. For wraps a Go struct whose in-memory size may
// include alignment padding; that size is captured as the record size and
// Padding reports the difference. WithStridePolicy(StrideRecordSize) strides
// by the record size instead.
//
// # Errors
//
// A field type missing from the registry fails the whole build with an
// *UnsupportedTypeError naming the field. There is no partial layout.
//
// # Thread Safety
//
// Layouts, Descriptors and Registries are read-only and safe for concurrent
// use. Cache is internally synchronized.
package vertexlayout
