// Package pipeline turns vertexlayout descriptors into the vertex stage
// inputs of a gogpu/wgpu render pipeline.
//
// A pipeline usually reads one per-vertex buffer and optionally one
// per-instance buffer. Each buffer's layout numbers its shader locations
// from 0, so later buffers are moved past earlier ones with Relocate:
//
//	mesh := vertexlayout.MustFor[MeshVertex]()
//	inst := vertexlayout.MustFor[InstanceData]()
//	state, err := pipeline.VertexState(module, "vs_main",
//	    mesh.Vertex(),
//	    pipeline.Relocate(inst.Instance(), uint32(mesh.Len())))
package pipeline
