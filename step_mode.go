package vertexlayout

import "github.com/gogpu/gputypes"

// StepMode selects whether a vertex buffer advances per vertex or per instance.
type StepMode uint8

const (
	// StepModeVertex advances once per rendered vertex.
	StepModeVertex StepMode = iota
	// StepModeInstance advances once per rendered instance.
	StepModeInstance
)

func (m StepMode) String() string {
	switch m {
	case StepModeVertex:
		return "vertex"
	case StepModeInstance:
		return "instance"
	}
	return "unknown"
}

// GPU returns the gputypes step mode.
func (m StepMode) GPU() gputypes.VertexStepMode {
	if m == StepModeInstance {
		return gputypes.VertexStepModeInstance
	}
	return gputypes.VertexStepModeVertex
}

// ParseStepMode parses "vertex" or "instance".
func ParseStepMode(s string) (StepMode, bool) {
	switch s {
	case "vertex":
		return StepModeVertex, true
	case "instance":
		return StepModeInstance, true
	}
	return StepModeVertex, false
}
