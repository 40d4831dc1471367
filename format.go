package vertexlayout

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format is the device-facing data format of a single vertex attribute.
// Each value corresponds to exactly one (element kind, component count) pair.
type Format uint8

const (
	// FormatUndefined is the zero value and never produced by a Registry.
	FormatUndefined Format = iota

	FormatFloat32
	FormatFloat32x2
	FormatFloat32x3
	FormatFloat32x4

	FormatFloat64
	FormatFloat64x2
	FormatFloat64x3
	FormatFloat64x4

	FormatUint32
	FormatUint32x2
	FormatUint32x3
	FormatUint32x4

	FormatSint32
	FormatSint32x2
	FormatSint32x3
	FormatSint32x4

	formatCount
)

// formatInfo describes one Format.
type formatInfo struct {
	name       string
	kind       ElementKind
	components uint8
	gpu        gputypes.VertexFormat
	hasGPU     bool
	wgsl       string
}

var formatTable = [formatCount]formatInfo{
	FormatUndefined: {name: "undefined"},

	FormatFloat32:   {"float32", KindFloat32, 1, gputypes.VertexFormatFloat32, true, "f32"},
	FormatFloat32x2: {"float32x2", KindFloat32, 2, gputypes.VertexFormatFloat32x2, true, "vec2<f32>"},
	FormatFloat32x3: {"float32x3", KindFloat32, 3, gputypes.VertexFormatFloat32x3, true, "vec3<f32>"},
	FormatFloat32x4: {"float32x4", KindFloat32, 4, gputypes.VertexFormatFloat32x4, true, "vec4<f32>"},

	// WebGPU has no 64-bit vertex formats and WGSL has no f64.
	FormatFloat64:   {name: "float64", kind: KindFloat64, components: 1},
	FormatFloat64x2: {name: "float64x2", kind: KindFloat64, components: 2},
	FormatFloat64x3: {name: "float64x3", kind: KindFloat64, components: 3},
	FormatFloat64x4: {name: "float64x4", kind: KindFloat64, components: 4},

	FormatUint32:   {"uint32", KindUint32, 1, gputypes.VertexFormatUint32, true, "u32"},
	FormatUint32x2: {"uint32x2", KindUint32, 2, gputypes.VertexFormatUint32x2, true, "vec2<u32>"},
	FormatUint32x3: {"uint32x3", KindUint32, 3, gputypes.VertexFormatUint32x3, true, "vec3<u32>"},
	FormatUint32x4: {"uint32x4", KindUint32, 4, gputypes.VertexFormatUint32x4, true, "vec4<u32>"},

	FormatSint32:   {"sint32", KindSint32, 1, gputypes.VertexFormatSint32, true, "i32"},
	FormatSint32x2: {"sint32x2", KindSint32, 2, gputypes.VertexFormatSint32x2, true, "vec2<i32>"},
	FormatSint32x3: {"sint32x3", KindSint32, 3, gputypes.VertexFormatSint32x3, true, "vec3<i32>"},
	FormatSint32x4: {"sint32x4", KindSint32, 4, gputypes.VertexFormatSint32x4, true, "vec4<i32>"},
}

// FormatFor returns the format for n components of the given kind.
// ok is false when no such format exists.
func FormatFor(kind ElementKind, n int) (f Format, ok bool) {
	if n < 1 || n > 4 {
		return FormatUndefined, false
	}
	var base Format
	switch kind {
	case KindFloat32:
		base = FormatFloat32
	case KindFloat64:
		base = FormatFloat64
	case KindUint32:
		base = FormatUint32
	case KindSint32:
		base = FormatSint32
	default:
		return FormatUndefined, false
	}
	return base + Format(n-1), true
}

func (f Format) info() formatInfo {
	if f >= formatCount {
		return formatInfo{}
	}
	return formatTable[f]
}

// Valid reports whether f is a defined, non-undefined format.
func (f Format) Valid() bool {
	return f > FormatUndefined && f < formatCount
}

// Kind returns the element kind of each component.
func (f Format) Kind() ElementKind { return f.info().kind }

// Components returns the number of components (1-4), or 0 for invalid formats.
func (f Format) Components() int { return int(f.info().components) }

// Size returns the byte size of one attribute of this format.
func (f Format) Size() uint64 {
	return uint64(f.info().components) * f.Kind().Size()
}

// String returns the lowercase WebGPU-style name, e.g. "float32x3".
func (f Format) String() string {
	if !f.Valid() && f != FormatUndefined {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return f.info().name
}

// GPU returns the equivalent gputypes vertex format.
// Formats without a WebGPU equivalent return ErrNoGPUFormat.
func (f Format) GPU() (gputypes.VertexFormat, error) {
	info := f.info()
	if !info.hasGPU {
		return 0, fmt.Errorf("%w: %s", ErrNoGPUFormat, f)
	}
	return info.gpu, nil
}

// WGSLType returns the WGSL type a shader uses to read this format.
func (f Format) WGSLType() (string, error) {
	info := f.info()
	if info.wgsl == "" {
		return "", fmt.Errorf("%w: %s", ErrNoShaderType, f)
	}
	return info.wgsl, nil
}
