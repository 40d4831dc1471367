package vertexlayout

import (
	"fmt"
	"strconv"
	"strings"
)

// ElementKind is the scalar type of each component of a host field.
type ElementKind uint8

const (
	KindInvalid ElementKind = iota
	KindFloat32
	KindFloat64
	KindUint32
	KindSint32

	// The kinds below describe host data that has no vertex format in the
	// default registry. They exist so schemas can name them and fail cleanly.

	KindFloat16
	KindUint8
	KindBool
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindFloat32: "f32",
	KindFloat64: "f64",
	KindUint32:  "u32",
	KindSint32:  "i32",
	KindFloat16: "f16",
	KindUint8:   "u8",
	KindBool:    "bool",
}

// String returns the short scalar name, e.g. "f32".
func (k ElementKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Size returns the byte size of one component of this kind.
func (k ElementKind) Size() uint64 {
	switch k {
	case KindFloat32, KindUint32, KindSint32:
		return 4
	case KindFloat64:
		return 8
	case KindFloat16:
		return 2
	case KindUint8, KindBool:
		return 1
	}
	return 0
}

func parseKind(s string) (ElementKind, bool) {
	for k, name := range kindNames {
		if k != int(KindInvalid) && name == s {
			return ElementKind(k), true
		}
	}
	return KindInvalid, false
}

// Shape is the structural form of a host field.
type Shape uint8

const (
	// ShapeScalar is a bare scalar such as float32.
	ShapeScalar Shape = iota
	// ShapeVector is a named math vector such as Vec3 or IVec2.
	ShapeVector
	// ShapeTuple is an anonymous group of same-kind scalars, e.g. struct{X, Y float32}.
	ShapeTuple
	// ShapeArray is a fixed-size array such as [3]float32.
	ShapeArray
	// ShapeMatrix is a square matrix; Len is the column count.
	ShapeMatrix
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeVector:
		return "vector"
	case ShapeTuple:
		return "tuple"
	case ShapeArray:
		return "array"
	case ShapeMatrix:
		return "matrix"
	}
	return "shape(" + strconv.Itoa(int(s)) + ")"
}

// ValueType identifies the shape of a host field: how many components of
// which element kind, and how they are grouped. ValueType is comparable
// and used directly as a Registry key.
type ValueType struct {
	Shape Shape
	Kind  ElementKind
	// Len is the component count for vectors, tuples and arrays.
	// It is 1 for scalars.
	Len int
}

// Scalars.
var (
	Float32 = ValueType{Shape: ShapeScalar, Kind: KindFloat32, Len: 1}
	Float64 = ValueType{Shape: ShapeScalar, Kind: KindFloat64, Len: 1}
	Uint32  = ValueType{Shape: ShapeScalar, Kind: KindUint32, Len: 1}
	Sint32  = ValueType{Shape: ShapeScalar, Kind: KindSint32, Len: 1}
)

// Named vectors.
var (
	Vec2 = Vector(KindFloat32, 2)
	Vec3 = Vector(KindFloat32, 3)
	Vec4 = Vector(KindFloat32, 4)

	DVec2 = Vector(KindFloat64, 2)
	DVec3 = Vector(KindFloat64, 3)
	DVec4 = Vector(KindFloat64, 4)

	UVec2 = Vector(KindUint32, 2)
	UVec3 = Vector(KindUint32, 3)
	UVec4 = Vector(KindUint32, 4)

	IVec2 = Vector(KindSint32, 2)
	IVec3 = Vector(KindSint32, 3)
	IVec4 = Vector(KindSint32, 4)
)

// Scalar returns the scalar value type of the given kind.
func Scalar(kind ElementKind) ValueType {
	return ValueType{Shape: ShapeScalar, Kind: kind, Len: 1}
}

// Vector returns a named vector of n components.
func Vector(kind ElementKind, n int) ValueType {
	return ValueType{Shape: ShapeVector, Kind: kind, Len: n}
}

// Tuple returns an anonymous tuple of n components.
func Tuple(kind ElementKind, n int) ValueType {
	return ValueType{Shape: ShapeTuple, Kind: kind, Len: n}
}

// Array returns a fixed-size array of n components.
func Array(kind ElementKind, n int) ValueType {
	return ValueType{Shape: ShapeArray, Kind: kind, Len: n}
}

// Matrix returns an n x n matrix.
func Matrix(kind ElementKind, n int) ValueType {
	return ValueType{Shape: ShapeMatrix, Kind: kind, Len: n}
}

// String renders the type the way ParseValueType reads it:
// "f32", "vec3<f32>", "(u32,u32)", "[4]i32", "mat4x4<f32>".
func (t ValueType) String() string {
	switch t.Shape {
	case ShapeScalar:
		return t.Kind.String()
	case ShapeVector:
		return fmt.Sprintf("vec%d<%s>", t.Len, t.Kind)
	case ShapeTuple:
		parts := make([]string, max(t.Len, 0))
		for i := range parts {
			parts[i] = t.Kind.String()
		}
		if t.Len == 1 {
			return "(" + parts[0] + ",)"
		}
		return "(" + strings.Join(parts, ",") + ")"
	case ShapeArray:
		return fmt.Sprintf("[%d]%s", t.Len, t.Kind)
	case ShapeMatrix:
		return fmt.Sprintf("mat%dx%d<%s>", t.Len, t.Len, t.Kind)
	}
	return fmt.Sprintf("%s(%s,%d)", t.Shape, t.Kind, t.Len)
}

// ParseValueType parses the textual form produced by ValueType.String.
// Parsing succeeds for well-formed types whether or not a registry
// supports them.
func ParseValueType(s string) (ValueType, error) {
	in := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	bad := func() (ValueType, error) {
		return ValueType{}, fmt.Errorf("%w: %q", ErrInvalidTypeName, s)
	}

	switch {
	case strings.HasPrefix(in, "vec") && strings.HasSuffix(in, ">"):
		n, kind, ok := parseGeneric(in[len("vec"):])
		if !ok {
			return bad()
		}
		return Vector(kind, n), nil

	case strings.HasPrefix(in, "mat") && strings.HasSuffix(in, ">"):
		dims, rest, found := strings.Cut(in[len("mat"):], "x")
		if !found {
			return bad()
		}
		n, kind, ok := parseGeneric(rest)
		if !ok || dims != strconv.Itoa(n) {
			return bad()
		}
		return Matrix(kind, n), nil

	case strings.HasPrefix(in, "["):
		size, elem, found := strings.Cut(in[1:], "]")
		if !found {
			return bad()
		}
		n, err := strconv.Atoi(size)
		kind, ok := parseKind(elem)
		if err != nil || !ok || n < 1 {
			return bad()
		}
		return Array(kind, n), nil

	case strings.HasPrefix(in, "(") && strings.HasSuffix(in, ")"):
		body := strings.TrimSuffix(in[1:len(in)-1], ",")
		if body == "" {
			return bad()
		}
		parts := strings.Split(body, ",")
		kind, ok := parseKind(parts[0])
		if !ok {
			return bad()
		}
		for _, p := range parts[1:] {
			if k, ok := parseKind(p); !ok || k != kind {
				return bad()
			}
		}
		return Tuple(kind, len(parts)), nil
	}

	kind, ok := parseKind(in)
	if !ok {
		return bad()
	}
	return Scalar(kind), nil
}

// parseGeneric parses "N<kind>".
func parseGeneric(s string) (int, ElementKind, bool) {
	num, rest, found := strings.Cut(s, "<")
	if !found {
		return 0, KindInvalid, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, KindInvalid, false
	}
	kind, ok := parseKind(strings.TrimSuffix(rest, ">"))
	if !ok {
		return 0, KindInvalid, false
	}
	return n, kind, true
}
