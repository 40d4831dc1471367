package vertexlayout

import (
	"errors"
	"testing"
)

func TestValueTypeString(t *testing.T) {
	tests := []struct {
		typ  ValueType
		want string
	}{
		{Float32, "f32"},
		{Sint32, "i32"},
		{Vec3, "vec3<f32>"},
		{UVec2, "vec2<u32>"},
		{Tuple(KindFloat64, 2), "(f64,f64)"},
		{Tuple(KindUint32, 1), "(u32,)"},
		{Array(KindSint32, 4), "[4]i32"},
		{Matrix(KindFloat32, 4), "mat4x4<f32>"},
		{Scalar(KindFloat16), "f16"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseValueTypeRoundTrip(t *testing.T) {
	types := append(DefaultRegistry().Types(),
		Scalar(KindBool),
		Tuple(KindUint8, 4),
		Array(KindFloat32, 9),
		Matrix(KindFloat32, 3),
	)
	for _, typ := range types {
		got, err := ParseValueType(typ.String())
		if err != nil {
			t.Errorf("ParseValueType(%q) error = %v", typ.String(), err)
			continue
		}
		if got != typ {
			t.Errorf("ParseValueType(%q) = %+v, want %+v", typ.String(), got, typ)
		}
	}
}

func TestParseValueTypeSpacing(t *testing.T) {
	got, err := ParseValueType(" vec3< f32 > ")
	if err != nil || got != Vec3 {
		t.Errorf("ParseValueType with spaces = %v, %v", got, err)
	}
	got, err = ParseValueType("(i32, i32)")
	if err != nil || got != Tuple(KindSint32, 2) {
		t.Errorf("ParseValueType tuple with spaces = %v, %v", got, err)
	}
}

func TestParseValueTypeInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"float",
		"vec<f32>",
		"vec3<f33>",
		"vec0<f32>",
		"[]f32",
		"[x]f32",
		"[0]f32",
		"()",
		"(f32,u32)",
		"mat4x3<f32>",
		"mat4<f32>",
	} {
		if _, err := ParseValueType(s); !errors.Is(err, ErrInvalidTypeName) {
			t.Errorf("ParseValueType(%q) err = %v, want ErrInvalidTypeName", s, err)
		}
	}
}
