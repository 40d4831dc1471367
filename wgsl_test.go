package vertexlayout

import (
	"errors"
	"strings"
	"testing"
)

func TestLayoutWGSL(t *testing.T) {
	l, err := For[testVertex]()
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	got, err := l.WGSL("VertexInput")
	if err != nil {
		t.Fatalf("WGSL() error = %v", err)
	}

	want := "struct VertexInput {\n" +
		"    @location(0) position: vec4<f32>,\n" +
		"    @location(1) color: vec3<f32>,\n" +
		"    @location(2) uv: vec2<f32>,\n" +
		"    @location(3) weight: f32,\n" +
		"}\n"
	if got != want {
		t.Errorf("WGSL() =\n%s\nwant\n%s", got, want)
	}
}

func TestLayoutWGSLUnnamed(t *testing.T) {
	l, err := BuildTypes(UVec2, Sint32)
	if err != nil {
		t.Fatalf("BuildTypes() error = %v", err)
	}
	got, err := l.WGSL("In")
	if err != nil {
		t.Fatalf("WGSL() error = %v", err)
	}
	for _, line := range []string{"@location(0) attr0: vec2<u32>,", "@location(1) attr1: i32,"} {
		if !strings.Contains(got, line) {
			t.Errorf("WGSL() missing %q:\n%s", line, got)
		}
	}
}

func TestLayoutWGSLFloat64(t *testing.T) {
	l, err := BuildTypes(Vec3, DVec2)
	if err != nil {
		t.Fatalf("BuildTypes() error = %v", err)
	}
	if _, err := l.WGSL("In"); !errors.Is(err, ErrNoShaderType) {
		t.Errorf("WGSL() err = %v, want ErrNoShaderType", err)
	}
	if err := l.ValidateWGSL(); !errors.Is(err, ErrNoShaderType) {
		t.Errorf("ValidateWGSL() err = %v, want ErrNoShaderType", err)
	}
}

func TestWGSLMemberName(t *testing.T) {
	tests := []struct {
		name string
		slot uint32
		want string
	}{
		{"", 3, "attr3"},
		{"_", 1, "attr1"},
		{"Position", 0, "position"},
		{"UV", 2, "uv"},
		{"URLPath", 2, "urlPath"},
		{"baseVertex.Normal", 1, "baseVertex_Normal"},
		{"tex-coord", 2, "tex_coord"},
		{"2nd", 4, "attr4_2nd"},
		{"__x", 0, "attr0___x"},
		{"Var", 0, "var_"},
		{"Loop", 1, "loop_"},
		{"Struct", 2, "struct_"},
		{"Fn", 3, "fn_"},
		{"Let", 0, "let_"},
		{"Self", 1, "self_"},
		{"Target", 2, "target_"},
		{"Variable", 3, "variable"},
	}
	for _, tt := range tests {
		if got := wgslMemberName(tt.name, tt.slot); got != tt.want {
			t.Errorf("wgslMemberName(%q, %d) = %q, want %q", tt.name, tt.slot, got, tt.want)
		}
	}
}

type keywordVertex struct {
	Var    [3]float32
	Loop   float32
	Struct [2]uint32
	Fn     int32
}

func TestValidateWGSLKeywordNames(t *testing.T) {
	l, err := For[keywordVertex]()
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	src, err := l.WGSL("VertexInput")
	if err != nil {
		t.Fatalf("WGSL() error = %v", err)
	}
	for _, line := range []string{
		"@location(0) var_: vec3<f32>,",
		"@location(1) loop_: f32,",
		"@location(2) struct_: vec2<u32>,",
		"@location(3) fn_: i32,",
	} {
		if !strings.Contains(src, line) {
			t.Errorf("WGSL() missing %q:\n%s", line, src)
		}
	}

	if err := l.ValidateWGSL(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("ValidateWGSL() error = %v", err)
	}
}

// TestValidateWGSL compiles the generated vertex input with naga.
func TestValidateWGSL(t *testing.T) {
	layouts := map[string][]ValueType{
		"floats":   {Vec4, Vec3, Vec2, Float32},
		"integers": {UVec4, IVec2, Uint32, Sint32},
		"empty":    nil,
	}
	for name, types := range layouts {
		t.Run(name, func(t *testing.T) {
			l, err := BuildTypes(types...)
			if err != nil {
				t.Fatalf("BuildTypes() error = %v", err)
			}
			if err := l.ValidateWGSL(); err != nil {
				errStr := err.Error()
				if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
					t.Skipf("Skipping: naga feature not yet implemented: %v", err)
				}
				t.Fatalf("ValidateWGSL() error = %v", err)
			}
		})
	}
}
