package vertexlayout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/naga"
)

// WGSL renders a WGSL struct that reads this layout as vertex input:
//
//	struct VertexInput {
//	    @location(0) position: vec3<f32>,
//	    @location(1) uv: vec2<f32>,
//	}
//
// Member names come from the field names with the leading capital or
// initialism lowercased and dots replaced by underscores. Unnamed fields
// become attr<slot>; names that collide with a WGSL keyword or reserved
// word get a trailing underscore ("Var" -> "var_").
// Layouts with 64-bit float attributes return ErrNoShaderType.
func (l *Layout) WGSL(structName string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "struct %s {\n", structName)
	for i, a := range l.attributes {
		typ, err := a.Format.WGSLType()
		if err != nil {
			return "", fmt.Errorf("location %d: %w", a.Slot, err)
		}
		fmt.Fprintf(&b, "    @location(%d) %s: %s,\n", a.Slot, wgslMemberName(l.fields[i].Name, a.Slot), typ)
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// ValidateWGSL compiles a minimal vertex shader consuming the layout's WGSL
// struct. It reports whether a shader can bind this layout as declared.
func (l *Layout) ValidateWGSL() error {
	src, err := l.vertexShaderWGSL()
	if err != nil {
		return err
	}
	if _, err := naga.Compile(src); err != nil {
		return fmt.Errorf("vertexlayout: compile vertex input: %w", err)
	}
	return nil
}

// vertexShaderWGSL wraps the input struct in a pass-through vertex entry point.
func (l *Layout) vertexShaderWGSL() (string, error) {
	if len(l.attributes) == 0 {
		return "@vertex\nfn vs_main() -> @builtin(position) vec4<f32> {\n    return vec4<f32>(0.0, 0.0, 0.0, 1.0);\n}\n", nil
	}
	input, err := l.WGSL("VertexInput")
	if err != nil {
		return "", err
	}
	return input + "\n@vertex\nfn vs_main(in: VertexInput) -> @builtin(position) vec4<f32> {\n" +
		"    return vec4<f32>(0.0, 0.0, 0.0, 1.0);\n}\n", nil
}

func wgslMemberName(name string, slot uint32) string {
	if name == "" || name == "_" {
		return "attr" + strconv.FormatUint(uint64(slot), 10)
	}
	r := []rune(strings.ReplaceAll(name, ".", "_"))
	// Lowercase the leading initialism: "UV" -> "uv", "URLPath" -> "urlPath".
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) && unicode.IsLower(r[n]) {
		n--
	}
	for i := range n {
		r[i] = unicode.ToLower(r[i])
	}
	for i, c := range r {
		if c != '_' && !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			r[i] = '_'
		}
	}
	if unicode.IsDigit(r[0]) || strings.HasPrefix(string(r), "__") {
		return "attr" + strconv.FormatUint(uint64(slot), 10) + "_" + string(r)
	}
	out := string(r)
	if _, reserved := wgslReserved[out]; reserved {
		return out + "_"
	}
	return out
}

// wgslReserved holds the WGSL keywords and reserved words, none of which
// may be used as an identifier.
var wgslReserved = func() map[string]struct{} {
	words := strings.Fields(`
		alias break case const const_assert continue continuing default
		diagnostic discard else enable false fn for if let loop override
		requires return struct switch true var while

		NULL Self abstract active alignas alignof as asm asm_fragment async
		attribute auto await become binding_array cast catch class co_await
		co_return co_yield coherent column_major common compile
		compile_fragment concept const_cast consteval constexpr constinit
		crate debugger decltype delete demote demote_to_helper do
		dynamic_cast enum explicit export extends extern external
		fallthrough filter final finally friend from fxgroup get goto
		groupshared highp impl implements import inline instanceof
		interface layout lowp macro macro_rules match mediump meta mod
		module move mut mutable namespace new nil noexcept noinline
		nointerpolation noperspective null nullptr of operator package
		packoffset partition pass patch pixelfragment precise precision
		premerge priv protected pub public readonly ref regardless register
		reinterpret_cast require resource restrict self set shared sizeof
		smooth snorm static static_assert static_cast std subroutine super
		target template this thread_local throw trait try type typedef
		typeid typename typeof union unless unorm unsafe unsized use using
		varying virtual volatile wgsl where with writeonly yield`)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
