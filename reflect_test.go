package vertexlayout

import (
	"errors"
	"reflect"
	"strings"
	"structs"
	"testing"
	"unsafe"
)

type vec3 struct{ X, Y, Z float32 }

type testVertex struct {
	Position [4]float32
	Color    vec3
	UV       [2]float32
	Weight   float32
}

type paddedVertex struct {
	Position [3]float32
	Scale    float64
}

type baseVertex struct {
	Position [3]float32
	Normal   [3]float32
}

type skinnedVertex struct {
	baseVertex
	BoneIndices [4]uint32
	BoneWeights [4]float32
}

type hostVertex struct {
	_        structs.HostLayout
	Position [2]float32
	Layer    int32
}

type badVertex struct {
	Position [3]float32
	Name     string
}

type matrixVertex struct {
	Position [3]float32
	Model    [4][4]float32
}

type rgba8Vertex struct {
	Position [2]float32
	Color    [4]uint8
}

func TestValueTypeOf(t *testing.T) {
	tests := []struct {
		v    any
		want ValueType
	}{
		{float32(0), Float32},
		{float64(0), Float64},
		{uint32(0), Uint32},
		{int32(0), Sint32},
		{[3]float32{}, Array(KindFloat32, 3)},
		{[2]int32{}, Array(KindSint32, 2)},
		{vec3{}, Tuple(KindFloat32, 3)},
		{struct{ A uint32 }{}, Tuple(KindUint32, 1)},
		{[4]uint8{}, Array(KindUint8, 4)},
	}
	for _, tt := range tests {
		got, ok := ValueTypeOf(reflect.TypeOf(tt.v))
		if !ok || got != tt.want {
			t.Errorf("ValueTypeOf(%T) = %s, %v; want %s", tt.v, got, ok, tt.want)
		}
	}

	for _, v := range []any{"", int64(0), []float32{}, struct{}{}, struct {
		A float32
		B uint32
	}{}, [2][3]float32{}, [4][4]float32{}} {
		if got, ok := ValueTypeOf(reflect.TypeOf(v)); ok {
			t.Errorf("ValueTypeOf(%T) = %s, want not ok", v, got)
		}
	}
}

func TestForStruct(t *testing.T) {
	l, err := For[testVertex]()
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}

	want := []Attribute{
		{Format: FormatFloat32x4, Offset: 0, Slot: 0},
		{Format: FormatFloat32x3, Offset: 16, Slot: 1},
		{Format: FormatFloat32x2, Offset: 28, Slot: 2},
		{Format: FormatFloat32, Offset: 36, Slot: 3},
	}
	for i, w := range want {
		if got := l.Attribute(i); got != w {
			t.Errorf("Attribute(%d) = %+v, want %+v", i, got, w)
		}
	}
	if l.Stride() != 40 {
		t.Errorf("Stride() = %d, want 40", l.Stride())
	}
	if size, ok := l.RecordSize(); !ok || size != uint64(unsafe.Sizeof(testVertex{})) {
		t.Errorf("RecordSize() = %d, %v", size, ok)
	}

	names := []string{"Position", "Color", "UV", "Weight"}
	for i, f := range l.Fields() {
		if f.Name != names[i] {
			t.Errorf("Fields()[%d].Name = %q, want %q", i, f.Name, names[i])
		}
	}
}

func TestForPaddedRecord(t *testing.T) {
	sum := uint64(12 + 8)
	goSize := uint64(unsafe.Sizeof(paddedVertex{}))

	l, err := For[paddedVertex]()
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if l.Stride() != sum {
		t.Errorf("default stride = %d, want attribute sum %d", l.Stride(), sum)
	}
	if l.Padding() != goSize-sum {
		t.Errorf("Padding() = %d, want %d", l.Padding(), goSize-sum)
	}

	l, err = For[paddedVertex](WithStridePolicy(StrideRecordSize))
	if err != nil {
		t.Fatalf("For(StrideRecordSize) error = %v", err)
	}
	if l.Stride() != goSize {
		t.Errorf("record stride = %d, want %d", l.Stride(), goSize)
	}
	// Offsets follow declared sizes regardless of host padding.
	if l.Attribute(1).Offset != 12 {
		t.Errorf("Attribute(1).Offset = %d, want 12", l.Attribute(1).Offset)
	}
}

func TestForEmbedded(t *testing.T) {
	l, err := For[skinnedVertex]()
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	if got := l.Fields()[0].Name; got != "baseVertex.Position" {
		t.Errorf("Fields()[0].Name = %q", got)
	}
	if a := l.Attribute(2); a.Format != FormatUint32x4 || a.Offset != 24 || a.Slot != 2 {
		t.Errorf("Attribute(2) = %+v", a)
	}
	if l.Stride() != 56 {
		t.Errorf("Stride() = %d, want 56", l.Stride())
	}
}

func TestForSkipsMarkers(t *testing.T) {
	l, err := For[hostVertex]()
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if a := l.Attribute(1); a.Format != FormatSint32 || a.Slot != 1 || a.Offset != 8 {
		t.Errorf("Attribute(1) = %+v", a)
	}
}

func TestForErrors(t *testing.T) {
	_, err := For[badVertex]()
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("For[badVertex] err = %v, want ErrUnsupportedType", err)
	}
	var goErr *UnsupportedTypeError
	if !errors.As(err, &goErr) {
		t.Fatalf("For[badVertex] err = %T, want *UnsupportedTypeError", err)
	}
	if goErr.Index != 1 || goErr.Field != "Name" || goErr.GoType != reflect.TypeFor[string]() {
		t.Errorf("error = %+v, want field 1 Name of Go type string", goErr)
	}
	if msg := err.Error(); !strings.Contains(msg, "field 1 (Name)") || !strings.Contains(msg, "Go type string") {
		t.Errorf("error %q does not name the field and Go type", msg)
	}

	_, err = For[matrixVertex]()
	if !errors.As(err, &goErr) || goErr.Field != "Model" {
		t.Errorf("For[matrixVertex] err = %v, want *UnsupportedTypeError for Model", err)
	}

	_, err = For[rgba8Vertex]()
	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("For[rgba8Vertex] err = %v, want *UnsupportedTypeError", err)
	}
	if ute.Index != 1 || ute.Field != "Color" || ute.GoType != nil {
		t.Errorf("error = %+v, want registry error for field 1 Color", ute)
	}

	if _, err := For[[3]float32](); !errors.Is(err, ErrNotStruct) {
		t.Errorf("For[[3]float32] err = %v, want ErrNotStruct", err)
	}
}

func TestMustForPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFor did not panic")
		}
	}()
	MustFor[badVertex]()
}
