package vertexlayout

import (
	"fmt"
	"reflect"
)

// ValueTypeOf maps a Go type to a value type:
//
//   - float32, float64, uint32, int32 (and uint8, bool) map to scalars
//   - [N]T of a scalar maps to an array of N components
//   - a struct whose fields all share one scalar kind maps to a tuple,
//     e.g. struct{ X, Y, Z float32 } is a 3-tuple of f32
//
// ok is false for any other Go type, including nested arrays such as
// [4][4]float32: matrices have no single vertex format and must be split
// into one array field per column.
func ValueTypeOf(t reflect.Type) (vt ValueType, ok bool) {
	if kind, ok := scalarKindOf(t); ok {
		return Scalar(kind), true
	}

	switch t.Kind() {
	case reflect.Array:
		if kind, ok := scalarKindOf(t.Elem()); ok {
			return Array(kind, t.Len()), true
		}

	case reflect.Struct:
		if t.NumField() == 0 {
			return ValueType{}, false
		}
		kind, ok := scalarKindOf(t.Field(0).Type)
		if !ok {
			return ValueType{}, false
		}
		for i := 1; i < t.NumField(); i++ {
			if k, ok := scalarKindOf(t.Field(i).Type); !ok || k != kind {
				return ValueType{}, false
			}
		}
		return Tuple(kind, t.NumField()), true
	}
	return ValueType{}, false
}

func scalarKindOf(t reflect.Type) (ElementKind, bool) {
	switch t.Kind() {
	case reflect.Float32:
		return KindFloat32, true
	case reflect.Float64:
		return KindFloat64, true
	case reflect.Uint32:
		return KindUint32, true
	case reflect.Int32:
		return KindSint32, true
	case reflect.Uint8:
		return KindUint8, true
	case reflect.Bool:
		return KindBool, true
	}
	return KindInvalid, false
}

// For builds the layout of the Go struct T. Fields are taken in declaration
// order; embedded structs are flattened and zero-size marker fields such as
// structs.HostLayout are skipped. The struct's in-memory size is captured as
// the record size, so WithStridePolicy(StrideRecordSize) strides by the
// padded Go size.
//
// Example:
//
//	type Vertex struct {
//	    Position [3]float32
//	    UV       [2]float32
//	}
//
//	var vertexLayout = vertexlayout.MustFor[Vertex]()
func For[T any](opts ...Option) (*Layout, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, rt)
	}

	fields, err := structFields(rt, "", nil)
	if err != nil {
		return nil, err
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithRecordSize(uint64(rt.Size())))
	all = append(all, opts...)
	return Build(fields, all...)
}

// MustFor is like For but panics on error.
func MustFor[T any](opts ...Option) *Layout {
	l, err := For[T](opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// structFields flattens rt into layout fields.
func structFields(rt reflect.Type, prefix string, fields []Field) ([]Field, error) {
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Type.Size() == 0 {
			continue
		}
		name := prefix + sf.Name

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			var err error
			fields, err = structFields(sf.Type, name+".", fields)
			if err != nil {
				return nil, err
			}
			continue
		}

		vt, ok := ValueTypeOf(sf.Type)
		if !ok {
			return nil, &UnsupportedTypeError{Index: len(fields), Field: name, GoType: sf.Type}
		}
		fields = append(fields, Field{Name: name, Type: vt})
	}
	return fields, nil
}
