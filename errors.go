package vertexlayout

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedType is matched by every *UnsupportedTypeError.
	ErrUnsupportedType = errors.New("vertexlayout: unsupported field type")

	// ErrInvalidTypeName is returned by ParseValueType for malformed input.
	ErrInvalidTypeName = errors.New("vertexlayout: invalid type name")

	// ErrConflictingRegistration is returned when a type is registered twice
	// with different formats.
	ErrConflictingRegistration = errors.New("vertexlayout: conflicting registration")

	// ErrNoGPUFormat is returned for formats WebGPU cannot express (64-bit floats).
	ErrNoGPUFormat = errors.New("vertexlayout: format has no WebGPU vertex format")

	// ErrNoShaderType is returned for formats WGSL cannot declare.
	ErrNoShaderType = errors.New("vertexlayout: format has no WGSL type")

	// ErrNoRecordSize is returned when StrideRecordSize is requested
	// but no record size was captured.
	ErrNoRecordSize = errors.New("vertexlayout: stride policy requires a record size")

	// ErrRecordTooSmall is returned when the captured record size is smaller
	// than the sum of the attribute sizes.
	ErrRecordTooSmall = errors.New("vertexlayout: record size smaller than attributes")

	// ErrNotStruct is returned by For when the type argument is not a struct.
	ErrNotStruct = errors.New("vertexlayout: layout source is not a struct")
)

// UnsupportedTypeError reports a field whose type has no registry entry,
// or a Go struct field whose type maps to no value type at all.
// A layout is never produced when this error is returned.
type UnsupportedTypeError struct {
	// Index is the declaration position of the field, or -1 for a bare lookup.
	Index int
	// Field is the field name, if known.
	Field string
	// Type is the offending type. It is the zero ValueType when GoType is set.
	Type ValueType
	// GoType is the Go field type that For could not map to a value type.
	GoType reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	switch {
	case e.GoType != nil:
		return fmt.Sprintf("vertexlayout: field %d (%s): Go type %s has no value type", e.Index, e.Field, e.GoType)
	case e.Index < 0:
		return fmt.Sprintf("vertexlayout: unsupported field type %s", e.Type)
	case e.Field != "":
		return fmt.Sprintf("vertexlayout: field %d (%s): unsupported field type %s", e.Index, e.Field, e.Type)
	}
	return fmt.Sprintf("vertexlayout: field %d: unsupported field type %s", e.Index, e.Type)
}

// Unwrap lets errors.Is match ErrUnsupportedType.
func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}
