package vertexlayout

import (
	"fmt"
	"log/slog"
)

// Field is one declared member of a record: an optional name and its type.
type Field struct {
	Name string
	Type ValueType
}

// Fields returns unnamed fields for the given types, in order.
func Fields(types ...ValueType) []Field {
	fields := make([]Field, len(types))
	for i, t := range types {
		fields[i] = Field{Type: t}
	}
	return fields
}

// Build derives the vertex layout of a record whose fields are declared in
// the given order. Field i gets shader location i and an offset equal to the
// summed sizes of fields 0..i-1.
//
// If any field's type is not in the registry, Build returns an
// *UnsupportedTypeError naming that field and no layout.
func Build(fields []Field, opts ...Option) (*Layout, error) {
	o := applyOptions(opts)

	attrs := make([]Attribute, 0, len(fields))
	var offset uint64
	for i, f := range fields {
		format, size, err := o.registry.Lookup(f.Type)
		if err != nil {
			return nil, &UnsupportedTypeError{Index: i, Field: f.Name, Type: f.Type}
		}
		attrs = append(attrs, Attribute{
			Format: format,
			Offset: offset,
			Slot:   uint32(i), //nolint:gosec // shader locations are bounded by GPU limits (< 32)
		})
		offset += size
	}

	stride, err := resolveStride(offset, &o)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		fields:     append([]Field(nil), fields...),
		attributes: attrs,
		sumSize:    offset,
		recordSize: o.recordSize,
		hasRecord:  o.hasRecord,
		stride:     stride,
		policy:     o.policy,
	}

	o.logger.Debug("vertex layout built",
		slog.Int("attributes", len(attrs)),
		slog.Uint64("stride", stride),
		slog.String("policy", o.policy.String()))

	return l, nil
}

// BuildTypes is Build for unnamed fields.
func BuildTypes(types ...ValueType) (*Layout, error) {
	return Build(Fields(types...))
}

// MustBuild is like Build but panics on error. It is intended for
// package-level layout declarations.
func MustBuild(fields []Field, opts ...Option) *Layout {
	l, err := Build(fields, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// resolveStride applies the stride policy to the summed attribute size.
func resolveStride(sum uint64, o *options) (uint64, error) {
	if o.hasRecord && o.recordSize != sum {
		o.logger.Warn("vertexlayout: record size differs from attribute sizes",
			slog.Uint64("record", o.recordSize),
			slog.Uint64("attributes", sum),
			slog.String("policy", o.policy.String()))
	}

	switch o.policy {
	case StrideSum:
		return sum, nil
	case StrideRecordSize:
		if !o.hasRecord {
			return 0, ErrNoRecordSize
		}
		if o.recordSize < sum {
			return 0, fmt.Errorf("%w: record %d bytes, attributes %d bytes",
				ErrRecordTooSmall, o.recordSize, sum)
		}
		return o.recordSize, nil
	}
	return 0, fmt.Errorf("vertexlayout: unknown stride policy %d", o.policy)
}
