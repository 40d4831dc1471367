package vertexlayout

import (
	"fmt"
	"sort"
)

// Registration maps one value type to its vertex format.
type Registration struct {
	Type   ValueType
	Format Format
}

// Registry is a closed lookup table from value types to vertex formats.
//
// A Registry is read-only once constructed and safe for concurrent use.
// New entries are added only by building a new Registry with NewRegistry.
type Registry struct {
	entries map[ValueType]Format
}

var defaultRegistry = newDefaultRegistry()

// DefaultRegistry returns the built-in registry. For each of f32, f64, u32
// and i32 it maps the scalar, 1..4 component tuples and arrays, and the
// 2..4 component named vectors.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func newDefaultRegistry() *Registry {
	r := &Registry{entries: make(map[ValueType]Format, 64)}
	for _, kind := range []ElementKind{KindFloat32, KindFloat64, KindUint32, KindSint32} {
		scalar, _ := FormatFor(kind, 1)
		r.entries[Scalar(kind)] = scalar
		for n := 1; n <= 4; n++ {
			f, _ := FormatFor(kind, n)
			r.entries[Tuple(kind, n)] = f
			r.entries[Array(kind, n)] = f
			if n > 1 {
				r.entries[Vector(kind, n)] = f
			}
		}
	}
	return r
}

// NewRegistry returns a registry holding the default entries plus regs.
// Registering a type that is already mapped to a different format fails
// with ErrConflictingRegistration; re-registering the same mapping is a no-op.
func NewRegistry(regs ...Registration) (*Registry, error) {
	r := &Registry{entries: make(map[ValueType]Format, len(defaultRegistry.entries)+len(regs))}
	for t, f := range defaultRegistry.entries {
		r.entries[t] = f
	}
	for _, reg := range regs {
		if !reg.Format.Valid() {
			return nil, fmt.Errorf("vertexlayout: register %s: invalid format %s", reg.Type, reg.Format)
		}
		if existing, ok := r.entries[reg.Type]; ok && existing != reg.Format {
			return nil, fmt.Errorf("%w: %s already maps to %s, not %s",
				ErrConflictingRegistration, reg.Type, existing, reg.Format)
		}
		r.entries[reg.Type] = reg.Format
	}
	return r, nil
}

// Lookup returns the format and byte size for t.
// Types outside the registry return an *UnsupportedTypeError.
func (r *Registry) Lookup(t ValueType) (Format, uint64, error) {
	f, ok := r.entries[t]
	if !ok {
		return FormatUndefined, 0, &UnsupportedTypeError{Index: -1, Type: t}
	}
	return f, f.Size(), nil
}

// Supports reports whether t has an entry.
func (r *Registry) Supports(t ValueType) bool {
	_, ok := r.entries[t]
	return ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Types returns every registered type in a stable order.
func (r *Registry) Types() []ValueType {
	types := make([]ValueType, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		a, b := types[i], types[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Shape != b.Shape {
			return a.Shape < b.Shape
		}
		return a.Len < b.Len
	})
	return types
}
