package vertexlayout

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/vertexlayout/internal/cache"
)

// Cache memoizes layouts by field sequence so each distinct sequence is
// built once and the resulting *Layout is shared. Failed builds are not
// cached. Cache is safe for concurrent use.
type Cache struct {
	opts []Option
	memo *cache.Sharded[string, *Layout]
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Layouts  int
	Hits     uint64
	Misses   uint64
	Failures uint64
}

// NewCache returns an empty cache whose layouts are built with opts.
func NewCache(opts ...Option) *Cache {
	return &Cache{
		opts: append([]Option(nil), opts...),
		memo: cache.NewSharded[string, *Layout](cache.StringHasher),
	}
}

var defaultCache = NewCache()

// Cached returns the shared layout for the given unnamed field types,
// building it on first use.
func Cached(types ...ValueType) (*Layout, error) {
	return defaultCache.Get(types...)
}

// Get returns the layout for unnamed fields of the given types.
func (c *Cache) Get(types ...ValueType) (*Layout, error) {
	return c.GetFields(Fields(types...)...)
}

// GetFields returns the layout for the given fields.
func (c *Cache) GetFields(fields ...Field) (*Layout, error) {
	key := fieldsKey(fields)
	return c.memo.GetOrCreate(key, func() (*Layout, error) {
		Logger().Debug("vertexlayout: cache miss", slog.String("key", key))
		return Build(fields, c.opts...)
	})
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	return c.memo.Len()
}

// Reset drops every cached layout. Layouts already returned stay valid;
// later lookups build fresh ones. Counters are kept.
func (c *Cache) Reset() {
	c.memo.Clear()
}

// Stats returns hit and miss counters.
func (c *Cache) Stats() CacheStats {
	s := c.memo.Stats()
	return CacheStats{
		Layouts:  s.Len,
		Hits:     s.Hits,
		Misses:   s.Misses,
		Failures: s.Failures,
	}
}

// fieldsKey renders fields canonically, e.g. `"pos":vec3<f32>;"":f32`.
// Names are quoted so separators inside a name cannot alias another sequence.
func fieldsKey(fields []Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Quote(f.Name))
		b.WriteByte(':')
		b.WriteString(f.Type.String())
	}
	return b.String()
}
