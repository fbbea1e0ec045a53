package provider

import "sync"

// Metadata is static schema-level data that survives host reloads:
// display names keyed by host identifiers. Live instance references are
// never stored here; anything instance-scoped is re-queried every call.
type Metadata struct {
	TerrainNames  map[string]string
	CategoryNames map[string]string
}

// MetadataCache is the immutable tier of the two-tier cache policy. It
// is built once from its loader and only rebuilt after an explicit
// Invalidate.
type MetadataCache struct {
	mu     sync.Mutex
	load   func() (Metadata, error)
	cached *Metadata
}

// NewMetadataCache wraps a loader for lazy, one-time construction.
func NewMetadataCache(load func() (Metadata, error)) *MetadataCache {
	return &MetadataCache{load: load}
}

// Get returns the cached metadata, building it on first use. A failing
// loader yields the absent case; the next Get retries.
func (c *MetadataCache) Get() (Metadata, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached != nil {
		return *c.cached, true
	}
	if c.load == nil {
		return Metadata{}, false
	}
	meta, err := c.load()
	if err != nil {
		return Metadata{}, false
	}
	c.cached = &meta
	return meta, true
}

// Invalidate drops the cached metadata so the next Get rebuilds it.
func (c *MetadataCache) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

// TerrainName resolves a terrain identifier to its display name, falling
// back to the identifier itself when metadata is absent.
func (c *MetadataCache) TerrainName(id string) string {
	meta, ok := c.Get()
	if !ok {
		return id
	}
	if name, ok := meta.TerrainNames[id]; ok {
		return name
	}
	return id
}

// CategoryName resolves an occupant category to its display name,
// falling back to the identifier itself.
func (c *MetadataCache) CategoryName(id string) string {
	meta, ok := c.Get()
	if !ok {
		return id
	}
	if name, ok := meta.CategoryNames[id]; ok {
		return name
	}
	return id
}
