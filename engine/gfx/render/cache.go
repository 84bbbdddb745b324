package render

import (
	"errors"
	"sync"

	"github.com/hubastard/overlay/engine/logging"
	"golang.org/x/sync/singleflight"
)

var errNoResolver = errors.New("no texture size resolver configured")

// SizeResolver discovers the natural pixel size of an image identifier.
type SizeResolver interface {
	ImageSize(id string) (w, h int, err error)
}

// Dim is a cached texture size in pixels.
type Dim struct{ W, H int }

// DimensionCache maps image identifiers to their natural size. Entries are
// filled on first use and never invalidated; failed lookups leave no entry.
// Concurrent misses for one identifier share a single resolve.
type DimensionCache struct {
	resolve SizeResolver

	mu   sync.RWMutex
	dims map[string]Dim

	group singleflight.Group
}

func NewDimensionCache(resolve SizeResolver) *DimensionCache {
	return &DimensionCache{resolve: resolve, dims: make(map[string]Dim)}
}

// Get returns the size of id, resolving it on a miss.
func (c *DimensionCache) Get(id string) (Dim, error) {
	if d, ok := c.Lookup(id); ok {
		return d, nil
	}
	if c.resolve == nil {
		return Dim{}, errNoResolver
	}

	v, err, _ := c.group.Do(id, func() (any, error) {
		if d, ok := c.Lookup(id); ok {
			return d, nil
		}
		w, h, err := c.resolve.ImageSize(id)
		if err != nil {
			return Dim{}, err
		}
		d := Dim{W: w, H: h}
		c.mu.Lock()
		c.dims[id] = d
		c.mu.Unlock()
		logging.Logger().Debug("texture dimensions cached", "id", id, "w", w, "h", h)
		return d, nil
	})
	if err != nil {
		return Dim{}, err
	}
	return v.(Dim), nil
}

// Lookup reports a cached size without resolving.
func (c *DimensionCache) Lookup(id string) (Dim, bool) {
	c.mu.RLock()
	d, ok := c.dims[id]
	c.mu.RUnlock()
	return d, ok
}

func (c *DimensionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dims)
}
