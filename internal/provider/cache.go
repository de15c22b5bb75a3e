package provider

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"locstring-generator/internal/analyze"
	"locstring-generator/internal/spec"
)

// Cache memoizes resolutions per type for the lifetime of one run.
// It is safe for concurrent use; the first stored resolution of a type wins
// and every caller observes it.
type Cache struct {
	resolver *Resolver
	entries  sync.Map // analyze.TypeID -> Resolution
	group    singleflight.Group
}

// NewCache creates an empty cache backed by resolver.
func NewCache(resolver *Resolver) *Cache {
	return &Cache{resolver: resolver}
}

// Resolve returns the memoized resolution of id, computing it on first use.
func (c *Cache) Resolve(id analyze.TypeID) Resolution {
	if res, ok := c.Lookup(id); ok {
		return res
	}

	v, _, _ := c.group.Do(flightKey(id), func() (any, error) {
		if res, ok := c.Lookup(id); ok {
			return res, nil
		}

		actual, _ := c.entries.LoadOrStore(id, c.resolver.Resolve(id))

		return actual, nil
	})

	return v.(Resolution)
}

// flightKey keeps names containing a backtick apart from arity suffixes.
func flightKey(id analyze.TypeID) string {
	return id.Name + "\x00" + strconv.Itoa(id.Arity)
}

// Lookup returns the resolution of id if it was already computed.
func (c *Cache) Lookup(id analyze.TypeID) (Resolution, bool) {
	v, ok := c.entries.Load(id)
	if !ok {
		return Resolution{}, false
	}

	return v.(Resolution), true
}

// Source returns the resolved provider source of id without resolving it.
// Types that were never resolved report no source.
func (c *Cache) Source(id analyze.TypeID) spec.ProviderSource {
	res, _ := c.Lookup(id)
	return res.Source
}

// Len returns the number of resolved types.
func (c *Cache) Len() int {
	n := 0

	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}
