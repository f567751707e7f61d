package preset

import (
	"context"
	"io/fs"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/opd-ai/mediacore/profile"
)

// Catalog is a read-only mapping from preset name to Profile. It is safe for
// concurrent use once constructed.
type Catalog struct {
	profiles map[string]profile.Profile
}

// NewCatalog applies entries in order; a repeated name keeps the last entry.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{profiles: make(map[string]profile.Profile, len(entries))}
	for _, e := range entries {
		c.profiles[e.Name] = e.Profile
	}
	return c
}

// Load compiles the tree under root and returns its catalog.
func Load(ctx context.Context, fsys fs.FS, root string) (*Catalog, error) {
	compiled, err := Compile(ctx, fsys, root, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return NewCatalog(compiled.Entries), nil
}

// Get returns the named profile.
func (c *Catalog) Get(name string) (profile.Profile, bool) {
	if c == nil {
		return profile.Profile{}, false
	}
	p, ok := c.profiles[name]
	return p, ok
}

// Len returns the number of presets.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.profiles)
}

// Names returns every preset name, sorted.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.profiles))
}

// All yields every preset in unspecified order.
func (c *Catalog) All() iter.Seq2[string, profile.Profile] {
	return func(yield func(string, profile.Profile) bool) {
		if c == nil {
			return
		}
		for name, p := range c.profiles {
			if !yield(name, p) {
				return
			}
		}
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary. It is built on
// first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = &Catalog{profiles: generatedProfiles()}
	})
	return defaultCatalog
}
