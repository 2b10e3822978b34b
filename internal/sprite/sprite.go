// Package sprite builds pixel-art images from static pixel tables. A table is
// a grid of runes plus a palette; '.' and ' ' are transparent. Images are
// plain *image.RGBA so the package stays independent of the render backend.
package sprite

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"sync"
)

// Table is a pixel-art definition
type Table struct {
	Rows    []string
	Palette map[rune]color.RGBA
}

// Size returns the table's width and height in pixels. Width is taken from
// the first row.
func (t Table) Size() (w, h int) {
	if len(t.Rows) == 0 {
		return 0, 0
	}
	return len([]rune(t.Rows[0])), len(t.Rows)
}

// WithPalette returns a copy of t whose palette entries are replaced by
// overrides. Used to recolour one shape per biome.
func (t Table) WithPalette(overrides map[rune]color.RGBA) Table {
	p := make(map[rune]color.RGBA, len(t.Palette)+len(overrides))
	for k, v := range t.Palette {
		p[k] = v
	}
	for k, v := range overrides {
		p[k] = v
	}
	return Table{Rows: t.Rows, Palette: p}
}

// Build rasterises t with each table pixel expanded to scale×scale image
// pixels.
func Build(t Table, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}
	w, h := t.Size()
	if w == 0 {
		return nil, fmt.Errorf("empty pixel table")
	}

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y, row := range t.Rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(runes), w)
		}
		for x, r := range runes {
			if r == '.' || r == ' ' {
				continue
			}
			c, ok := t.Palette[r]
			if !ok {
				return nil, fmt.Errorf("row %d col %d: no palette entry for %q", y, x, r)
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img, nil
}

// Factory caches built images by name and scale.
type Factory struct {
	mu     sync.Mutex
	tables map[string]Table
	cache  map[cacheKey]*image.RGBA
}

type cacheKey struct {
	name  string
	scale int
}

// NewFactory creates a factory preloaded with the built-in tables.
func NewFactory() *Factory {
	f := &Factory{
		tables: make(map[string]Table, len(builtin)),
		cache:  make(map[cacheKey]*image.RGBA),
	}
	for name, t := range builtin {
		f.tables[name] = t
	}
	return f
}

// Register adds or replaces a table. Cached images of that name are dropped.
func (f *Factory) Register(name string, t Table) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[name] = t
	for k := range f.cache {
		if k.name == name {
			delete(f.cache, k)
		}
	}
}

// Has reports whether a table is registered under name.
func (f *Factory) Has(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tables[name]
	return ok
}

// Names returns every registered table name in sorted order.
func (f *Factory) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.tables))
	for n := range f.tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Image returns the named sprite at the given scale, building it on first use.
func (f *Factory) Image(name string, scale int) (*image.RGBA, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := cacheKey{name, scale}
	if img, ok := f.cache[key]; ok {
		return img, nil
	}
	t, ok := f.tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown sprite %q", name)
	}
	img, err := Build(t, scale)
	if err != nil {
		return nil, fmt.Errorf("failed to build sprite %q: %w", name, err)
	}
	f.cache[key] = img
	return img, nil
}
