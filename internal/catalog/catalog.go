package catalog

import (
	"fmt"
	"strings"
)

// Item is a single selectable setting within a category.
type Item struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// Category groups an ordered list of items under a label.
type Category struct {
	Label string `yaml:"label"`
	Items []Item `yaml:"items"`
}

// Catalog is the immutable category -> items table the rotor navigates.
type Catalog struct {
	categories []Category
	keys       map[string]Coordinate
}

// New validates the supplied categories and returns a catalog holding a private
// copy of them. Every category needs at least one item and every setting key
// must be non-empty and unique across the whole catalog.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrMalformedCatalog)
	}
	c := &Catalog{
		categories: make([]Category, len(categories)),
		keys:       make(map[string]Coordinate),
	}
	for ci, cat := range categories {
		if strings.TrimSpace(cat.Label) == "" {
			return nil, fmt.Errorf("%w: category %d has no label", ErrMalformedCatalog, ci)
		}
		if len(cat.Items) == 0 {
			return nil, fmt.Errorf("%w: category %q has no items", ErrMalformedCatalog, cat.Label)
		}
		items := make([]Item, len(cat.Items))
		for ii, item := range cat.Items {
			if strings.TrimSpace(item.Key) == "" {
				return nil, fmt.Errorf("%w: item %d of %q has no setting key", ErrMalformedCatalog, ii, cat.Label)
			}
			if prev, ok := c.keys[item.Key]; ok {
				return nil, fmt.Errorf("%w: setting key %q repeated at %s and %s", ErrMalformedCatalog, item.Key, prev, Coordinate{ci, ii})
			}
			c.keys[item.Key] = Coordinate{category: ci, item: ii}
			items[ii] = item
		}
		c.categories[ci] = Category{Label: cat.Label, Items: items}
	}
	return c, nil
}

// MustNew is like New but panics on malformed input. Intended for catalogs
// defined in code.
func MustNew(categories []Category) *Catalog {
	c, err := New(categories)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// ItemCount returns the number of items in the given category.
func (c *Catalog) ItemCount(category int) int {
	if category < 0 || category >= len(c.categories) {
		return 0
	}
	return len(c.categories[category].Items)
}

// Label returns the label of the given category.
func (c *Catalog) Label(category int) string {
	if category < 0 || category >= len(c.categories) {
		return ""
	}
	return c.categories[category].Label
}

// Item returns the item a coordinate denotes. It panics when the coordinate
// does not fit this catalog.
func (c *Catalog) Item(at Coordinate) Item {
	c.MustContain(at)
	return c.categories[at.category].Items[at.item]
}

// Categories returns a deep copy of the catalog contents.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		items := make([]Item, len(cat.Items))
		copy(items, cat.Items)
		out[i] = Category{Label: cat.Label, Items: items}
	}
	return out
}

// Keys returns every setting key in row-major order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.keys))
	for _, cat := range c.categories {
		for _, item := range cat.Items {
			keys = append(keys, item.Key)
		}
	}
	return keys
}

// Lookup returns the coordinate of the item bound to key.
func (c *Catalog) Lookup(key string) (Coordinate, bool) {
	at, ok := c.keys[key]
	return at, ok
}
