package catalog

import "fmt"

// Coordinate addresses one item as (category, item). The zero value is the
// catalog origin. Coordinates outside the catalog can only be obtained through
// At, which rejects them.
type Coordinate struct {
	category int
	item     int
}

// Category returns the category index.
func (p Coordinate) Category() int { return p.category }

// Item returns the item index within the category.
func (p Coordinate) Item() int { return p.item }

func (p Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", p.category, p.item)
}

// Before reports whether p precedes q in row-major order.
func (p Coordinate) Before(q Coordinate) bool {
	if p.category != q.category {
		return p.category < q.category
	}
	return p.item < q.item
}

// At returns the coordinate for (category, item) or an *InvalidCoordinateError.
func (c *Catalog) At(category, item int) (Coordinate, error) {
	p := Coordinate{category: category, item: item}
	if !c.Contains(p) {
		return Coordinate{}, &InvalidCoordinateError{Category: category, Item: item, Categories: len(c.categories), Items: c.ItemCount(category)}
	}
	return p, nil
}

// MustAt is like At but panics when the coordinate is out of range.
func (c *Catalog) MustAt(category, item int) Coordinate {
	p, err := c.At(category, item)
	if err != nil {
		panic(err)
	}
	return p
}

// Contains reports whether p addresses an item of this catalog.
func (c *Catalog) Contains(p Coordinate) bool {
	if p.category < 0 || p.category >= len(c.categories) {
		return false
	}
	return p.item >= 0 && p.item < len(c.categories[p.category].Items)
}

// MustContain panics with an *InvalidCoordinateError when p does not fit.
func (c *Catalog) MustContain(p Coordinate) {
	if !c.Contains(p) {
		panic(&InvalidCoordinateError{Category: p.category, Item: p.item, Categories: len(c.categories), Items: c.ItemCount(p.category)})
	}
}

// First returns the first coordinate in row-major order.
func (c *Catalog) First() Coordinate {
	return Coordinate{}
}

// Last returns the last coordinate in row-major order.
func (c *Catalog) Last() Coordinate {
	last := len(c.categories) - 1
	return Coordinate{category: last, item: len(c.categories[last].Items) - 1}
}

// Next returns the coordinate following p in row-major order, treating the end
// of one category as contiguous with the start of the next. It reports false
// at the end of the catalog.
func (c *Catalog) Next(p Coordinate) (Coordinate, bool) {
	c.MustContain(p)
	if p.item+1 < len(c.categories[p.category].Items) {
		return Coordinate{category: p.category, item: p.item + 1}, true
	}
	if p.category+1 < len(c.categories) {
		return Coordinate{category: p.category + 1}, true
	}
	return p, false
}

// Prev returns the coordinate preceding p in row-major order. It reports false
// at the start of the catalog.
func (c *Catalog) Prev(p Coordinate) (Coordinate, bool) {
	c.MustContain(p)
	if p.item > 0 {
		return Coordinate{category: p.category, item: p.item - 1}, true
	}
	if p.category > 0 {
		prev := p.category - 1
		return Coordinate{category: prev, item: len(c.categories[prev].Items) - 1}, true
	}
	return p, false
}
