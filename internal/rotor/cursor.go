package rotor

import "github.com/atomicstack/formatting-rotor/internal/catalog"

// Cursor is a position in a catalog with wraparound stepping. Item stepping
// wraps within the current category and never crosses into a neighbour;
// category stepping wraps around the catalog and resets the item to 0.
type Cursor struct {
	catalog *catalog.Catalog
	at      catalog.Coordinate
}

// NewCursor returns a cursor at the given coordinate. It panics when at does
// not belong to c.
func NewCursor(c *catalog.Catalog, at catalog.Coordinate) Cursor {
	c.MustContain(at)
	return Cursor{catalog: c, at: at}
}

// Position returns the coordinate under the cursor.
func (c *Cursor) Position() catalog.Coordinate {
	return c.at
}

// MoveTo places the cursor at a coordinate produced by the same catalog.
func (c *Cursor) MoveTo(at catalog.Coordinate) bool {
	c.catalog.MustContain(at)
	old := c.at
	c.at = at
	return old != c.at
}

// NextItem moves to the next item of the current category, wrapping to its
// first item.
func (c *Cursor) NextItem() bool {
	n := c.catalog.ItemCount(c.at.Category())
	return c.move(c.at.Category(), (c.at.Item()+1)%n)
}

// PreviousItem moves to the previous item of the current category, wrapping
// to its last item.
func (c *Cursor) PreviousItem() bool {
	n := c.catalog.ItemCount(c.at.Category())
	return c.move(c.at.Category(), (c.at.Item()-1+n)%n)
}

// NextCategory moves to the first item of the next category.
func (c *Cursor) NextCategory() bool {
	n := c.catalog.Len()
	return c.move((c.at.Category()+1)%n, 0)
}

// PreviousCategory moves to the first item of the previous category.
func (c *Cursor) PreviousCategory() bool {
	n := c.catalog.Len()
	return c.move((c.at.Category()-1+n)%n, 0)
}

func (c *Cursor) move(category, item int) bool {
	return c.MoveTo(c.catalog.MustAt(category, item))
}
