package rotor

import (
	"testing"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
)

func fontCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Category{
		{Label: "Font", Items: []catalog.Item{{Name: "Font name", Key: "fontName"}, {Name: "Font size", Key: "fontSize"}}},
		{Label: "Pages", Items: []catalog.Item{{Name: "Pages", Key: "pages"}}},
	})
}

func fruitCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Category{
		{Label: "A", Items: []catalog.Item{{Name: "apple", Key: "apple"}, {Name: "banana", Key: "banana"}, {Name: "cherry", Key: "cherry"}}},
		{Label: "B", Items: []catalog.Item{{Name: "date", Key: "date"}, {Name: "elderberry", Key: "elderberry"}}},
		{Label: "C", Items: []catalog.Item{{Name: "fig", Key: "fig"}, {Name: "grape", Key: "grape"}}},
	})
}

func everyCoordinate(c *catalog.Catalog) []catalog.Coordinate {
	var out []catalog.Coordinate
	at, ok := c.First(), true
	for ok {
		out = append(out, at)
		at, ok = c.Next(at)
	}
	return out
}

func TestCursorItemSteppingWrapsWithinCategory(t *testing.T) {
	c := fruitCatalog()
	cur := NewCursor(c, c.MustAt(0, 2))
	if !cur.NextItem() {
		t.Fatalf("expected next item to move")
	}
	if got := cur.Position(); got != c.MustAt(0, 0) {
		t.Fatalf("expected wrap to (0,0), got %s", got)
	}
	cur.PreviousItem()
	if got := cur.Position(); got != c.MustAt(0, 2) {
		t.Fatalf("expected wrap back to (0,2), got %s", got)
	}

	single := NewCursor(c, c.MustAt(0, 0))
	single.MoveTo(c.MustAt(1, 1))
	single.NextItem()
	if got := single.Position(); got.Category() != 1 {
		t.Fatalf("expected item stepping to stay in category 1, got %s", got)
	}
}

func TestCursorCategorySteppingResetsItem(t *testing.T) {
	c := fruitCatalog()
	cur := NewCursor(c, c.MustAt(2, 1))
	cur.NextCategory()
	if got := cur.Position(); got != c.MustAt(0, 0) {
		t.Fatalf("expected wrap to (0,0), got %s", got)
	}
	cur.PreviousCategory()
	if got := cur.Position(); got != c.MustAt(2, 0) {
		t.Fatalf("expected wrap to (2,0), got %s", got)
	}
}

func TestCursorWraparoundClosure(t *testing.T) {
	c := fruitCatalog()
	for _, at := range everyCoordinate(c) {
		cur := NewCursor(c, at)
		cur.PreviousItem()
		cur.NextItem()
		if got := cur.Position(); got != at {
			t.Fatalf("expected next(previous(%s)) == %s, got %s", at, at, got)
		}

		cur = NewCursor(c, at)
		cur.NextCategory()
		cur.PreviousCategory()
		if got := cur.Position(); got.Category() != at.Category() {
			t.Fatalf("expected previousCategory(nextCategory(%s)) to keep category, got %s", at, got)
		}
		if got := cur.Position(); got.Item() != 0 {
			t.Fatalf("expected item reset to 0, got %s", got)
		}
	}
}

func TestCursorRejectsForeignCoordinate(t *testing.T) {
	big := fruitCatalog()
	small := fontCatalog()
	defer func() {
		if _, ok := recover().(*catalog.InvalidCoordinateError); !ok {
			t.Fatalf("expected InvalidCoordinateError panic")
		}
	}()
	NewCursor(small, big.MustAt(0, 2))
}

func TestSearchBufferAcceptsPrintableCharactersOnly(t *testing.T) {
	var b SearchBuffer
	for _, r := range []rune{' ', '\n', '\t', '\b', 0x1b} {
		if b.Append(r) {
			t.Fatalf("expected %q to be rejected", r)
		}
	}
	for _, r := range "Fo1é" {
		if !b.Append(r) {
			t.Fatalf("expected %q to be accepted", r)
		}
	}
	if b.String() != "Fo1é" {
		t.Fatalf("expected buffer Fo1é, got %q", b.String())
	}
	if b.Query() != "fo1é" {
		t.Fatalf("expected lowercased query, got %q", b.Query())
	}
	r, ok := b.RemoveLast()
	if !ok || r != 'é' {
		t.Fatalf("expected é removed, got %q ok=%v", r, ok)
	}
	b.Clear()
	if !b.Empty() {
		t.Fatalf("expected empty buffer after clear")
	}
	if _, ok := b.RemoveLast(); ok {
		t.Fatalf("expected nothing to remove from empty buffer")
	}
}
