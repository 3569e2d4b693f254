package rotor

import (
	"testing"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
)

func TestSearchForwardAndBackward(t *testing.T) {
	c := fruitCatalog()
	s := NewSearch(c, "an")

	if !s.Matches(catalog.Item{Name: "Banana"}) {
		t.Fatalf("expected case-insensitive match on Banana")
	}
	if s.Matches(catalog.Item{Name: "fig"}) {
		t.Fatalf("expected fig not to match")
	}

	got, ok := s.Forward(c.MustAt(0, 0))
	if !ok || got != c.MustAt(0, 1) {
		t.Fatalf("expected banana at (0,1), got %s ok=%v", got, ok)
	}
	if _, ok := s.Forward(c.MustAt(2, 1)); ok {
		t.Fatalf("expected no match after the last item")
	}

	got, ok = s.Backward(c.MustAt(1, 1))
	if !ok || got != c.MustAt(0, 1) {
		t.Fatalf("expected banana at (0,1) scanning back, got %s ok=%v", got, ok)
	}
	if _, ok := s.Backward(c.MustAt(0, 0)); ok {
		t.Fatalf("expected no match before the origin")
	}
}

func TestSearchCrossesCategoryBoundaries(t *testing.T) {
	c := fruitCatalog()
	s := NewSearch(c, "e")
	got, ok := s.Forward(c.MustAt(0, 2))
	if !ok || got != c.MustAt(1, 0) {
		t.Fatalf("expected date at (1,0) after cherry, got %s ok=%v", got, ok)
	}
	got, ok = s.Backward(c.MustAt(2, 0))
	if !ok || got != c.MustAt(1, 1) {
		t.Fatalf("expected elderberry at (1,1) before fig, got %s ok=%v", got, ok)
	}
}

func TestSearchFirstLastAndFromCursor(t *testing.T) {
	c := fruitCatalog()
	s := NewSearch(c, "an")
	if got, ok := s.First(); !ok || got != c.MustAt(0, 1) {
		t.Fatalf("expected first match banana, got %s ok=%v", got, ok)
	}
	if got, ok := s.Last(); !ok || got != c.MustAt(0, 1) {
		t.Fatalf("expected last match banana, got %s ok=%v", got, ok)
	}

	s = NewSearch(c, "r")
	if got, ok := s.FromCursor(c.MustAt(1, 1)); !ok || got != c.MustAt(1, 1) {
		t.Fatalf("expected matching cursor to be returned, got %s", got)
	}
	if got, ok := s.FromCursor(c.MustAt(1, 0)); !ok || got != c.MustAt(1, 1) {
		t.Fatalf("expected elderberry from date, got %s", got)
	}
	if got, ok := s.Last(); !ok || got != c.MustAt(2, 1) {
		t.Fatalf("expected grape as last match, got %s", got)
	}

	none := NewSearch(c, "nonexistent")
	if _, ok := none.FromCursor(c.MustAt(0, 0)); ok {
		t.Fatalf("expected no match")
	}
	if _, ok := none.First(); ok {
		t.Fatalf("expected no first match")
	}
	if _, ok := none.Last(); ok {
		t.Fatalf("expected no last match")
	}
	if len(none.All()) != 0 {
		t.Fatalf("expected no matches at all")
	}
}

func TestSearchMonotonicity(t *testing.T) {
	c := catalog.Default()
	for _, query := range []string{"a", "e", "in", "re", "font"} {
		s := NewSearch(c, query)
		at, ok := s.First()
		var prev *catalog.Coordinate
		steps := 0
		for ok {
			if !s.MatchesAt(at) {
				t.Fatalf("%q: visited non-matching %s", query, at)
			}
			if prev != nil && !prev.Before(at) {
				t.Fatalf("%q: expected %s after %s", query, at, *prev)
			}
			p := at
			prev = &p
			at, ok = s.Forward(at)
			steps++
			if steps > len(c.Keys()) {
				t.Fatalf("%q: forward search did not terminate", query)
			}
		}
		if last, ok := s.Last(); ok && *prev != last {
			t.Fatalf("%q: expected walk to end at last match %s, got %s", query, last, *prev)
		}
	}
}

func TestSearchSymmetry(t *testing.T) {
	c := catalog.Default()
	for _, query := range []string{"a", "e", "re", "line"} {
		s := NewSearch(c, query)
		first, ok := s.First()
		if !ok {
			t.Fatalf("%q: expected matches", query)
		}
		last, _ := s.Last()
		for _, at := range s.All() {
			if at == first || at == last {
				continue
			}
			next, ok := s.Forward(at)
			if !ok {
				t.Fatalf("%q: expected a match after %s", query, at)
			}
			back, ok := s.Backward(next)
			if !ok || back != at {
				t.Fatalf("%q: expected backward(forward(%s)) == %s, got %s", query, at, at, back)
			}
		}
	}
}

func TestSearchIsPureAcrossCalls(t *testing.T) {
	c := fruitCatalog()
	s := NewSearch(c, "e")
	for _, at := range everyCoordinate(c) {
		a1, ok1 := s.Forward(at)
		a2, ok2 := s.Forward(at)
		if a1 != a2 || ok1 != ok2 {
			t.Fatalf("expected repeatable forward search from %s", at)
		}
		b1, ok1 := s.Backward(at)
		b2, ok2 := s.Backward(at)
		if b1 != b2 || ok1 != ok2 {
			t.Fatalf("expected repeatable backward search from %s", at)
		}
	}
}

func TestSearchRebuiltAfterBackspace(t *testing.T) {
	c := catalog.MustNew([]catalog.Category{
		{Label: "Font", Items: []catalog.Item{{Name: "font name", Key: "x"}, {Name: "font size", Key: "y"}}},
	})
	var b SearchBuffer
	b.Append('f')
	b.Append('o')
	b.RemoveLast()
	s := NewSearch(c, b.String())
	if got, ok := s.First(); !ok || c.Item(got).Name != "font name" {
		t.Fatalf("expected font name for %q, got %s ok=%v", b.String(), got, ok)
	}
}

func TestSearchPanicsOnForeignCoordinate(t *testing.T) {
	s := NewSearch(fontCatalog(), "f")
	foreign := fruitCatalog().MustAt(2, 1)
	defer func() {
		if _, ok := recover().(*catalog.InvalidCoordinateError); !ok {
			t.Fatalf("expected InvalidCoordinateError panic")
		}
	}()
	s.Forward(foreign)
}
