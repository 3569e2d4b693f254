package rotor

import (
	"strings"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
)

// Search locates catalog items whose name contains a query, ignoring case.
// It scans in row-major order, treating the end of one category as contiguous
// with the start of the next, and stops at the catalog boundaries instead of
// wrapping. A Search is bound to one query; build a new one whenever the
// query changes.
type Search struct {
	catalog *catalog.Catalog
	query   string
}

// NewSearch returns a search over c for query.
func NewSearch(c *catalog.Catalog, query string) *Search {
	return &Search{catalog: c, query: fold(query)}
}

// Query returns the normalised query the search matches against.
func (s *Search) Query() string {
	return s.query
}

// Matches reports whether item's name contains the query.
func (s *Search) Matches(item catalog.Item) bool {
	return strings.Contains(fold(item.Name), s.query)
}

// MatchesAt reports whether the item at the coordinate matches.
func (s *Search) MatchesAt(at catalog.Coordinate) bool {
	return s.Matches(s.catalog.Item(at))
}

// Forward returns the first match strictly after from.
func (s *Search) Forward(from catalog.Coordinate) (catalog.Coordinate, bool) {
	at, ok := s.catalog.Next(from)
	for ok {
		if s.MatchesAt(at) {
			return at, true
		}
		at, ok = s.catalog.Next(at)
	}
	return catalog.Coordinate{}, false
}

// Backward returns the nearest match strictly before from.
func (s *Search) Backward(from catalog.Coordinate) (catalog.Coordinate, bool) {
	at, ok := s.catalog.Prev(from)
	for ok {
		if s.MatchesAt(at) {
			return at, true
		}
		at, ok = s.catalog.Prev(at)
	}
	return catalog.Coordinate{}, false
}

// First returns the earliest match in the catalog.
func (s *Search) First() (catalog.Coordinate, bool) {
	return s.FromCursor(s.catalog.First())
}

// Last returns the latest match in the catalog.
func (s *Search) Last() (catalog.Coordinate, bool) {
	last := s.catalog.Last()
	if s.MatchesAt(last) {
		return last, true
	}
	return s.Backward(last)
}

// FromCursor returns at when it matches and the next match after it otherwise.
func (s *Search) FromCursor(at catalog.Coordinate) (catalog.Coordinate, bool) {
	if s.MatchesAt(at) {
		return at, true
	}
	return s.Forward(at)
}

// All returns every match in row-major order.
func (s *Search) All() []catalog.Coordinate {
	var out []catalog.Coordinate
	at, ok := s.First()
	for ok {
		out = append(out, at)
		at, ok = s.Forward(at)
	}
	return out
}
