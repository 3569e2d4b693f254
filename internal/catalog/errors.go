package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate marks a coordinate outside the catalog bounds.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrMalformedCatalog marks category definitions that break the catalog invariants.
	ErrMalformedCatalog = errors.New("malformed catalog")
)

// InvalidCoordinateError describes an out-of-range coordinate.
type InvalidCoordinateError struct {
	Category   int
	Item       int
	Categories int
	Items      int
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("%s: (%d,%d) outside %d categories (category holds %d items)", ErrInvalidCoordinate, e.Category, e.Item, e.Categories, e.Items)
}

func (e *InvalidCoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}
