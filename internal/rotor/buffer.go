package rotor

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SearchBuffer holds the characters typed while the rotor is open. An empty
// buffer means stepping mode; a non-empty one means search mode.
type SearchBuffer struct {
	runes []rune
}

// Accepts reports whether r may be appended to a search buffer. Only single
// printable, non-space characters qualify; everything else is routed to other
// operations by the host.
func Accepts(r rune) bool {
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// Append adds r to the end of the buffer when Accepts(r).
func (b *SearchBuffer) Append(r rune) bool {
	if !Accepts(r) {
		return false
	}
	b.runes = append(b.runes, r)
	return true
}

// RemoveLast drops the final character and returns it. It reports false when
// the buffer is already empty.
func (b *SearchBuffer) RemoveLast() (rune, bool) {
	if len(b.runes) == 0 {
		return 0, false
	}
	last := b.runes[len(b.runes)-1]
	b.runes = b.runes[:len(b.runes)-1]
	return last, true
}

// Clear empties the buffer.
func (b *SearchBuffer) Clear() {
	b.runes = b.runes[:0]
}

// Empty reports whether nothing has been typed.
func (b *SearchBuffer) Empty() bool {
	return len(b.runes) == 0
}

// Len returns the number of characters in the buffer.
func (b *SearchBuffer) Len() int {
	return len(b.runes)
}

// String returns the buffer as typed.
func (b *SearchBuffer) String() string {
	return string(b.runes)
}

// Query returns the case-normalised buffer used for matching.
func (b *SearchBuffer) Query() string {
	return fold(string(b.runes))
}

func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
