package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table is a header plus rows rendered as aligned text columns.
type Table struct {
	Header     []string
	Rows       [][]string
	Alignments []Alignment
}

// Lines renders the header, a dashed rule under it, and the rows.
func (t Table) Lines() []string {
	rows := make([][]string, 0, len(t.Rows)+1)
	if len(t.Header) > 0 {
		rows = append(rows, t.Header)
	}
	rows = append(rows, t.Rows...)
	widths := columnWidths(rows)
	lines := formatRows(rows, widths, t.Alignments)
	if len(t.Header) == 0 {
		return lines
	}
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[0], strings.Join(rule, "  "))
	return append(out, lines[1:]...)
}

// String joins Lines with newlines.
func (t Table) String() string {
	return strings.Join(t.Lines(), "\n")
}

// Format returns the rows padded according to the widest entry in each column.
// Widths are measured in terminal cells, so wide runes take two columns.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	return formatRows(rows, columnWidths(rows), alignments)
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	return widths
}

func formatRows(rows [][]string, widths []int, alignments []Alignment) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, pad)
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
