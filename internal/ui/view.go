package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
	"github.com/atomicstack/formatting-rotor/internal/format/table"
	"github.com/atomicstack/formatting-rotor/internal/rotor"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	modifiedMarker = " *"
	searchPrompt   = "» "
	placeholder    = "(type to search)"
)

// styledLine is one row of the view. When split is set, the first split runes
// are drawn with prefixStyle and the rest with style.
type styledLine struct {
	text        string
	style       *lipgloss.Style
	prefixStyle *lipgloss.Style
	split       int
}

// fit truncates the line to width cells. Lines without styles may already
// contain ANSI escapes, so they are measured with lipgloss.
func (l styledLine) fit(width int) styledLine {
	switch {
	case width <= 0:
	case l.style == nil && l.prefixStyle == nil:
		if lipgloss.Width(l.text) > width {
			l.text = truncate.StringWithTail(l.text, uint(width-1), "…")
		}
	case runewidth.StringWidth(l.text) > width:
		tail := "…"
		if width == 1 {
			tail = ""
		}
		l.text = runewidth.Truncate(l.text, width, tail)
	}
	return l
}

func (l styledLine) render() string {
	runes := []rune(l.text)
	if l.split <= 0 || l.split >= len(runes) {
		return renderWith(l.style, l.text)
	}
	return renderWith(l.prefixStyle, string(runes[:l.split])) + renderWith(l.style, string(runes[l.split:]))
}

func renderWith(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

// block is a run of view rows.
type block []styledLine

// clip keeps at most height rows, replacing the overflow with an ellipsis row.
func (b block) clip(height, width int) block {
	if height <= 0 || len(b) <= height {
		return b
	}
	out := append(block(nil), b[:height-1]...)
	return append(out, styledLine{text: "…"}.fit(width))
}

func (b block) fit(width int) block {
	out := make(block, len(b))
	for i, l := range b {
		out[i] = l.fit(width)
	}
	return out
}

func (b block) String() string {
	rendered := make([]string, len(b))
	for i, l := range b {
		rendered[i] = l.render()
	}
	return strings.Join(rendered, "\n")
}

// View implements tea.Model.
func (m *Model) View() string {
	body := block{m.headerLine()}
	body = append(body, m.itemLines()...)
	if footer := m.footerLines(); len(footer) > 0 {
		body = append(body, styledLine{})
		body = append(body, footer...)
	}
	body = body.clip(m.height-2, m.width).fit(m.width)

	// Bottom bar: announcement or error, then the search prompt.
	status := styledLine{text: m.announcement, style: m.styles.Announcement}
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: m.styles.Error}
	}
	body = append(body, status.fit(m.width))
	return body.String() + "\n" + m.searchPromptView()
}

func (m *Model) headerLine() styledLine {
	r := m.rotor
	if r.Searching() {
		text := fmt.Sprintf("Search %q: %s", r.Query(), pluralMatches(len(r.Matches())))
		return styledLine{text: text, style: m.styles.Category}
	}
	at := r.Position()
	label := r.Catalog().Label(at.Category())
	position := fmt.Sprintf("  %d/%d", at.Category()+1, r.Catalog().Len())
	return styledLine{
		text:        label + position,
		style:       m.styles.CategoryPosition,
		prefixStyle: m.styles.Category,
		split:       len([]rune(label)),
	}
}

func pluralMatches(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

// visibleCoordinates returns what the list shows: the current category's
// items while stepping, or every match while searching.
func (m *Model) visibleCoordinates() []catalog.Coordinate {
	r := m.rotor
	if r.Searching() {
		return r.Matches()
	}
	c := r.Catalog()
	category := r.Position().Category()
	out := make([]catalog.Coordinate, c.ItemCount(category))
	for i := range out {
		out[i] = c.MustAt(category, i)
	}
	return out
}

func (m *Model) itemLines() []styledLine {
	r := m.rotor
	coords := m.visibleCoordinates()
	if len(coords) == 0 {
		return []styledLine{{text: "(" + strings.ToLower(rotor.MsgNoMatches) + ")", style: m.styles.FilterPlaceholder}}
	}
	cursor := -1
	for i, at := range coords {
		if at == r.Position() {
			cursor = i
			break
		}
	}
	start, end := m.window(len(coords), cursor)

	rows := make([][]string, 0, end-start)
	for _, at := range coords[start:end] {
		item := r.Catalog().Item(at)
		name := item.Name
		if r.Searching() {
			name = r.Catalog().Label(at.Category()) + ": " + name
		}
		if r.Session().IsChanged(item.Key) {
			name += modifiedMarker
		}
		rows = append(rows, []string{"▌ " + name, r.DescribeValue(item.Key)})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})

	lines := make([]styledLine, len(formatted))
	for i, text := range formatted {
		line := styledLine{
			text:        text,
			style:       m.styles.Item,
			prefixStyle: m.styles.ItemIndicator,
			split:       1,
		}
		if start+i == cursor {
			line.style = m.styles.SelectedItem
			line.prefixStyle = m.styles.SelectedItemIndicator
			if m.width > 0 {
				if pad := m.width - runewidth.StringWidth(text); pad > 0 {
					line.text += strings.Repeat(" ", pad)
				}
			}
		}
		lines[i] = line
	}
	return lines
}

// window picks the slice of a list of n rows to display so the cursor row
// stays visible. The offset is kept between renders to avoid jumping.
func (m *Model) window(n, cursor int) (int, int) {
	limit := m.maxVisibleItems()
	if limit <= 0 || n <= limit {
		m.offset = 0
		return 0, n
	}
	if cursor >= 0 {
		if cursor < m.offset {
			m.offset = cursor
		}
		if cursor >= m.offset+limit {
			m.offset = cursor - limit + 1
		}
	}
	if m.offset > n-limit {
		m.offset = n - limit
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m.offset, m.offset + limit
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header, status line, search prompt
	if footer := m.footerLines(); len(footer) > 0 {
		used += len(footer) + 1
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) footerLines() []styledLine {
	if !m.showFooter && !m.help.ShowAll {
		return nil
	}
	var lines []styledLine
	if m.help.ShowAll {
		text := rotor.Help
		if m.width > 0 {
			text = wordwrap.String(text, m.width)
		}
		for _, line := range strings.Split(text, "\n") {
			lines = append(lines, styledLine{text: line, style: m.styles.Footer})
		}
	}
	for _, line := range strings.Split(m.help.View(m.keys), "\n") {
		// help.View already styles its output.
		lines = append(lines, styledLine{text: line})
	}
	return lines
}

func (m *Model) searchPromptView() string {
	prompt := searchPrompt
	if m.styles.FilterPrompt != nil {
		prompt = m.styles.FilterPrompt.Render(prompt)
	}
	query := m.rotor.Query()
	if query == "" {
		hint := placeholder
		if m.styles.FilterPlaceholder != nil {
			hint = m.styles.FilterPlaceholder.Render(hint)
		}
		return prompt + m.filterCursor.View() + hint
	}
	text := query
	if m.styles.Filter != nil {
		text = m.styles.Filter.Render(text)
	}
	return prompt + text + m.filterCursor.View()
}
