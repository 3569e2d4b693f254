// Package theme holds the Lip Gloss styles used by the rotor view.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Category              *lipgloss.Style
	CategoryPosition      *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Error                 *lipgloss.Style
	Announcement          *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
}

// Palette names the handful of colours a style set is derived from.
type Palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Faint     lipgloss.Color
	Heading   lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Selection lipgloss.Color
	Positive  lipgloss.Color
	Danger    lipgloss.Color
	Inverse   lipgloss.Color
}

// DefaultPalette is the 256-colour scheme used on ordinary terminals.
var DefaultPalette = Palette{
	Text:      "249",
	Muted:     "241",
	Faint:     "238",
	Heading:   "245",
	Accent:    "33",
	Highlight: "255",
	Selection: "238",
	Positive:  "34",
	Danger:    "196",
	Inverse:   "0",
}

// HighContrastPalette keeps to black, white and saturated primaries for
// low-vision users and screen magnifiers.
var HighContrastPalette = Palette{
	Text:      "15",
	Muted:     "15",
	Faint:     "15",
	Heading:   "15",
	Accent:    "11",
	Highlight: "0",
	Selection: "15",
	Positive:  "10",
	Danger:    "9",
	Inverse:   "0",
}

var (
	defaultStyles      = New(DefaultPalette)
	highContrastStyles = New(HighContrastPalette)
)

// New derives a full style set from p.
func New(p Palette) *Styles {
	style := func() lipgloss.Style { return lipgloss.NewStyle() }
	return &Styles{
		Category:              ptr(style().Foreground(p.Heading).Bold(true)),
		CategoryPosition:      ptr(style().Foreground(p.Muted)),
		Item:                  ptr(style().Foreground(p.Text)),
		ItemIndicator:         ptr(style().Foreground(p.Faint)),
		SelectedItemIndicator: ptr(style().Foreground(p.Accent).Background(p.Selection)),
		SelectedItem:          ptr(style().Foreground(p.Highlight).Background(p.Selection).Bold(true)),
		Error:                 ptr(style().Foreground(p.Danger).Bold(true)),
		Announcement:          ptr(style().Foreground(p.Accent).Italic(true)),
		Footer:                ptr(style().Foreground(p.Muted)),
		Filter:                ptr(style().Foreground(p.Text)),
		FilterPrompt:          ptr(style().Foreground(p.Positive).Bold(true)),
		FilterPlaceholder:     ptr(style().Foreground(p.Muted)),
		Cursor:                ptr(style().Foreground(p.Inverse).Background(p.Accent)),
	}
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return defaultStyles
}

// HighContrast exposes the style set selected by -high-contrast.
func HighContrast() *Styles {
	return highContrastStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
