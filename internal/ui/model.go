package ui

import (
	"reflect"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
	"github.com/atomicstack/formatting-rotor/internal/rotor"
	"github.com/atomicstack/formatting-rotor/internal/settings"
	"github.com/atomicstack/formatting-rotor/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)


type msgHandler func(tea.Msg) tea.Cmd

// Config describes how the terminal host is laid out.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	HighContrast bool
}

// Model implements the Bubble Tea model hosting one rotor.
type Model struct {
	rotor        *rotor.Rotor
	styles       *theme.Styles
	keys         keyMap
	help         help.Model
	announcement string
	errMsg       string
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	offset       int

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel opens a rotor over c backed by store and wraps it for Bubble Tea.
// Announcements from the rotor become the model's status line.
func NewModel(c *catalog.Catalog, store settings.Store, labels rotor.Labeler, cfg Config) (*Model, error) {
	m := &Model{
		styles:     theme.Default(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		showFooter: cfg.ShowFooter,
	}
	if cfg.HighContrast {
		m.styles = theme.HighContrast()
	}
	opts := []rotor.Option{rotor.WithAnnouncer(rotor.AnnouncerFunc(m.announce))}
	if labels != nil {
		opts = append(opts, rotor.WithLabels(labels))
	}
	r, err := rotor.New(c, store, opts...)
	if err != nil {
		return nil, err
	}
	m.rotor = r
	m.announce(r.DescribeCurrent())
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	fc := cursor.New()
	if m.styles.Cursor != nil {
		fc.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Filter != nil {
		fc.TextStyle = m.styles.Filter.Copy()
	}
	fc.SetChar(" ")
	m.filterCursor = fc
	m.registerHandlers()
	return m, nil
}

// Rotor exposes the hosted rotor.
func (m *Model) Rotor() *rotor.Rotor {
	return m.rotor
}

// Announcement returns the most recent announcement.
func (m *Model) Announcement() string {
	return m.announcement
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update routes msg to the handler registered for its type. The search caret
// always sees the message so it can blink.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var caret tea.Cmd
	m.filterCursor, caret = m.filterCursor.Update(msg)
	cmds = append(cmds, caret)
	if msg != nil {
		if handler, ok := m.handlers[reflect.TypeOf(msg)]; ok {
			cmds = append(cmds, handler(msg))
		}
	}
	if m.filterCursorDirty {
		// Keep the caret solid while the query is changing.
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		cmds = append(cmds, m.filterCursor.BlinkCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = make(map[reflect.Type]msgHandler)
	on(m.handlers, m.handleKeyMsg)
	on(m.handlers, m.handleWindowSizeMsg)
}

// on registers fn for messages of type T.
func on[T tea.Msg](handlers map[reflect.Type]msgHandler, fn func(T) tea.Cmd) {
	var zero T
	handlers[reflect.TypeOf(zero)] = func(msg tea.Msg) tea.Cmd {
		return fn(msg.(T))
	}
}

func (m *Model) announce(text string) {
	m.announcement = text
}
