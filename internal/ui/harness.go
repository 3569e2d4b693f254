package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness feeds messages to a Model without a terminal, running any commands
// the model returns, and records every announcement it makes along the way.
type Harness struct {
	model  *Model
	spoken []string
	quit   bool
}

// NewHarness wraps model. The search caret is made static so the harness
// never waits on blink timers.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		model.filterCursor.SetMode(cursor.CursorStatic)
		h.spoken = append(h.spoken, model.Announcement())
	}
	return h
}

// Send delivers msg and drains the resulting commands. Messages sent after
// the model quit are dropped.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	h.deliver(msg)
}

// Type presses each rune of text in turn.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a non-rune key.
func (h *Harness) Press(t tea.KeyType) {
	h.Send(tea.KeyMsg{Type: t})
}

func (h *Harness) deliver(msg tea.Msg) {
	before := h.model.Announcement()
	next, cmd := h.model.Update(msg)
	if m, ok := next.(*Model); ok {
		h.model = m
	}
	if now := h.model.Announcement(); now != before {
		h.spoken = append(h.spoken, now)
	}
	h.run(cmd)
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil || h.quit {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.QuitMsg:
		h.quit = true
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	default:
		h.deliver(msg)
	}
}

// Announcements lists the distinct status announcements in the order they
// were made, starting with the one shown when the model opened.
func (h *Harness) Announcements() []string {
	return append([]string(nil), h.spoken...)
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View renders the model.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
