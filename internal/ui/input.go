package ui

import (
	"github.com/atomicstack/formatting-rotor/internal/logging"
	"github.com/atomicstack/formatting-rotor/internal/logging/events"
	"github.com/atomicstack/formatting-rotor/internal/rotor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(keyMsg tea.KeyMsg) tea.Cmd {
	if key.Matches(keyMsg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		events.UI.Key(keyMsg.String(), "help")
		return nil
	}
	evs := m.decodeKey(keyMsg)
	if len(evs) == 0 {
		return nil
	}
	before := m.rotor.Query()
	m.errMsg = ""
	for _, ev := range evs {
		events.UI.Key(keyMsg.String(), ev.String())
		if err := m.rotor.Dispatch(ev); err != nil {
			m.errMsg = err.Error()
			events.UI.Error(err)
			logging.Error(err)
			break
		}
	}
	if m.rotor.Query() != before {
		m.filterCursorDirty = true
	}
	if m.rotor.Done() {
		return tea.Quit
	}
	return nil
}

// decodeKey translates a key press into rotor events. A paste delivers several
// runes at once and yields one append event per rune.
func (m *Model) decodeKey(msg tea.KeyMsg) []rotor.Event {
	switch {
	case key.Matches(msg, m.keys.PrevCategory):
		return []rotor.Event{rotor.StepCategory(-1)}
	case key.Matches(msg, m.keys.NextCategory):
		return []rotor.Event{rotor.StepCategory(1)}
	case key.Matches(msg, m.keys.PrevItem):
		return []rotor.Event{rotor.StepItem(-1)}
	case key.Matches(msg, m.keys.NextItem):
		return []rotor.Event{rotor.StepItem(1)}
	case key.Matches(msg, m.keys.Backspace):
		return []rotor.Event{rotor.RemoveChar()}
	case key.Matches(msg, m.keys.Cycle):
		return []rotor.Event{rotor.CycleSetting()}
	case key.Matches(msg, m.keys.Save):
		return []rotor.Event{rotor.Save()}
	case key.Matches(msg, m.keys.Cancel):
		return []rotor.Event{rotor.Cancel()}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	evs := make([]rotor.Event, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if !rotor.Accepts(r) {
			continue
		}
		evs = append(evs, rotor.AppendChar(r))
	}
	return evs
}

func (m *Model) handleWindowSizeMsg(resize tea.WindowSizeMsg) tea.Cmd {
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	events.UI.Resize(m.width, m.height)
	return nil
}
