package events

import "github.com/atomicstack/formatting-rotor/internal/logging"

type RotorTracer struct{}

type BufferTracer struct{}

var (
	Rotor  = RotorTracer{}
	Buffer = BufferTracer{}
)

func (RotorTracer) Item(category, item int) {
	logging.Trace("rotor.item", map[string]interface{}{"category": category, "item": item})
}

func (RotorTracer) Category(category int, label string) {
	logging.Trace("rotor.category", map[string]interface{}{"category": category, "label": label})
}

func (RotorTracer) Search(query string, category, item int) {
	logging.Trace("rotor.search", map[string]interface{}{"query": query, "category": category, "item": item})
}

func (RotorTracer) Wrap(query, direction string) {
	logging.Trace("rotor.wrap", map[string]interface{}{"query": query, "direction": direction})
}

func (RotorTracer) NoMatch(query string) {
	logging.Trace("rotor.no-match", map[string]interface{}{"query": query})
}

func (RotorTracer) Announce(text string) {
	logging.Trace("rotor.announce", map[string]interface{}{"text": text})
}

func (RotorTracer) Closed(reason string) {
	logging.Trace("rotor.closed", map[string]interface{}{"reason": reason})
}

func (BufferTracer) Append(query string) {
	logging.Trace("buffer.append", map[string]interface{}{"query": query})
}

func (BufferTracer) Backspace(query string, removed rune) {
	logging.Trace("buffer.backspace", map[string]interface{}{"query": query, "removed": string(removed)})
}

func (BufferTracer) Reject(r rune) {
	logging.Trace("buffer.reject", map[string]interface{}{"rune": r})
}
