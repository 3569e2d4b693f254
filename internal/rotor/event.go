package rotor

import "fmt"

// EventKind identifies a decoded input event.
type EventKind int

const (
	EventStepItem EventKind = iota + 1
	EventStepCategory
	EventAppendChar
	EventRemoveChar
	EventCycleSetting
	EventSave
	EventCancel
)

func (k EventKind) String() string {
	switch k {
	case EventStepItem:
		return "step-item"
	case EventStepCategory:
		return "step-category"
	case EventAppendChar:
		return "append-char"
	case EventRemoveChar:
		return "remove-char"
	case EventCycleSetting:
		return "cycle-setting"
	case EventSave:
		return "save"
	case EventCancel:
		return "cancel"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one already-decoded input event. Delta carries the direction of
// step events; Char carries the character of append events.
type Event struct {
	Kind  EventKind
	Delta int
	Char  rune
}

func (e Event) String() string {
	switch e.Kind {
	case EventStepItem, EventStepCategory:
		return fmt.Sprintf("%s(%+d)", e.Kind, e.Delta)
	case EventAppendChar:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Char)
	default:
		return e.Kind.String()
	}
}

func StepItem(delta int) Event     { return Event{Kind: EventStepItem, Delta: delta} }
func StepCategory(delta int) Event { return Event{Kind: EventStepCategory, Delta: delta} }
func AppendChar(r rune) Event      { return Event{Kind: EventAppendChar, Char: r} }
func RemoveChar() Event            { return Event{Kind: EventRemoveChar} }
func CycleSetting() Event          { return Event{Kind: EventCycleSetting} }
func Save() Event                  { return Event{Kind: EventSave} }
func Cancel() Event                { return Event{Kind: EventCancel} }
