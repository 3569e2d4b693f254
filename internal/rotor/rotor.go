package rotor

import (
	"fmt"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
	"github.com/atomicstack/formatting-rotor/internal/logging/events"
	"github.com/atomicstack/formatting-rotor/internal/settings"
)

// ChangeKind records what the last operation changed, which decides what
// DescribeCurrent reports.
type ChangeKind int

const (
	ChangeItem ChangeKind = iota
	ChangeCategory
	ChangeSearch
	ChangeSetting
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeItem:
		return "item"
	case ChangeCategory:
		return "category"
	case ChangeSearch:
		return "search"
	case ChangeSetting:
		return "setting"
	default:
		return fmt.Sprintf("change(%d)", int(k))
	}
}

// Outcome describes how a rotor finished.
type Outcome int

const (
	OutcomeOpen Outcome = iota
	OutcomeSaved
	OutcomeCancelled
)

// Rotor is one open navigator: a cursor over the catalog, the search buffer,
// and the edit session bound to them. A rotor is driven from a single input
// loop and is not safe for concurrent use.
type Rotor struct {
	catalog    *catalog.Catalog
	labels     Labeler
	announcer  Announcer
	cursor     Cursor
	buffer     SearchBuffer
	search     *Search
	session    *Session
	lastChange ChangeKind
	outcome    Outcome
}

// Option configures a Rotor.
type Option func(*Rotor)

// WithAnnouncer routes announcements to a.
func WithAnnouncer(a Announcer) Option {
	return func(r *Rotor) { r.announcer = a }
}

// WithLabels sets the value labels used for setting announcements.
func WithLabels(l Labeler) Option {
	return func(r *Rotor) { r.labels = l }
}

// WithStart places the cursor at a coordinate of the rotor's catalog.
func WithStart(at catalog.Coordinate) Option {
	return func(r *Rotor) { r.cursor = NewCursor(r.catalog, at) }
}

// New opens a rotor over c with a fresh edit session on store.
func New(c *catalog.Catalog, store settings.Store, opts ...Option) (*Rotor, error) {
	session, err := OpenSession(store)
	if err != nil {
		return nil, err
	}
	r := &Rotor{
		catalog:    c,
		labels:     settings.Schema{},
		announcer:  AnnouncerFunc(func(string) {}),
		cursor:     NewCursor(c, c.First()),
		session:    session,
		lastChange: ChangeCategory,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Catalog returns the catalog being navigated.
func (r *Rotor) Catalog() *catalog.Catalog { return r.catalog }

// Session returns the rotor's edit session.
func (r *Rotor) Session() *Session { return r.session }

// Position returns the coordinate under the cursor.
func (r *Rotor) Position() catalog.Coordinate { return r.cursor.Position() }

// Current returns the item under the cursor.
func (r *Rotor) Current() catalog.Item { return r.catalog.Item(r.cursor.Position()) }

// Query returns the search buffer as typed.
func (r *Rotor) Query() string { return r.buffer.String() }

// Searching reports whether the rotor is in search mode.
func (r *Rotor) Searching() bool { return !r.buffer.Empty() }

// LastChange returns what the last operation changed.
func (r *Rotor) LastChange() ChangeKind { return r.lastChange }

// Outcome reports whether the rotor is still open, saved, or cancelled.
func (r *Rotor) Outcome() Outcome { return r.outcome }

// Done reports whether the rotor was saved or cancelled.
func (r *Rotor) Done() bool { return r.outcome != OutcomeOpen }

// Matches returns every coordinate matching the current search, or nil in
// stepping mode.
func (r *Rotor) Matches() []catalog.Coordinate {
	if r.search == nil || r.buffer.Empty() {
		return nil
	}
	return r.search.All()
}

// Dispatch routes one decoded input event to the matching operation.
func (r *Rotor) Dispatch(ev Event) error {
	if r.Done() {
		return ErrSessionClosed
	}
	switch ev.Kind {
	case EventStepItem:
		r.StepItem(ev.Delta)
	case EventStepCategory:
		r.StepCategory(ev.Delta)
	case EventAppendChar:
		r.AppendChar(ev.Char)
	case EventRemoveChar:
		r.RemoveChar()
	case EventCycleSetting:
		return r.CycleSetting()
	case EventSave:
		return r.Save()
	case EventCancel:
		return r.Cancel()
	default:
		return fmt.Errorf("unknown event %s", ev)
	}
	return nil
}

// StepItem moves to the next (delta > 0) or previous (delta < 0) item. In
// search mode it moves to the next or previous match instead, wrapping to the
// first or last match at the catalog boundary.
func (r *Rotor) StepItem(delta int) {
	if delta == 0 || r.Done() {
		return
	}
	if !r.buffer.Empty() {
		r.stepMatch(delta > 0)
		return
	}
	if delta > 0 {
		r.cursor.NextItem()
	} else {
		r.cursor.PreviousItem()
	}
	at := r.cursor.Position()
	events.Rotor.Item(at.Category(), at.Item())
	r.changed(ChangeItem)
}

// StepCategory moves to the first item of the next (delta > 0) or previous
// (delta < 0) category. It does nothing in search mode.
func (r *Rotor) StepCategory(delta int) {
	if delta == 0 || r.Done() || !r.buffer.Empty() {
		return
	}
	if delta > 0 {
		r.cursor.NextCategory()
	} else {
		r.cursor.PreviousCategory()
	}
	at := r.cursor.Position()
	events.Rotor.Category(at.Category(), r.catalog.Label(at.Category()))
	r.changed(ChangeCategory)
}

// AppendChar adds ch to the search buffer and jumps to the first match. It
// reports false when ch is not a searchable character.
func (r *Rotor) AppendChar(ch rune) bool {
	if r.Done() {
		return false
	}
	if !r.buffer.Append(ch) {
		events.Buffer.Reject(ch)
		return false
	}
	events.Buffer.Append(r.buffer.String())
	r.rebuildSearch()
	r.searchFirst()
	return true
}

// RemoveChar drops the last typed character and searches again with the
// shorter buffer. Once the buffer is empty the rotor returns to stepping mode
// and the cursor stays put.
func (r *Rotor) RemoveChar() {
	if r.Done() {
		return
	}
	removed, ok := r.buffer.RemoveLast()
	if !ok {
		r.announce(MsgNothingToDelete)
		return
	}
	events.Buffer.Backspace(r.buffer.String(), removed)
	r.announce(deletedMessage(removed))
	r.rebuildSearch()
	if r.buffer.Empty() {
		return
	}
	r.searchFirst()
}

// CycleSetting advances the value of the setting under the cursor in the
// working copy.
func (r *Rotor) CycleSetting() error {
	if r.Done() {
		return ErrSessionClosed
	}
	if _, _, err := r.session.Cycle(r.Current()); err != nil {
		return err
	}
	r.changed(ChangeSetting)
	return nil
}

// Save commits the working copy to the store and closes the rotor. On a store
// error the rotor stays open.
func (r *Rotor) Save() error {
	if r.Done() {
		return ErrSessionClosed
	}
	if err := r.session.Commit(); err != nil {
		return err
	}
	r.outcome = OutcomeSaved
	events.Rotor.Closed("saved")
	r.announce(MsgConfigSaved)
	return nil
}

// Cancel discards the working copy and closes the rotor.
func (r *Rotor) Cancel() error {
	if r.Done() {
		return ErrSessionClosed
	}
	if err := r.session.Discard(); err != nil {
		return err
	}
	r.outcome = OutcomeCancelled
	events.Rotor.Closed("cancelled")
	return nil
}

// DescribeCurrent returns what the last change should be reported as: the
// item name after item or search moves, the category label after category
// moves, and the value label after a setting change.
func (r *Rotor) DescribeCurrent() string {
	at := r.cursor.Position()
	switch r.lastChange {
	case ChangeCategory:
		return r.catalog.Label(at.Category())
	case ChangeSetting:
		item := r.catalog.Item(at)
		if v, ok := r.session.Value(item.Key); ok {
			return r.labels.Describe(item.Key, v)
		}
		return item.Name
	default:
		return r.catalog.Item(at).Name
	}
}

// DescribeValue renders the working value of key, or "" when it has none.
func (r *Rotor) DescribeValue(key string) string {
	v, ok := r.session.Value(key)
	if !ok {
		return ""
	}
	return r.labels.Describe(key, v)
}

func (r *Rotor) stepMatch(forward bool) {
	from := r.cursor.Position()
	var (
		at catalog.Coordinate
		ok bool
	)
	if forward {
		at, ok = r.search.Forward(from)
		if !ok {
			events.Rotor.Wrap(r.search.Query(), "forward")
			at, ok = r.search.First()
		}
	} else {
		at, ok = r.search.Backward(from)
		if !ok {
			events.Rotor.Wrap(r.search.Query(), "backward")
			at, ok = r.search.Last()
		}
	}
	r.land(at, ok)
}

func (r *Rotor) searchFirst() {
	at, ok := r.search.First()
	r.land(at, ok)
}

func (r *Rotor) land(at catalog.Coordinate, ok bool) {
	if !ok {
		events.Rotor.NoMatch(r.search.Query())
		r.announce(MsgNoMatches)
		return
	}
	r.cursor.MoveTo(at)
	events.Rotor.Search(r.search.Query(), at.Category(), at.Item())
	r.changed(ChangeSearch)
}

// rebuildSearch binds a new search to the current buffer contents. A search
// never outlives the buffer it was built from.
func (r *Rotor) rebuildSearch() {
	if r.buffer.Empty() {
		r.search = nil
		return
	}
	r.search = NewSearch(r.catalog, r.buffer.String())
}

func (r *Rotor) changed(kind ChangeKind) {
	r.lastChange = kind
	r.announce(r.DescribeCurrent())
}

func (r *Rotor) announce(text string) {
	events.Rotor.Announce(text)
	r.announcer.Announce(text)
}
