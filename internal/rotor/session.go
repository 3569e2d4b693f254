package rotor

import (
	"errors"
	"fmt"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
	"github.com/atomicstack/formatting-rotor/internal/logging"
	"github.com/atomicstack/formatting-rotor/internal/logging/events"
	"github.com/atomicstack/formatting-rotor/internal/settings"
	"github.com/google/uuid"
)

var (
	// ErrSessionClosed is returned by operations on a committed or discarded
	// session, or on a rotor that has finished.
	ErrSessionClosed = errors.New("edit session closed")
	// ErrUnsupportedSettingKind marks a cycle request for a setting that is
	// neither boolean nor a bounded integer. Cycling such a setting is a no-op;
	// the error is only logged.
	ErrUnsupportedSettingKind = errors.New("unsupported setting kind")
)

// Session is a private working copy of the store's values. Edits stay local
// until Commit writes them back; Discard drops them.
type Session struct {
	id      string
	store   settings.Store
	seed    settings.Values
	working settings.Values
	closed  bool
}

// OpenSession seeds a session from the store's current values.
func OpenSession(store settings.Store) (*Session, error) {
	values, err := store.ReadCurrentValues()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	s := &Session{
		id:      uuid.NewString(),
		store:   store,
		seed:    values.Clone(),
		working: values.Clone(),
	}
	events.Session.Open(s.id, len(values))
	return s, nil
}

// ID identifies the session in trace output.
func (s *Session) ID() string {
	return s.id
}

// Closed reports whether the session was committed or discarded.
func (s *Session) Closed() bool {
	return s.closed
}

// Value returns the working value for key.
func (s *Session) Value(key string) (settings.Value, bool) {
	v, ok := s.working[key]
	return v, ok
}

// Working returns a copy of the working values.
func (s *Session) Working() settings.Values {
	return s.working.Clone()
}

// Changed returns the keys whose working value differs from the value read at
// open, in sorted order.
func (s *Session) Changed() []string {
	var changed []string
	for _, key := range s.working.Keys() {
		if seed, ok := s.seed[key]; !ok || seed != s.working[key] {
			changed = append(changed, key)
		}
	}
	return changed
}

// IsChanged reports whether key differs from the value read at open.
func (s *Session) IsChanged(key string) bool {
	v, ok := s.working[key]
	if !ok {
		return false
	}
	seed, ok := s.seed[key]
	return !ok || seed != v
}

// Cycle advances the working value of item's setting. Booleans flip; bounded
// integers count up and wrap from max back to min. Other kinds are left alone
// and the returned flag is false.
func (s *Session) Cycle(item catalog.Item) (settings.Value, bool, error) {
	if s.closed {
		return settings.Value{}, false, ErrSessionClosed
	}
	key := item.Key
	current, ok := s.working[key]
	validation := s.store.DescribeValidation(key)

	var next settings.Value
	switch validation.Kind {
	case settings.KindBoolean:
		next = settings.Bool(!current.AsBool())
	case settings.KindInteger:
		n := validation.Min - 1
		if ok {
			n = current.AsInt()
		}
		n++
		if n > validation.Max || n < validation.Min {
			n = validation.Min
		}
		next = settings.Int(n)
	default:
		events.Session.Unsupported(s.id, key, validation.Kind.String())
		logging.Error(fmt.Errorf("%w: %s is %s", ErrUnsupportedSettingKind, key, validation))
		return current, false, nil
	}
	s.working[key] = next
	events.Session.Cycle(s.id, key, next.String())
	return next, true, nil
}

// Commit writes the whole working copy to the store and closes the session.
// When the store rejects the write the session stays open.
func (s *Session) Commit() error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := s.store.WriteValues(s.working.Clone()); err != nil {
		events.Session.Error(s.id, err)
		return fmt.Errorf("write settings: %w", err)
	}
	events.Session.Commit(s.id, s.Changed())
	s.closed = true
	return nil
}

// Discard drops the working copy without touching the store.
func (s *Session) Discard() error {
	if s.closed {
		return ErrSessionClosed
	}
	events.Session.Discard(s.id, s.Changed())
	s.working = nil
	s.closed = true
	return nil
}
