package rotor

import (
	"errors"
	"testing"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
	"github.com/atomicstack/formatting-rotor/internal/settings"
)

type recorder struct {
	said []string
}

func (r *recorder) Announce(text string) { r.said = append(r.said, text) }

func (r *recorder) last() string {
	if len(r.said) == 0 {
		return ""
	}
	return r.said[len(r.said)-1]
}

func newTestRotor(t *testing.T, c *catalog.Catalog, opts ...Option) (*Rotor, *recorder, *settings.MemoryStore) {
	t.Helper()
	rec := &recorder{}
	store := settings.NewMemoryStore(testSchema(), nil)
	opts = append([]Option{WithAnnouncer(rec), WithLabels(testSchema())}, opts...)
	r, err := New(c, store, opts...)
	if err != nil {
		t.Fatalf("unexpected error opening rotor: %v", err)
	}
	return r, rec, store
}

func TestRotorSearchScenario(t *testing.T) {
	c := fontCatalog()
	r, rec, _ := newTestRotor(t, c)

	r.AppendChar('p')
	r.AppendChar('a')
	if got := r.Position(); got != c.MustAt(1, 0) {
		t.Fatalf("expected (1,0) after typing pa, got %s", got)
	}
	if rec.last() != "Pages" {
		t.Fatalf("expected Pages announced, got %q", rec.last())
	}

	r.RemoveChar()
	if r.Query() != "p" {
		t.Fatalf("expected buffer p, got %q", r.Query())
	}
	if got := r.Position(); got != c.MustAt(1, 0) {
		t.Fatalf("expected (1,0) after backspace, got %s", got)
	}

	r.StepItem(1)
	if got := r.Position(); got != c.MustAt(1, 0) {
		t.Fatalf("expected search to wrap back to (1,0), got %s", got)
	}
	if rec.last() != "Pages" {
		t.Fatalf("expected Pages announced after wrap, got %q", rec.last())
	}
}

func TestRotorBackspaceAnnouncesRemovedCharacter(t *testing.T) {
	r, rec, _ := newTestRotor(t, fontCatalog())
	r.AppendChar('f')
	r.AppendChar('o')
	r.RemoveChar()
	found := false
	for _, text := range rec.said {
		if text == "o deleted" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'o deleted' announcement, got %v", rec.said)
	}
	if rec.last() != "Font name" {
		t.Fatalf("expected search for f to land on Font name, got %q", rec.last())
	}
}

func TestRotorBackspaceToEmptyLeavesCursor(t *testing.T) {
	c := fontCatalog()
	r, _, _ := newTestRotor(t, c)
	r.AppendChar('s')
	want := c.MustAt(0, 1)
	if got := r.Position(); got != want {
		t.Fatalf("expected Font size for s, got %s", got)
	}
	r.RemoveChar()
	if r.Searching() {
		t.Fatalf("expected stepping mode once the buffer is empty")
	}
	if got := r.Position(); got != want {
		t.Fatalf("expected cursor to stay at %s, got %s", want, got)
	}
	r.StepItem(1)
	if got := r.Position(); got != c.MustAt(0, 0) {
		t.Fatalf("expected plain item step to wrap within Font, got %s", got)
	}
}

func TestRotorNothingToDelete(t *testing.T) {
	r, rec, _ := newTestRotor(t, fontCatalog())
	before := r.Position()
	r.RemoveChar()
	if rec.last() != MsgNothingToDelete {
		t.Fatalf("expected %q, got %q", MsgNothingToDelete, rec.last())
	}
	if r.Position() != before {
		t.Fatalf("expected cursor unchanged")
	}
}

func TestRotorNoMatchesKeepsCursor(t *testing.T) {
	c := fontCatalog()
	r, rec, _ := newTestRotor(t, c, WithStart(c.MustAt(0, 1)))
	r.AppendChar('q')
	if rec.last() != MsgNoMatches {
		t.Fatalf("expected %q, got %q", MsgNoMatches, rec.last())
	}
	if got := r.Position(); got != c.MustAt(0, 1) {
		t.Fatalf("expected cursor unchanged, got %s", got)
	}
	r.StepItem(-1)
	if rec.last() != MsgNoMatches {
		t.Fatalf("expected %q on step, got %q", MsgNoMatches, rec.last())
	}
	if got := r.Position(); got != c.MustAt(0, 1) {
		t.Fatalf("expected cursor unchanged after step, got %s", got)
	}
}

func TestRotorSearchStepsVisitMatchesOnly(t *testing.T) {
	c := catalog.Default()
	r, _, _ := newTestRotor(t, c)
	for _, ch := range "re" {
		r.AppendChar(ch)
	}
	search := NewSearch(c, "re")
	for i := 0; i < 2*len(c.Keys()); i++ {
		delta := 1
		if i%3 == 2 {
			delta = -1
		}
		r.StepItem(delta)
		if !search.MatchesAt(r.Position()) {
			t.Fatalf("expected search step to land on a match, got %s (%s)", r.Position(), r.Current().Name)
		}
	}
}

func TestRotorSearchWrapsBackward(t *testing.T) {
	c := fruitCatalog()
	r, _, _ := newTestRotor(t, c)
	r.AppendChar('e')
	if got := r.Position(); got != c.MustAt(0, 0) {
		t.Fatalf("expected apple as first match, got %s", got)
	}
	r.StepItem(-1)
	if got := r.Position(); got != c.MustAt(2, 1) {
		t.Fatalf("expected wrap to grape, got %s", got)
	}
}

func TestRotorCategoryStepIgnoredWhileSearching(t *testing.T) {
	c := fruitCatalog()
	r, _, _ := newTestRotor(t, c)
	r.AppendChar('g')
	at := r.Position()
	r.StepCategory(1)
	if r.Position() != at {
		t.Fatalf("expected category step to be ignored in search mode")
	}
}

func TestRotorDescribeCurrent(t *testing.T) {
	c := fontCatalog()
	r, rec, _ := newTestRotor(t, c)

	if got := r.DescribeCurrent(); got != "Font" {
		t.Fatalf("expected category label on open, got %q", got)
	}
	r.StepItem(1)
	if got := r.DescribeCurrent(); got != "Font size" {
		t.Fatalf("expected item name, got %q", got)
	}
	r.StepCategory(1)
	if rec.last() != "Pages" || r.LastChange() != ChangeCategory {
		t.Fatalf("expected category Pages, got %q (%s)", rec.last(), r.LastChange())
	}
	if err := r.CycleSetting(); err != nil {
		t.Fatalf("unexpected cycle error: %v", err)
	}
	if rec.last() != "unchecked" {
		t.Fatalf("expected pages to flip to unchecked, got %q", rec.last())
	}
}

func TestRotorDescribesIntegerLabels(t *testing.T) {
	c := catalog.MustNew([]catalog.Category{
		{Label: "Paragraph", Items: []catalog.Item{{Name: "Line indentation", Key: "lineIndent"}, {Name: "Borders", Key: "borders"}}},
	})
	r, rec, _ := newTestRotor(t, c)
	wants := []string{"speech", "tones", "both speech and tones", "off"}
	for _, want := range wants {
		if err := r.CycleSetting(); err != nil {
			t.Fatalf("unexpected cycle error: %v", err)
		}
		if rec.last() != want {
			t.Fatalf("expected %q, got %q", want, rec.last())
		}
	}
	r.StepItem(1)
	r.CycleSetting()
	if rec.last() != "1" {
		t.Fatalf("expected raw number for unlabelled value, got %q", rec.last())
	}
	if r.DescribeValue("borders") != "1" {
		t.Fatalf("expected DescribeValue to match, got %q", r.DescribeValue("borders"))
	}
}

func TestRotorSaveCommits(t *testing.T) {
	c := fontCatalog()
	r, rec, store := newTestRotor(t, c)
	r.StepItem(1)
	if err := r.Dispatch(CycleSetting()); err != nil {
		t.Fatalf("unexpected cycle error: %v", err)
	}
	if err := r.Dispatch(Save()); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if rec.last() != MsgConfigSaved {
		t.Fatalf("expected %q, got %q", MsgConfigSaved, rec.last())
	}
	if r.Outcome() != OutcomeSaved {
		t.Fatalf("expected saved outcome, got %v", r.Outcome())
	}
	values, _ := store.ReadCurrentValues()
	if !values["fontSize"].AsBool() {
		t.Fatalf("expected fontSize committed")
	}
	if err := r.Dispatch(StepItem(1)); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed after save, got %v", err)
	}
}

func TestRotorCancelDiscards(t *testing.T) {
	r, _, store := newTestRotor(t, fontCatalog())
	before, _ := store.ReadCurrentValues()
	r.Dispatch(CycleSetting())
	if err := r.Dispatch(Cancel()); err != nil {
		t.Fatalf("unexpected cancel error: %v", err)
	}
	if r.Outcome() != OutcomeCancelled || !r.Done() {
		t.Fatalf("expected cancelled rotor")
	}
	after, _ := store.ReadCurrentValues()
	if !before.Equal(after) {
		t.Fatalf("expected store untouched after cancel")
	}
	if r.AppendChar('x') {
		t.Fatalf("expected input to be ignored after cancel")
	}
}

func TestRotorSaveFailureStaysOpen(t *testing.T) {
	boom := errors.New("no space left")
	store := failingStore{MemoryStore: settings.NewMemoryStore(testSchema(), nil), err: boom}
	r, err := New(fontCatalog(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Save(); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if r.Done() {
		t.Fatalf("expected rotor to stay open after failed save")
	}
	if err := r.Cancel(); err != nil {
		t.Fatalf("expected cancel to succeed, got %v", err)
	}
}

func TestRotorDispatchRejectsUnknownEvent(t *testing.T) {
	r, _, _ := newTestRotor(t, fontCatalog())
	if err := r.Dispatch(Event{Kind: EventKind(99)}); err == nil {
		t.Fatalf("expected error for unknown event")
	}
}

func TestRotorMatchesOnlyInSearchMode(t *testing.T) {
	r, _, _ := newTestRotor(t, fruitCatalog())
	if r.Matches() != nil {
		t.Fatalf("expected no matches in stepping mode")
	}
	r.AppendChar('a')
	if got := len(r.Matches()); got != 4 {
		t.Fatalf("expected 4 matches for a, got %d", got)
	}
}
