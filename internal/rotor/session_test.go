package rotor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
	"github.com/atomicstack/formatting-rotor/internal/logging"
	"github.com/atomicstack/formatting-rotor/internal/settings"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func testSchema() settings.Schema {
	return settings.Schema{
		"fontName": {Validation: settings.Boolean(), Default: settings.Bool(true)},
		"fontSize": {Validation: settings.Boolean(), Default: settings.Bool(false)},
		"pages":    {Validation: settings.Boolean(), Default: settings.Bool(true)},
		"lineIndent": {
			Validation: settings.Integer(0, 3),
			Default:    settings.Int(0),
			Labels:     map[int]string{0: "off", 1: "speech", 2: "tones", 3: "both speech and tones"},
		},
		"borders": {Validation: settings.Integer(0, 2), Default: settings.Int(0)},
	}
}

type failingStore struct {
	*settings.MemoryStore
	err error
}

func (s failingStore) WriteValues(settings.Values) error { return s.err }

type brokenReader struct {
	*settings.MemoryStore
}

func (brokenReader) ReadCurrentValues() (settings.Values, error) {
	return nil, errors.New("disk on fire")
}

func TestSessionCyclesBooleans(t *testing.T) {
	store := settings.NewMemoryStore(testSchema(), nil)
	s, err := OpenSession(store)
	assert.NilError(t, err)

	v, ok, err := s.Cycle(catalog.Item{Name: "Font name", Key: "fontName"})
	assert.NilError(t, err)
	assert.Check(t, ok)
	assert.Check(t, !v.AsBool())
	assert.Check(t, s.IsChanged("fontName"))

	v, _, _ = s.Cycle(catalog.Item{Name: "Font name", Key: "fontName"})
	assert.Check(t, v.AsBool())
	assert.Check(t, !s.IsChanged("fontName"))
	assert.Check(t, is.Len(s.Changed(), 0))
}

func TestSessionCyclesIntegersWithinBounds(t *testing.T) {
	store := settings.NewMemoryStore(testSchema(), settings.Values{"lineIndent": settings.Int(1)})
	s, err := OpenSession(store)
	assert.NilError(t, err)

	item := catalog.Item{Name: "Line indentation", Key: "lineIndent"}
	var seen []int
	for i := 0; i < 4; i++ {
		v, ok, err := s.Cycle(item)
		assert.NilError(t, err)
		assert.Check(t, ok)
		seen = append(seen, v.AsInt())
	}
	assert.DeepEqual(t, seen, []int{2, 3, 0, 1})
}

func TestSessionCycleRecoversOutOfRangeValue(t *testing.T) {
	store := settings.NewMemoryStore(testSchema(), settings.Values{"borders": settings.Int(9)})
	s, err := OpenSession(store)
	assert.NilError(t, err)

	v, _, err := s.Cycle(catalog.Item{Key: "borders"})
	assert.NilError(t, err)
	assert.Equal(t, v.AsInt(), 0)
}

func TestSessionCycleUnsupportedKindIsNoop(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "rotor.log"))
	t.Cleanup(func() { logging.Configure("") })

	store := settings.NewMemoryStore(testSchema(), settings.Values{"mystery": settings.Int(5)})
	s, err := OpenSession(store)
	assert.NilError(t, err)

	v, ok, err := s.Cycle(catalog.Item{Name: "Mystery", Key: "mystery"})
	assert.NilError(t, err)
	assert.Check(t, !ok)
	assert.Equal(t, v.AsInt(), 5)
	assert.Check(t, is.Len(s.Changed(), 0))
}

func TestSessionCommitIsolation(t *testing.T) {
	store := settings.NewMemoryStore(testSchema(), nil)
	s, err := OpenSession(store)
	assert.NilError(t, err)

	s.Cycle(catalog.Item{Key: "fontSize"})
	s.Cycle(catalog.Item{Key: "lineIndent"})

	before, err := store.ReadCurrentValues()
	assert.NilError(t, err)
	assert.Check(t, !before["fontSize"].AsBool(), "store must not see uncommitted edits")
	assert.Equal(t, before["lineIndent"].AsInt(), 0)

	assert.NilError(t, s.Commit())
	assert.Check(t, s.Closed())

	after, err := store.ReadCurrentValues()
	assert.NilError(t, err)
	assert.Check(t, after["fontSize"].AsBool())
	assert.Equal(t, after["lineIndent"].AsInt(), 1)

	_, _, err = s.Cycle(catalog.Item{Key: "fontSize"})
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, s.Commit(), ErrSessionClosed)
	assert.ErrorIs(t, s.Discard(), ErrSessionClosed)
}

func TestSessionDiscardLeavesStoreUntouched(t *testing.T) {
	store := settings.NewMemoryStore(testSchema(), nil)
	before, _ := store.ReadCurrentValues()

	s, err := OpenSession(store)
	assert.NilError(t, err)
	s.Cycle(catalog.Item{Key: "pages"})
	s.Cycle(catalog.Item{Key: "borders"})
	assert.NilError(t, s.Discard())

	after, _ := store.ReadCurrentValues()
	assert.Check(t, before.Equal(after))
}

func TestSessionCommitFailureKeepsSessionOpen(t *testing.T) {
	boom := errors.New("read-only filesystem")
	store := failingStore{MemoryStore: settings.NewMemoryStore(testSchema(), nil), err: boom}
	s, err := OpenSession(store)
	assert.NilError(t, err)
	s.Cycle(catalog.Item{Key: "pages"})

	err = s.Commit()
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "write settings")
	assert.Check(t, !s.Closed())
	assert.DeepEqual(t, s.Changed(), []string{"pages"})
}

func TestOpenSessionWrapsReadError(t *testing.T) {
	_, err := OpenSession(brokenReader{settings.NewMemoryStore(testSchema(), nil)})
	assert.ErrorContains(t, err, "read settings: disk on fire")
}

func TestSessionIDsAreUnique(t *testing.T) {
	store := settings.NewMemoryStore(testSchema(), nil)
	a, _ := OpenSession(store)
	b, _ := OpenSession(store)
	assert.Check(t, a.ID() != "")
	assert.Check(t, a.ID() != b.ID())
}
