package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atomicstack/formatting-rotor/internal/logging/events"
)

// Store is the backing store an edit session reads from and commits to.
type Store interface {
	ReadCurrentValues() (Values, error)
	WriteValues(values Values) error
	DescribeValidation(key string) Validation
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendMemory = "memory"
)

// Open returns the store for backend. An empty backend name picks JSON for a
// .json path and SQLite for anything else.
func Open(backend, path string, schema Schema) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendSQLite:
		return NewSQLiteStore(path, schema)
	case BackendJSON:
		return NewJSONStore(path, schema), nil
	case BackendMemory:
		return NewMemoryStore(schema, nil), nil
	case "":
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return NewJSONStore(path, schema), nil
		}
		return NewSQLiteStore(path, schema)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// DefaultPath returns the default store location for backend under the
// user's config directory.
func DefaultPath(backend string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	name := "settings.db"
	if backend == BackendJSON {
		name = "settings.json"
	}
	return filepath.Join(dir, "formatting-rotor", name), nil
}

// MemoryStore keeps settings in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	schema Schema
	values Values
}

// NewMemoryStore returns a store seeded with the schema defaults overridden
// by initial.
func NewMemoryStore(schema Schema, initial Values) *MemoryStore {
	values := schema.Defaults()
	for k, v := range initial {
		values[k] = v
	}
	return &MemoryStore{schema: schema, values: values}
}

func (s *MemoryStore) ReadCurrentValues() (Values, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events.Store.Read(BackendMemory, len(s.values))
	return s.values.Clone(), nil
}

func (s *MemoryStore) WriteValues(values Values) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
	events.Store.Write(BackendMemory, len(values))
	return nil
}

func (s *MemoryStore) DescribeValidation(key string) Validation {
	return s.schema.Validation(key)
}
