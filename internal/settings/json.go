package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/formatting-rotor/internal/logging/events"
)

// JSONStore persists settings as a flat JSON object.
type JSONStore struct {
	path   string
	schema Schema
}

// NewJSONStore creates a JSONStore backed by the file at path.
func NewJSONStore(path string, schema Schema) *JSONStore {
	return &JSONStore{path: path, schema: schema}
}

// Path returns the storage file path.
func (s *JSONStore) Path() string {
	return s.path
}

// ReadCurrentValues returns the schema defaults overridden by the values in
// the file. A missing file yields the defaults.
func (s *JSONStore) ReadCurrentValues() (Values, error) {
	stored, err := s.load()
	if err != nil {
		return nil, err
	}
	values := s.schema.Defaults()
	for k, v := range stored {
		values[k] = v
	}
	events.Store.Read(BackendJSON, len(values))
	return values, nil
}

// WriteValues merges values into the file. The file is replaced atomically
// through a rename so readers never observe a partial write.
func (s *JSONStore) WriteValues(values Values) error {
	stored, err := s.load()
	if err != nil {
		return err
	}
	for k, v := range values {
		stored[k] = v
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return err
	}
	events.Store.Write(BackendJSON, len(values))
	return nil
}

func (s *JSONStore) DescribeValidation(key string) Validation {
	return s.schema.Validation(key)
}

func (s *JSONStore) load() (Values, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Values{}, nil
		}
		return nil, err
	}
	var stored Values
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if stored == nil {
		stored = Values{}
	}
	return stored, nil
}
