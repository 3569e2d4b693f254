package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of a catalog definition. Other top-level
// sections (such as settings) are ignored here.
type document struct {
	Categories []Category `yaml:"categories"`
}

// Parse decodes a YAML catalog definition.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Categories)
}

// LoadFile reads a YAML catalog definition from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
