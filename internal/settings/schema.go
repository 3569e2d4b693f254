package settings

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Definition describes how one setting validates and what it defaults to.
// Labels name integer values for display.
type Definition struct {
	Validation Validation
	Default    Value
	Labels     map[int]string
}

// Schema holds the definitions of every known setting key.
type Schema map[string]Definition

// Validation returns the validation for key. Unknown keys are KindOther.
func (s Schema) Validation(key string) Validation {
	if def, ok := s[key]; ok {
		return def.Validation
	}
	return Other()
}

// Defaults returns the default value of every key in the schema.
func (s Schema) Defaults() Values {
	out := make(Values, len(s))
	for key, def := range s {
		out[key] = def.Default
	}
	return out
}

// Keys returns the schema keys in sorted order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe renders v as a human readable label. Booleans read as
// checked/unchecked; integers use the key's label table when it has an entry
// and fall back to the number itself.
func (s Schema) Describe(key string, v Value) string {
	if !v.IsInt() {
		if v.AsBool() {
			return "checked"
		}
		return "unchecked"
	}
	if def, ok := s[key]; ok {
		if label, ok := def.Labels[v.AsInt()]; ok {
			return label
		}
	}
	return v.String()
}

// Merge returns a schema holding the entries of s overridden by other.
func (s Schema) Merge(other Schema) Schema {
	out := make(Schema, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

type definitionDocument struct {
	Kind    string         `yaml:"kind"`
	Min     int            `yaml:"min"`
	Max     int            `yaml:"max"`
	Default *Value         `yaml:"default"`
	Labels  map[int]string `yaml:"labels"`
}

type schemaDocument struct {
	Settings map[string]definitionDocument `yaml:"settings"`
}

// ParseSchema decodes the settings section of a catalog definition.
func ParseSchema(data []byte) (Schema, error) {
	var doc schemaDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	out := make(Schema, len(doc.Settings))
	for key, raw := range doc.Settings {
		def := Definition{Labels: raw.Labels}
		switch kind := ParseKind(raw.Kind); kind {
		case KindBoolean:
			def.Validation = Boolean()
			def.Default = Bool(false)
		case KindInteger:
			if raw.Max < raw.Min {
				return nil, fmt.Errorf("setting %q: max %d below min %d", key, raw.Max, raw.Min)
			}
			def.Validation = Integer(raw.Min, raw.Max)
			def.Default = Int(raw.Min)
		default:
			def.Validation = Other()
			def.Default = Int(0)
		}
		if raw.Default != nil {
			def.Default = *raw.Default
		}
		out[key] = def
	}
	return out, nil
}

// LoadSchemaFile reads the settings section of the YAML file at path.
func LoadSchemaFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	s, err := ParseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
