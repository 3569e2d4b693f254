package settings

import (
	"fmt"
	"strings"
)

// Kind classifies how a setting may be edited.
type Kind int

const (
	KindOther Kind = iota
	KindBoolean
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	default:
		return "other"
	}
}

// ParseKind maps a kind name to a Kind. Unknown names map to KindOther.
func ParseKind(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean", "bool":
		return KindBoolean
	case "integer", "int":
		return KindInteger
	default:
		return KindOther
	}
}

// Validation describes the value domain of one setting. Min and Max are only
// meaningful for KindInteger.
type Validation struct {
	Kind Kind
	Min  int
	Max  int
}

// Boolean describes a true/false setting.
func Boolean() Validation { return Validation{Kind: KindBoolean} }

// Integer describes an integer setting bounded by [min, max].
func Integer(min, max int) Validation { return Validation{Kind: KindInteger, Min: min, Max: max} }

// Other describes a setting the rotor cannot edit.
func Other() Validation { return Validation{Kind: KindOther} }

func (v Validation) String() string {
	if v.Kind == KindInteger {
		return fmt.Sprintf("integer(%d..%d)", v.Min, v.Max)
	}
	return v.Kind.String()
}
