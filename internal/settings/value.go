package settings

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a setting value: either a boolean or an integer.
type Value struct {
	isInt bool
	b     bool
	n     int
}

// Bool wraps a boolean setting value.
func Bool(b bool) Value { return Value{b: b} }

// Int wraps an integer setting value.
func Int(n int) Value { return Value{isInt: true, n: n} }

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool { return v.isInt }

// AsBool returns the boolean form of v. Integers are true when non-zero.
func (v Value) AsBool() bool {
	if v.isInt {
		return v.n != 0
	}
	return v.b
}

// AsInt returns the integer form of v. Booleans map to 0 and 1.
func (v Value) AsInt() int {
	if v.isInt {
		return v.n
	}
	if v.b {
		return 1
	}
	return 0
}

func (v Value) String() string {
	if v.isInt {
		return strconv.Itoa(v.n)
	}
	return strconv.FormatBool(v.b)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isInt {
		return json.Marshal(v.n)
	}
	return json.Marshal(v.b)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Bool(b)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("setting value %s is neither boolean nor integer", data)
	}
	*v = Int(n)
	return nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("line %d: setting value %q is neither boolean nor integer", node.Line, node.Value)
	}
	*v = Int(n)
	return nil
}

// Values maps setting keys to values.
type Values map[string]Value

// Clone returns an independent copy of vs.
func (vs Values) Clone() Values {
	out := make(Values, len(vs))
	for k, v := range vs {
		out[k] = v
	}
	return out
}

// Keys returns the keys of vs in sorted order.
func (vs Values) Keys() []string {
	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether vs and other hold the same entries.
func (vs Values) Equal(other Values) bool {
	if len(vs) != len(other) {
		return false
	}
	for k, v := range vs {
		if o, ok := other[k]; !ok || o != v {
			return false
		}
	}
	return true
}
