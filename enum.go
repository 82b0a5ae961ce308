package enumkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Primitive constrains the value types an enum-like mapping may carry:
// strings and numbers, including derived types.
type Primitive interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Enum is an insertion-ordered mapping from string keys to string or number
// values. It is the canonical enum-like container: plain Go maps are accepted
// by every operation too, but they have no iteration order, so results that
// depend on entry order (KeysByValue in particular) are only deterministic
// through an Enum.
//
// Enum is not safe for concurrent mutation. Lookups read the live mapping on
// every call and take no ownership of it.
type Enum struct {
	keys    []string
	entries map[string]any
}

// New returns an empty enum-like mapping.
func New() *Enum {
	return &Enum{entries: make(map[string]any)}
}

// FromMap builds an Enum from a plain Go map. Keys are inserted in
// lexicographic order, since Go maps have no iteration order of their own.
func FromMap[V Primitive](m map[string]V) *Enum {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e := New()
	for _, k := range keys {
		e.put(k, m[k])
	}
	return e
}

// Pair is a single enum entry used by FromPairs.
type Pair struct {
	Key   string
	Value any
}

// FromPairs builds an Enum from entries in the given order. It fails with an
// InvalidValueError when a value is neither a string nor a number.
func FromPairs(pairs ...Pair) (*Enum, error) {
	e := New()
	for _, p := range pairs {
		if err := e.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Set adds or replaces an entry. Replacing keeps the key's original position;
// a new key appends. Values must be strings or numbers.
func (e *Enum) Set(key string, value any) error {
	if !isPrimitive(value) {
		return &InvalidValueError{Value: value}
	}
	e.put(key, value)
	return nil
}

// put stores an already-validated entry.
func (e *Enum) put(key string, value any) {
	if e.entries == nil {
		e.entries = make(map[string]any)
	}
	if _, exists := e.entries[key]; !exists {
		e.keys = append(e.keys, key)
	}
	e.entries[key] = value
}

// Get returns the value stored under key.
func (e *Enum) Get(key string) (any, bool) {
	v, ok := e.entries[key]
	return v, ok
}

// Delete removes an entry. Deleting an absent key is a no-op.
func (e *Enum) Delete(key string) {
	if _, ok := e.entries[key]; !ok {
		return
	}
	delete(e.entries, key)
	for i, k := range e.keys {
		if k == key {
			e.keys = append(e.keys[:i], e.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (e *Enum) Len() int {
	return len(e.keys)
}

// Keys returns the keys in insertion order.
func (e *Enum) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Values returns the values in insertion order.
func (e *Enum) Values() []any {
	out := make([]any, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, e.entries[k])
	}
	return out
}

// Map returns a plain-map copy of the entries. Iteration order is lost.
func (e *Enum) Map() map[string]any {
	out := make(map[string]any, len(e.keys))
	for k, v := range e.entries {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the enum as a JSON object with keys in insertion order.
func (e *Enum) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(e.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object, preserving document order.
// Numeric values decode as float64; anything other than strings and numbers
// fails with an InvalidValueError.
func (e *Enum) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("enumkit: expected JSON object, got %v", tok)
	}

	e.keys = nil
	e.entries = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		switch v := valTok.(type) {
		case string:
			e.put(key, v)
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return &InvalidValueError{Value: v}
			}
			e.put(key, f)
		default:
			return &InvalidValueError{Value: valTok}
		}
	}

	// Consume the closing brace.
	_, err = dec.Token()
	return err
}

// MarshalYAML encodes the enum as a YAML mapping with keys in insertion order.
func (e *Enum) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range e.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		valNode := &yaml.Node{}
		if err := valNode.Encode(e.entries[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a flat YAML mapping, preserving document order.
// Integers decode as int64 and floats as float64; anything other than strings
// and numbers fails with an InvalidValueError.
func (e *Enum) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("enumkit: expected YAML mapping, got %v", node.Tag)
	}

	e.keys = nil
	e.entries = make(map[string]any)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		switch valNode.Tag {
		case "!!str":
			e.put(keyNode.Value, valNode.Value)
		case "!!int":
			n, err := strconv.ParseInt(valNode.Value, 0, 64)
			if err != nil {
				return &InvalidValueError{Value: valNode.Value}
			}
			e.put(keyNode.Value, n)
		case "!!float":
			f, err := strconv.ParseFloat(valNode.Value, 64)
			if err != nil {
				return &InvalidValueError{Value: valNode.Value}
			}
			e.put(keyNode.Value, f)
		default:
			var raw any
			if err := valNode.Decode(&raw); err != nil {
				return err
			}
			return &InvalidValueError{Value: raw}
		}
	}
	return nil
}
