package enumkit

import (
	"reflect"
	"sort"
)

// IsEnumLike reports whether v is a valid enum-like mapping: an Enum or a
// string-keyed Go map whose values are all strings or numbers.
func IsEnumLike(v any) bool {
	return ValidateEnumLike(v) == nil
}

// ValidateEnumLike performs the identical check as IsEnumLike but fails
// instead of returning false: ErrEnumRequired when the input is missing or
// not a string-keyed mapping, and an InvalidValueError when an entry's value
// has a disallowed type. A single bad entry invalidates the whole mapping.
//
// Every lookup operation in the package runs this check first, so they all
// fail fast with the same error taxonomy before any scan happens.
func ValidateEnumLike(v any) error {
	_, err := scanEntries(v)
	return err
}

// entry is a single key/value pair in scan order.
type entry struct {
	key   string
	value any
}

// scanEntries validates the mapping and materializes its entries in scan
// order: insertion order for an Enum, lexicographic key order for plain maps.
// The mapping is re-read on every call; nothing is cached.
func scanEntries(v any) ([]entry, error) {
	switch t := v.(type) {
	case nil:
		return nil, ErrEnumRequired
	case *Enum:
		if t == nil {
			return nil, ErrEnumRequired
		}
		out := make([]entry, 0, len(t.keys))
		for _, k := range t.keys {
			val := t.entries[k]
			if !isPrimitive(val) {
				return nil, &InvalidValueError{Value: val}
			}
			out = append(out, entry{key: k, value: val})
		}
		return out, nil
	case Enum:
		return scanEntries(&t)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, ErrEnumRequired
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	keyType := rv.Type().Key()
	out := make([]entry, 0, len(keys))
	for _, k := range keys {
		val := rv.MapIndex(reflect.ValueOf(k).Convert(keyType)).Interface()
		if !isPrimitive(val) {
			return nil, &InvalidValueError{Value: val}
		}
		out = append(out, entry{key: k, value: val})
	}
	return out, nil
}

// isPrimitive reports whether v is a string or a number. NaN is a number and
// may exist as a raw mapping value even though it can never match during
// conversion.
func isPrimitive(v any) bool {
	if _, ok := asString(v); ok {
		return true
	}
	_, ok := asFloat(v)
	return ok
}
