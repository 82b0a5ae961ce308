package enumkit

// The defensive entry points below accept untrusted input of any type and
// treat nil or non-matching input as an absent result. Structural invalidity
// of the mapping and ambiguous singular matches still fail, so callers can
// always tell "no match" apart from "ambiguous match".

// IsEnumValue reports whether input matches any enum value under the
// configured comparison. Duplicate values are membership, not ambiguity, so
// this never fails on a non-unique mapping.
func IsEnumValue(e, value any, opts ...Option) (bool, error) {
	matches, err := matchEntries(e, value, newOptions(opts), false)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// IsEnumKey reports whether input matches any enum key. Keys are always
// strings, so when conversion is enabled the candidate key is stringified
// before comparison; there is no custom converter for keys. A candidate that
// is not a string after that coercion is not a key, and no scan happens.
func IsEnumKey(e, key any, opts ...Option) (bool, error) {
	o := newOptions(opts)
	if o.convert {
		s, ok := keyString(key)
		if !ok {
			if err := ValidateEnumLike(e); err != nil {
				return false, err
			}
			return false, nil
		}
		key = s
	}
	matches, err := matchEntries(e, key, o, true)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// ToEnumValue coerces untrusted input into a member of the enum's value set.
// It behaves exactly like ValueByValue: nil and non-matching input yield
// (nil, nil), multiple matches fail.
func ToEnumValue(e, input any, opts ...Option) (any, error) {
	return ValueByValue(e, input, opts...)
}

// ToEnumKey resolves untrusted input to the key holding the matching value.
// It applies the same stringify-if-convert pre-step as IsEnumKey, then
// behaves like KeyByValue.
func ToEnumKey(e, input any, opts ...Option) (string, bool, error) {
	o := newOptions(opts)
	if o.convert && input != nil {
		s, ok := keyString(input)
		if !ok {
			if err := ValidateEnumLike(e); err != nil {
				return "", false, err
			}
			return "", false, nil
		}
		input = s
	}
	matches, err := matchEntries(e, input, o, false)
	if err != nil {
		return "", false, err
	}
	switch len(matches) {
	case 0:
		return "", false, nil
	case 1:
		return matches[0].key, true, nil
	default:
		return "", false, ErrNonUniqueKeyByValue
	}
}

// ToEnumKeys resolves untrusted input to every key holding a matching value.
// It behaves exactly like KeysByValue: nil input yields an empty result.
func ToEnumKeys(e, input any, opts ...Option) ([]string, error) {
	return KeysByValue(e, input, opts...)
}

// keyString coerces a candidate key to a string. Only numeric-to-string
// coercion makes sense for keys; everything else is not a key.
func keyString(v any) (string, bool) {
	if s, ok := asString(v); ok {
		return s, true
	}
	if _, ok := asFloat(v); ok {
		return stringify(v), true
	}
	return "", false
}
