package enumkit

// The lookup functions share one shape: validate the mapping, short-circuit
// nil input to the absent result without scanning, then linearly scan keys or
// values with the configured predicate. Singular lookups fail loudly when
// more than one entry matches, since silently returning the first match would
// hide duplicate definitions in the mapping.

// ValueByValue resolves an input to the matching enum value. It returns
// (nil, nil) when nothing matches and ErrNonUniqueValueByValue when the
// predicate matches more than one value.
func ValueByValue(e, value any, opts ...Option) (any, error) {
	matches, err := matchEntries(e, value, newOptions(opts), false)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0].value, nil
	default:
		return nil, ErrNonUniqueValueByValue
	}
}

// ValueByKey resolves a key to its value. It returns (nil, nil) when no key
// matches and ErrNonUniqueValueByKey when the predicate matches more than one
// key (possible with case-folding or a collapsing converter).
func ValueByKey(e, key any, opts ...Option) (any, error) {
	matches, err := matchEntries(e, key, newOptions(opts), true)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0].value, nil
	default:
		return nil, ErrNonUniqueValueByKey
	}
}

// KeyByKey resolves an input to the matching enum key. The second return is
// false when nothing matches; ErrNonUniqueKeyByKey is returned when the
// predicate matches more than one key.
func KeyByKey(e, key any, opts ...Option) (string, bool, error) {
	matches, err := matchEntries(e, key, newOptions(opts), true)
	if err != nil {
		return "", false, err
	}
	switch len(matches) {
	case 0:
		return "", false, nil
	case 1:
		return matches[0].key, true, nil
	default:
		return "", false, ErrNonUniqueKeyByKey
	}
}

// KeyByValue resolves a value to the single key holding it. The second return
// is false when nothing matches; ErrNonUniqueKeyByValue is returned when the
// value appears under more than one key. Use KeysByValue when duplicates are
// expected.
func KeyByValue(e, value any, opts ...Option) (string, bool, error) {
	matches, err := matchEntries(e, value, newOptions(opts), false)
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

// KeysByValue returns every key holding a matching value, in the mapping's
// iteration order. An empty slice means no match; duplicates are never an
// error here.
func KeysByValue(e, value any, opts ...Option) ([]string, error) {
	matches, err := matchEntries(e, value, newOptions(opts), false)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m.key)
	}
	return keys, nil
}

// matchEntries validates the mapping and returns every entry the predicate
// matches. byKey selects whether entry keys or entry values are compared
// against the input. A nil input never scans and never matches.
func matchEntries(e, input any, o *Options, byKey bool) ([]entry, error) {
	entries, err := scanEntries(e)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, nil
	}

	equal := equalWith(o)
	var matches []entry
	for _, ent := range entries {
		candidate := ent.value
		if byKey {
			candidate = ent.key
		}
		if equal(candidate, input) {
			matches = append(matches, ent)
		}
	}
	return matches, nil
}
