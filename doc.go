// Package enumkit provides lookup, validation, and conversion utilities over
// enum-like mappings: string-keyed collections whose values are restricted to
// strings or numbers.
//
// The package resolves keys to values, values to keys, checks membership, and
// coerces untrusted input (strings from HTTP requests, forms, CLI arguments)
// into a valid member of a closed set. Comparisons are configurable with
// case-insensitivity, type coercion, custom normalization, and custom
// conversion functions.
//
// # Enum-Like Mappings
//
// Any mapping from string keys to string or number values is accepted. Plain
// Go maps work directly and are scanned in lexicographic key order:
//
//	priority := map[string]int{"Low": 1, "Medium": 2, "High": 3}
//	v, err := enumkit.ToEnumValue(priority, "2", enumkit.WithConvert())
//	// v == 2
//
// When iteration order matters (for example, for KeysByValue results), use the
// insertion-ordered Enum container:
//
//	colors := enumkit.New()
//	colors.Set("Red", "#ff0000")
//	colors.Set("Blue", "#0000ff")
//	colors.Set("AlsoBlue", "#0000ff")
//
//	keys, _ := enumkit.KeysByValue(colors, "#0000ff")
//	// keys == []string{"Blue", "AlsoBlue"}
//
// Protocol Buffer enums are one more convertible source:
//
//	e := enumkit.FromProtoEnum(pb.ScanType(0))
//
// # Comparison Pipeline
//
// Every lookup compares the candidate entry against the input through a fixed
// pipeline: normalize, convert, case-fold, then strict comparison. The
// pipeline is exposed directly through EqualFn:
//
//	eq := enumkit.EqualFn(enumkit.WithIgnoreCase())
//	eq("A", "a") // true
//	eq(1, "1")   // false: no conversion requested, type mismatch
//
// The expected type is always determined from the candidate side. Conversion
// failures propagate as nil, which only matches another nil.
//
// # Singular vs Plural Lookups
//
// Singular lookups (ValueByKey, KeyByValue, ...) return an absent result when
// nothing matches and fail loudly when more than one entry matches, since
// silently picking the first match would hide duplicate definitions. The
// plural KeysByValue is the escape hatch when duplicates are expected.
//
// # Error Handling
//
// "Not found" is never an error. Only structural invalidity of the mapping and
// ambiguous singular matches produce errors, all of them synchronous sentinel
// errors compatible with errors.Is. Panics raised by caller-supplied normalize
// or converter hooks propagate unmodified.
package enumkit
