package enumkit

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// EqualFn builds a pure binary predicate from the configured options. The
// first argument of the predicate is always the candidate drawn from the
// enum-like mapping (a key or a value); the second is the externally supplied
// input being tested.
//
// The predicate applies, strictly in order: normalization of both operands,
// expected-type determination from the normalized candidate only, conversion
// (when enabled), case-folding (when enabled and the expected type is string),
// and finally strict comparison. Numbers compare by numeric value regardless
// of the Go integer or float kind; NaN never matches anything, and nil only
// matches nil.
//
// The predicate never fails on its own. Panics raised by a caller-supplied
// normalize or converter function propagate uncaught.
func EqualFn(opts ...Option) func(candidate, input any) bool {
	return equalWith(newOptions(opts))
}

func equalWith(o *Options) func(candidate, input any) bool {
	return func(candidate, input any) bool {
		if o.normalize != nil {
			candidate = o.normalize(candidate)
			input = o.normalize(input)
		}

		// The expected type comes from the candidate side only. The input's
		// own type never influences it.
		_, wantString := asString(candidate)

		if o.convert {
			candidate = convertOperand(candidate, wantString, o.converter)
			input = convertOperand(input, wantString, o.converter)
		}

		if o.ignoreCase && wantString {
			candidate = foldCase(candidate)
			input = foldCase(input)
		}

		return strictEqual(candidate, input)
	}
}

// convertOperand coerces a single operand toward the expected type. Operands
// already of the expected type pass through in canonical form, except NaN,
// which is never a valid match target. Everything else goes through the custom
// converter when one is configured, or the default coercion otherwise.
func convertOperand(v any, wantString bool, custom ConverterFunc) any {
	if wantString {
		if s, ok := asString(v); ok {
			return s
		}
	} else if f, ok := asFloat(v); ok {
		if math.IsNaN(f) {
			return nil
		}
		return f
	}

	if custom != nil {
		return custom(v)
	}
	return defaultConvert(v, wantString)
}

// defaultConvert implements the built-in coercion for operands that are not
// already of the expected type. Failure is reported as nil.
func defaultConvert(v any, wantString bool) any {
	if v == nil {
		return nil
	}

	if wantString {
		return stringify(v)
	}

	s, ok := asString(v)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return f
}

// stringify renders a non-string operand as its string form.
func stringify(v any) string {
	if f, ok := asFloat(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if b, ok := v.(bool); ok {
		return strconv.FormatBool(b)
	}
	return fmt.Sprint(v)
}

// foldCase lower-cases string operands and passes everything else through
// unchanged.
func foldCase(v any) any {
	if s, ok := asString(v); ok {
		return strings.ToLower(s)
	}
	return v
}

// strictEqual compares the two operands after the pipeline has run: value and
// type must both agree. Numeric operands of any Go kind compare by value, so
// int32(2) equals float64(2). NaN compares unequal to itself.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}

	if sa, ok := asString(a); ok {
		sb, ok := asString(b)
		return ok && sa == sb
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && ta.Comparable() {
		return a == b
	}
	return false
}

// asString reports v as a string when its kind is string, unwrapping derived
// string types such as type Status string.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// asFloat reports v as a float64 when its kind is any integer or float type.
// Booleans are not numbers.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
