package enumkit

// NormalizeFunc is a caller-supplied pure function applied to both operands of
// every comparison before any other pipeline step.
type NormalizeFunc func(v any) any

// ConverterFunc overrides the built-in coercion logic when conversion is
// enabled. It receives an operand that is not already of the expected type and
// returns the converted string or number. Returning nil marks the conversion
// as failed; a failed operand only matches another failed operand.
//
// A converter that collapses distinct inputs to the same output (a constant
// converter being the extreme case) can make unrelated values compare equal.
// That is documented behavior, not guarded against.
type ConverterFunc func(v any) any

// Options configures the comparison pipeline. The zero value means
// exact-match, case-sensitive, no conversion. Build it through the functional
// options below; operations never mutate it after construction.
type Options struct {
	normalize  NormalizeFunc
	ignoreCase bool
	convert    bool
	converter  ConverterFunc
}

// Option configures a single comparison knob. All four knobs are independent
// and composable.
type Option func(*Options)

// WithNormalize sets a normalization function applied first, to both sides of
// every comparison. Panics raised by the function propagate to the caller.
func WithNormalize(fn NormalizeFunc) Option {
	return func(o *Options) {
		o.normalize = fn
	}
}

// WithIgnoreCase makes string comparisons fold case after normalization and
// conversion, using lower-casing. It has no effect on numeric comparisons.
func WithIgnoreCase() Option {
	return func(o *Options) {
		o.ignoreCase = true
	}
}

// WithConvert enables type coercion (default or custom) prior to case-folding.
func WithConvert() Option {
	return func(o *Options) {
		o.convert = true
	}
}

// WithConverter sets a custom converter used in place of the built-in coercion
// logic. It only takes effect when conversion is enabled via WithConvert.
func WithConverter(fn ConverterFunc) Option {
	return func(o *Options) {
		o.converter = fn
	}
}

// newOptions applies opts to a zero Options value.
func newOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
