// Package celfn adapts CEL expressions into enumkit normalize and converter
// hooks.
//
// Config-driven callers often cannot supply Go closures for the comparison
// pipeline. This package compiles a CEL expression once and returns an
// ordinary hook function, so the expression can live in a configuration file:
//
//	norm, err := celfn.Normalizer(`type(value) == string ? value.trim() : value`)
//	if err != nil {
//	    return err
//	}
//	v, err := enumkit.ToEnumValue(statuses, input, enumkit.WithNormalize(norm))
//
// The expression sees the operand as a single variable named "value" of
// dynamic type. Hooks built here observe the same pipeline ordering contract
// as hand-written Go functions.
//
// # Error Behavior
//
// Compilation errors are returned from Normalizer and Converter. At
// evaluation time the two hooks diverge, matching the pipeline's contract: a
// normalizer that fails to evaluate panics (hook failures propagate to the
// caller), while a converter that fails to evaluate, or that produces
// something other than a string or number, reports conversion failure by
// returning nil.
package celfn
