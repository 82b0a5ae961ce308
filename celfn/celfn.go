package celfn

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/enumkit/enumkit"
)

// Normalizer compiles a CEL expression into a normalization hook. The
// expression receives the operand as the variable "value" and its result
// replaces the operand. A nil operand bypasses evaluation and stays nil.
//
// Evaluation failures panic, the same way a failing Go normalize closure
// would propagate to the caller.
func Normalizer(expr string) (enumkit.NormalizeFunc, error) {
	prg, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return func(v any) any {
		if v == nil {
			return nil
		}
		out, _, err := prg.Eval(map[string]any{"value": v})
		if err != nil {
			panic(fmt.Errorf("celfn: normalize %q: %w", expr, err))
		}
		return out.Value()
	}, nil
}

// Converter compiles a CEL expression into a converter hook. The expression
// receives the operand as the variable "value". Evaluation failures and
// results that are neither strings nor numbers report conversion failure by
// returning nil, matching the default converter's failure channel.
func Converter(expr string) (enumkit.ConverterFunc, error) {
	prg, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return func(v any) any {
		if v == nil {
			return nil
		}
		out, _, err := prg.Eval(map[string]any{"value": v})
		if err != nil {
			return nil
		}
		switch res := out.Value().(type) {
		case string:
			return res
		case int64:
			return res
		case uint64:
			return res
		case float64:
			return res
		default:
			return nil
		}
	}, nil
}

// compile builds a single-variable CEL program for expr. The strings
// extension is enabled so expressions can trim and case-fold.
func compile(expr string) (cel.Program, error) {
	env, err := cel.NewEnv(
		cel.Variable("value", cel.DynType),
		ext.Strings(),
	)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	return env.Program(ast)
}
