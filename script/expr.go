package script

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/listmodel/debug"
	"github.com/signadot/listmodel/model"
)

// GetRaw extracts the expression from a .[expr] string, or returns "" if
// v is not one.
func GetRaw(v string) string {
	if len(v) < 3 || !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return strings.TrimSpace(v[2 : len(v)-1])
}

// Eval compiles and runs one expression against env.
func Eval(input string, env map[string]any) (any, error) {
	program, err := expr.Compile(input, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	val, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	if debug.Script() {
		debug.Logf("script eval %q = %v\n", input, val)
	}
	return val, nil
}

// expand replaces every .[expr] string in v by its value.
func expand(v any, env map[string]any) (any, error) {
	switch x := v.(type) {
	case string:
		raw := GetRaw(x)
		if raw == "" {
			return x, nil
		}
		return Eval(raw, env)
	case model.Object:
		res := make(model.Object, len(x))
		for i, f := range x {
			fv, err := expand(f.Value, env)
			if err != nil {
				return nil, err
			}
			res[i] = model.Field{Name: f.Name, Value: fv}
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i := range x {
			xv, err := expand(x[i], env)
			if err != nil {
				return nil, err
			}
			res[i] = xv
		}
		return res, nil
	}
	return v, nil
}

// envValue converts plain item values into the shapes expr indexes
// naturally.
func envValue(v any) any {
	switch x := v.(type) {
	case model.Object:
		res := make(map[string]any, len(x))
		for _, f := range x {
			res[f.Name] = envValue(f.Value)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = envValue(x[i])
		}
		return res
	}
	return v
}
