// Package eval turns the live query into an optional inline computed result
// by treating it as a math/logic expression.
package eval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/expr-lang/expr"
)

// TryEvaluate parses and evaluates q as an expression. It returns the
// printed value and true on success; any parse or evaluation failure yields
// ("", false). It never panics outward.
func TryEvaluate(q string) (result string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			result, ok = "", false
		}
	}()

	trimmed := strings.TrimSpace(q)
	if trimmed == "" {
		return "", false
	}

	program, err := expr.Compile(trimmed)
	if err != nil {
		return "", false
	}
	out, err := expr.Run(program, nil)
	if err != nil || out == nil {
		return "", false
	}
	if reflect.ValueOf(out).Kind() == reflect.Func {
		return "", false
	}

	printed := fmt.Sprintf("%v", out)
	if printed == "" {
		return "", false
	}
	return printed, true
}
