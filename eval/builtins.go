package eval

import (
	"fmt"
	"strconv"
	"strings"
)

func builtins() map[string]Func {
	return map[string]Func{
		"expr":   builtinExpr,
		"if":     builtinIf,
		"env":    builtinEnv,
		"upper":  builtinUpper,
		"lower":  builtinLower,
		"repeat": builtinRepeat,
	}
}

func oneArg(name string, call Call) (string, error) {
	if len(call.Args) != 1 {
		return "", fmt.Errorf("%s expects 1 arg, got %d", name, len(call.Args))
	}
	return call.Args[0].Expand()
}

func builtinIf(ctx *Context, call Call) (string, error) {
	if len(call.Args) != 2 && len(call.Args) != 3 {
		return "", fmt.Errorf("if expects 2 or 3 args, got %d", len(call.Args))
	}
	cond, err := call.Args[0].Expand()
	if err != nil {
		return "", err
	}
	if truthy(cond) {
		return call.Args[1].Expand()
	}
	if len(call.Args) == 3 {
		return call.Args[2].Expand()
	}
	return "", nil
}

func truthy(v string) bool {
	switch v {
	case "", "0", "false":
		return false
	}
	return true
}

func builtinEnv(ctx *Context, call Call) (string, error) {
	key, err := oneArg("env", call)
	if err != nil {
		return "", err
	}
	v, ok := ctx.env[key]
	if !ok {
		return "", fmt.Errorf("undefined variable %q", key)
	}
	return stringify(v)
}

func builtinUpper(ctx *Context, call Call) (string, error) {
	s, err := oneArg("upper", call)
	if err != nil {
		return "", err
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b), nil
}

func builtinLower(ctx *Context, call Call) (string, error) {
	s, err := oneArg("lower", call)
	if err != nil {
		return "", err
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b), nil
}

func builtinRepeat(ctx *Context, call Call) (string, error) {
	if len(call.Args) != 2 {
		return "", fmt.Errorf("repeat expects 2 args, got %d", len(call.Args))
	}
	s, err := call.Args[0].Expand()
	if err != nil {
		return "", err
	}
	nStr, err := call.Args[1].Expand()
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(strings.TrimSpace(nStr))
	if err != nil {
		return "", fmt.Errorf("repeat count %q: %w", nStr, err)
	}
	if n < 0 {
		return "", fmt.Errorf("repeat count %d is negative", n)
	}
	return strings.Repeat(s, n), nil
}
