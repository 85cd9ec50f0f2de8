package eval

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jagprog5/language-expression/debug"
)

// builtinExpr compiles its argument as an expr program and runs it
// against the context environment.
func builtinExpr(ctx *Context, call Call) (string, error) {
	src, err := oneArg("expr", call)
	if err != nil {
		return "", err
	}
	prg, err := expr.Compile(src, exprOpts(ctx)...)
	if err != nil {
		return "", fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := vm.Run(prg, ctx.env)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval", "expr %q gave %#v\n", src, res)
	}
	return stringify(res)
}

func stringify(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return fmt.Sprintf("%v", v), nil
}
