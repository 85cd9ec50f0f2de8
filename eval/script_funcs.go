package eval

import (
	"os"

	"github.com/expr-lang/expr"
)

func exprOpts(ctx *Context) []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("lookup", func(params ...any) (any, error) {
			return ctx.env[params[0].(string)], nil
		},
			new(func(string) any)),
	}
}
