package debug

import (
	"os"
	"strconv"
)

type debug struct {
	All    bool
	Tokens bool
	Eval   bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.All = boolEnv("EXPRESSION_DEBUG")
	d.Tokens = boolEnv("EXPRESSION_DEBUG_TOKENS")
	d.Eval = boolEnv("EXPRESSION_DEBUG_EVAL")
	d.LSP = boolEnv("EXPRESSION_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Enable turns on every debug area, regardless of the environment.
// Tools call this for their -debug flag.
func Enable() {
	d.All = true
}

func Tokens() bool {
	return d.All || d.Tokens
}

func Eval() bool {
	return d.All || d.Eval
}

func LSP() bool {
	return d.All || d.LSP
}
