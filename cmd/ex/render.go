package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jagprog5/language-expression/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	arg, err := oneSrcArg("render", args)
	if err != nil {
		return err
	}
	src, err := readArg(cc, arg)
	if err != nil {
		return err
	}
	ectx := eval.NewContext(eval.WithEnv(cfg.Env), eval.WithMaxDepth(maxDepth))
	res, err := ectx.Eval(src)
	if err != nil {
		cfg.printDiag(cc, src, err)
		return cli.ExitCodeErr(1)
	}
	_, err = io.WriteString(cc.Out, res)
	return err
}

// envFunc applies one -e key=val argument to env. Values get YAML
// scalar typing, so -e n=3 is a number and -e name=World a string.
// Dotted keys nest.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
