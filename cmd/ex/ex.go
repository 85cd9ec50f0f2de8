package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jagprog5/language-expression/debug"

	"github.com/scott-cotton/cli"
)

// maxDepth bounds call nesting for everything ex tokenizes, so a
// pathological input fails with a depth error instead of growing the
// frame stack without limit.
const maxDepth = 10000

func exMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Debug {
		debug.Enable()
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readArg reads one source argument, with "-" meaning cc.In.
func readArg(cc *cli.Context, arg string) ([]byte, error) {
	var r io.Reader
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", arg, err)
	}
	return d, nil
}

// srcArgs normalizes a subcommand's positional arguments to the list
// of sources to process, defaulting to stdin.
func srcArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func oneSrcArg(name string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: %s takes at most one file", cli.ErrUsage, name)
	}
}
