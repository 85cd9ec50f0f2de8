package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jagprog5/language-expression/encode"
	"github.com/jagprog5/language-expression/token"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range srcArgs(args) {
		if err := fmtArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtArg(cfg *FmtConfig, cc *cli.Context, arg string) error {
	if cfg.Write && arg == "-" {
		return fmt.Errorf("%w: cannot use -w with standard input", cli.ErrUsage)
	}
	src, err := readArg(cc, arg)
	if err != nil {
		return err
	}
	seq, err := token.Tokenize(nil, src, token.TokenMaxDepth(maxDepth))
	if err != nil {
		cfg.printDiag(cc, src, err)
		return cli.ExitCodeErr(1)
	}
	canon, err := encode.TokensString(seq)
	if err != nil {
		return err
	}
	if !cfg.Write {
		_, err = io.WriteString(cc.Out, canon)
		return err
	}
	if canon == string(src) {
		return nil
	}
	if err := os.WriteFile(arg, []byte(canon), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", arg, err)
	}
	return nil
}
