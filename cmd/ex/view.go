package main

import (
	"github.com/jagprog5/language-expression/encode"
	"github.com/jagprog5/language-expression/token"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	arg, err := oneSrcArg("view", args)
	if err != nil {
		return err
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
	if err := encode.EncodeTokens(seq, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
