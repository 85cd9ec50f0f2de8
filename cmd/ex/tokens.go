package main

import (
	"github.com/jagprog5/language-expression/format"
	"github.com/jagprog5/language-expression/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	arg, err := oneSrcArg("tokens", args)
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
	return format.Dump(cc.Out, seq, cfg.Output)
}
