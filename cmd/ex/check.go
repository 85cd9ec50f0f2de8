package main

import (
	"fmt"
	"strings"

	"github.com/jagprog5/language-expression/encode"
	"github.com/jagprog5/language-expression/token"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, arg := range srcArgs(args) {
		ok, err := checkArg(cfg, cc, arg)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkArg reports whether arg's content tokenizes and reproduces
// itself byte for byte when re-encoded. The error return is for i/o
// problems only.
func checkArg(cfg *CheckConfig, cc *cli.Context, arg string) (bool, error) {
	src, err := readArg(cc, arg)
	if err != nil {
		return false, err
	}
	seq, err := token.Tokenize(nil, src, token.TokenMaxDepth(maxDepth))
	if err != nil {
		fmt.Fprintf(cc.Out, "%s: ", arg)
		cfg.printDiag(cc, src, err)
		return false, nil
	}
	if err := token.Seq(seq).Verify(); err != nil {
		fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
		return false, nil
	}
	canon, err := encode.TokensString(seq)
	if err != nil {
		return false, err
	}
	if canon == string(src) {
		return true, nil
	}
	fmt.Fprintf(cc.Out, "%s: not canonically escaped\n", arg)
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(src), canon, false)
	if cfg.useColor(cc.Out) {
		fmt.Fprintf(cc.Out, "%s\n", dmp.DiffPrettyText(diffs))
	} else {
		fmt.Fprintf(cc.Out, "%s\n", wdiffText(diffs))
	}
	return false, nil
}

// wdiffText renders a character diff with wdiff-style inline markers,
// deletions in [-...-] and insertions in {+...+}.
func wdiffText(diffs []diffpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(d.Text)
			b.WriteString("+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
