package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jagprog5/language-expression/diag"
	"github.com/jagprog5/language-expression/encode"
	"github.com/jagprog5/language-expression/eval"
	"github.com/jagprog5/language-expression/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`
	Debug bool `cli:"name=debug desc='enable debug logging'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// useColor reports whether output to w should be colored: the -color
// value when given on the command line, otherwise whether w is a
// terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return cfg.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.useColor(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

func (cfg *MainConfig) diagOpts(w io.Writer) []diag.RenderOpt {
	if cfg.useColor(w) {
		return []diag.RenderOpt{diag.RenderColor()}
	}
	return nil
}

// printDiag writes a caret-rendered diagnostic for err. Errors without
// a source position render as their message alone.
func (cfg *MainConfig) printDiag(cc *cli.Context, src []byte, err error) {
	msg := diag.Render(src, err, cfg.diagOpts(cc.Out)...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	io.WriteString(cc.Out, msg)
}

type TokensConfig struct {
	*MainConfig
	Output format.Format

	Tokens *cli.Command
}

func (cfg *TokensConfig) outputOpt(_ *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Output = f
	return f, nil
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write results back to source files'"`

	Fmt *cli.Command
}

type RenderConfig struct {
	*MainConfig
	Env eval.Env

	Render *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
