package main

import (
	"github.com/jagprog5/language-expression/eval"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ex").
		WithSynopsis("ex [opts] command [opts]").
		WithDescription("ex is a tool for working with call expression text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			CheckCommand(cfg),
			FmtCommand(cfg),
			RenderCommand(cfg),
			ViewCommand(cfg))
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "output",
			Aliases:     []string{"O"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.outputOpt), "(format)"),
		},
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("tok").
		WithSynopsis("tokens [-output <format>] [file]").
		WithDescription("tokenize input and dump the token sequence").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("report inputs that do not tokenize or are not canonically escaped").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("rewrite inputs with canonical escaping").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg, Env: eval.Env{}}
	opts := []*cli.Opt{
		{
			Name:        "e",
			Description: "set an env value for {env,...} and {expr,...}",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(key=val)"),
		},
	}
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render [-e key=val [-e key2=val2]...] [file]").
		WithDescription("evaluate function calls and print the expansion").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [file]").
		WithDescription("print input with call structure in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}
