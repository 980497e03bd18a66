package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: " + formatNames(),
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ednid").
		WithSynopsis("ednid [opts] command [opts]").
		WithDescription("ednid checks and inspects edn symbols, keywords and tags.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ednidMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			FilterCommand(cfg),
			TagsCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-stats] [idents]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check validates and canonicalizes identifiers.

Each argument, or each non-empty line of standard input when there are no
arguments or the only argument is '-', is read as an identifier:

  :prefix/name   a keyword
  #prefix/name   a tag
  prefix/name    a symbol

check reports the kind, prefix, name and canonical text of each identifier,
or why it is invalid, and exits with status 1 if any identifier is invalid.`

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter -e <expr> [idents]").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `filter prints the valid identifiers for which an expression holds.

The expression is evaluated with the variables

  kind    "symbol", "keyword" or "tag"
  prefix  the prefix, "" if there is none
  name    the local name
  text    the canonical text

for example: kind == "keyword" && prefix startsWith "app"`

func TagsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TagsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tags, "tags").
		WithAliases("t").
		WithSynopsis("tags [-r tag value]").
		WithDescription("list tags with registered handlers, or resolve a value with -r").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tags(cfg, cc, args)
		})
}
