package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-edn/encode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

type filterEnv struct {
	Kind   string `expr:"kind"`
	Prefix string `expr:"prefix"`
	Name   string `expr:"name"`
	Text   string `expr:"text"`
}

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires an expression (-e)", cli.ErrUsage)
	}
	prg, err := compileFilter(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ids, err := idents(args, cc.In)
	if err != nil {
		return err
	}
	recs, err := filterIdents(prg, ids)
	if err != nil {
		return err
	}
	return writeRecords(cfg.MainConfig, cc.Out, recs)
}

func compileFilter(e string) (*vm.Program, error) {
	prg, err := expr.Compile(e, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", e, err)
	}
	return prg, nil
}

// filterIdents returns the records of the valid ids for which prg holds.
func filterIdents(prg *vm.Program, ids []string) ([]encode.Record, error) {
	var res []encode.Record
	for _, id := range ids {
		rec := encode.Check(id)
		if !rec.Valid() {
			continue
		}
		env := filterEnv{
			Kind:   string(rec.Kind),
			Prefix: rec.Prefix,
			Name:   rec.Name,
			Text:   rec.Canonical,
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("error evaluating filter on %s: %w", rec.Canonical, err)
		}
		if out.(bool) {
			res = append(res, rec)
		}
	}
	return res, nil
}

func writeRecords(cfg *MainConfig, w io.Writer, recs []encode.Record) error {
	if !cfg.outFormat().IsText() {
		return encode.Encode(recs, w, cfg.encOpts(w)...)
	}
	for i := range recs {
		if _, err := fmt.Fprintln(w, recs[i].Canonical); err != nil {
			return err
		}
	}
	return nil
}
