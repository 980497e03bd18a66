package main

import (
	"fmt"
	"io"

	edn "github.com/signadot/go-edn"
	"github.com/signadot/go-edn/encode"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	ids, err := idents(args, cc.In)
	if err != nil {
		return err
	}
	bad, err := checkIdents(cfg.MainConfig, cc.Out, ids)
	if err != nil {
		return err
	}
	if cfg.Stats {
		st := edn.KeywordStats()
		theLog.Info("keyword cache", "hits", st.Hits, "misses", st.Misses,
			"retries", st.Retries, "purged", st.Purged)
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkIdents reports on ids and returns how many were invalid.
func checkIdents(cfg *MainConfig, w io.Writer, ids []string) (int, error) {
	recs := make([]encode.Record, len(ids))
	bad := 0
	for i, id := range ids {
		recs[i] = encode.Check(id)
		if !recs[i].Valid() {
			bad++
		}
	}
	if err := encode.Encode(recs, w, cfg.encOpts(w)...); err != nil {
		return bad, fmt.Errorf("error encoding report: %w", err)
	}
	return bad, nil
}
