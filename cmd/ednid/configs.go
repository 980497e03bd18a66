package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/go-edn/encode"
	"github.com/signadot/go-edn/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// formatNames lists the output formats with their one letter aliases.
func formatNames() string {
	var names []string
	for _, f := range format.AllFormats() {
		names = append(names, fmt.Sprintf("%s/%c", f, f.String()[0]))
	}
	return strings.Join(names, ", ")
}

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return res
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig
	Stats bool `cli:"name=stats desc='log keyword cache statistics'"`

	Check *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Expr string `cli:"name=e aliases=expr desc='boolean expression over kind, prefix, name and text'"`

	Filter *cli.Command
}

type TagsConfig struct {
	*MainConfig
	Resolve bool `cli:"name=r aliases=resolve desc='resolve a value with a tag'"`

	Tags *cli.Command
}
