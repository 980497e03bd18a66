package main

import (
	"fmt"
	"io"
	"strings"

	edn "github.com/signadot/go-edn"
	"github.com/signadot/go-edn/tagged"

	"github.com/scott-cotton/cli"
)

func tags(cfg *TagsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tags.Parse(cc, args)
	if err != nil {
		return err
	}
	if !cfg.Resolve {
		return listTags(cc.Out)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: tags -r requires a tag and a value", cli.ErrUsage)
	}
	v, err := resolve(args[0], args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, v)
	return err
}

func listTags(w io.Writer) error {
	fmt.Fprintf(w, "available tags:\n")
	for _, t := range tagged.Tags() {
		fmt.Fprintf(w, "\t- %s\n", t)
	}
	return nil
}

// resolve reads value with the tag named by text, which may omit the
// leading '#'.
func resolve(text, value string) (any, error) {
	if !strings.HasPrefix(text, "#") {
		text = "#" + text
	}
	tag, err := edn.ParseTag(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return tagged.Resolve(tag, value)
}
