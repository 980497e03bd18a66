package main

import (
	"bufio"
	"io"
	"strings"

	edn "github.com/signadot/go-edn"
)

// idents returns args, or the non-empty lines of r when args is empty or
// just "-".
func idents(args []string, r io.Reader) ([]string, error) {
	if len(args) != 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}
	var res []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, edn.NewIOError("reading identifiers", err)
	}
	return res, nil
}
