package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	edn "github.com/signadot/go-edn"
	"github.com/signadot/go-edn/encode"
	"github.com/signadot/go-edn/format"
	"github.com/signadot/go-edn/tagged"

	"github.com/google/go-cmp/cmp"
)

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestIdents(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want []string
	}{
		{name: "args", args: []string{"a", ":b"}, in: "ignored", want: []string{"a", ":b"}},
		{name: "stdin", in: "a\n\n  :b/c \n#t\n", want: []string{"a", ":b/c", "#t"}},
		{name: "dash", args: []string{"-"}, in: "x\n", want: []string{"x"}},
		{name: "empty", in: "\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idents(tt.args, strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("idents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIdentsReadError(t *testing.T) {
	_, err := idents(nil, failReader{})
	if !errors.Is(err, edn.ErrIO) {
		t.Fatalf("expected i/o error, got %v", err)
	}
	var ioErr *edn.IOError
	if !errors.As(err, &ioErr) || ioErr.Cause().Error() != "boom" {
		t.Errorf("unexpected cause in %v", err)
	}
}

func TestCheckIdents(t *testing.T) {
	cfg := &MainConfig{}
	buf := &bytes.Buffer{}
	bad, err := checkIdents(cfg, buf, []string{"ns/a", ":k", "-1x", "#app/t"})
	if err != nil {
		t.Fatal(err)
	}
	if bad != 1 {
		t.Errorf("bad = %d, want 1", bad)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"ns/a\tsymbol", ":k\tkeyword", "#app/t\ttag"}
	got := []string{lines[0], lines[1], lines[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(lines[2], "-1x\t") {
		t.Errorf("expected invalid line for -1x, got %q", lines[2])
	}
}

func TestCheckIdentsJSON(t *testing.T) {
	j := format.JSONFormat
	cfg := &MainConfig{OutFormat: &j}
	buf := &bytes.Buffer{}
	if _, err := checkIdents(cfg, buf, []string{":a/b"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"canonical": ":a/b"`) {
		t.Errorf("unexpected json %s", buf)
	}
}

func TestOutFormat(t *testing.T) {
	y := format.YAMLFormat
	tests := []struct {
		cfg  MainConfig
		want format.Format
	}{
		{cfg: MainConfig{}, want: format.TextFormat},
		{cfg: MainConfig{J: true}, want: format.JSONFormat},
		{cfg: MainConfig{Y: true}, want: format.YAMLFormat},
		{cfg: MainConfig{J: true, OutFormat: &y}, want: format.YAMLFormat},
	}
	for i, tt := range tests {
		if got := tt.cfg.outFormat(); got != tt.want {
			t.Errorf("%d: outFormat = %s, want %s", i, got, tt.want)
		}
		if got := encode.FormatFromOpts(tt.cfg.encOpts(&bytes.Buffer{})...); got != tt.want {
			t.Errorf("%d: encOpts format = %s, want %s", i, got, tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	ids := []string{"a/b", ":app/x", ":lib/y", "#app/t", "1bad", ":app/z"}
	tests := []struct {
		expr string
		want []string
	}{
		{expr: `kind == "keyword"`, want: []string{":app/x", ":lib/y", ":app/z"}},
		{expr: `prefix == "app"`, want: []string{":app/x", "#app/t", ":app/z"}},
		{expr: `kind == "keyword" && name in ["x", "y"]`, want: []string{":app/x", ":lib/y"}},
		{expr: `text startsWith "#"`, want: []string{"#app/t"}},
		{expr: `false`},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			prg, err := compileFilter(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			recs, err := filterIdents(prg, ids)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, rec := range recs {
				got = append(got, rec.Canonical)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterCompileError(t *testing.T) {
	for _, e := range []string{`kind +`, `name`, `unknown == 1`} {
		if _, err := compileFilter(e); err == nil {
			t.Errorf("expected error compiling %q", e)
		}
	}
}

func TestWriteRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	recs := []encode.Record{encode.Check(":a"), encode.Check("b/c")}
	if err := writeRecords(&MainConfig{}, buf, recs); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(":a\nb/c\n", buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	v, err := resolve("inst", "2020-01-02T03:04:05Z")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if tm, ok := v.(time.Time); !ok || !tm.Equal(want) {
		t.Errorf("got %v, want %v", v, want)
	}

	v, err = resolve("#app/color", "red")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(edn.TaggedValue).String(); got != "#app/color red" {
		t.Errorf("got %q", got)
	}

	if _, err := resolve("#uuid", "nope"); !errors.Is(err, tagged.ErrValue) {
		t.Errorf("expected value error, got %v", err)
	}
	if _, err := resolve("#1x", "v"); !errors.Is(err, edn.ErrSyntax) {
		t.Errorf("expected syntax error, got %v", err)
	}
}

func TestListTags(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := listTags(buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"#inst", "#uuid"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %s in %q", want, buf)
		}
	}
}

func TestCloseOut(t *testing.T) {
	cfg := &MainConfig{}
	if err := cfg.closeOut(); err != nil {
		t.Fatal(err)
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	cfg.CloseOut = func() error {
		calls++
		return f.Close()
	}
	if err := cfg.closeOut(); err != nil {
		t.Fatal(err)
	}
	if err := cfg.closeOut(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("CloseOut called %d times, want 1", calls)
	}
	if _, err := f.Write([]byte("x")); err == nil {
		t.Errorf("output file still open")
	}
}

func TestFormatNames(t *testing.T) {
	if diff := cmp.Diff("text/t, json/j, yaml/y", formatNames()); diff != "" {
		t.Errorf("formatNames mismatch (-want +got):\n%s", diff)
	}
	for _, name := range strings.Split(formatNames(), ", ") {
		long, short, _ := strings.Cut(name, "/")
		lf, err := format.ParseFormat(long)
		if err != nil {
			t.Fatal(err)
		}
		sf, err := format.ParseFormat(short)
		if err != nil || sf != lf {
			t.Errorf("%s: alias %q parses to %v, %v", long, short, sf, err)
		}
	}
}
