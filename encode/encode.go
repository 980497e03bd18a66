package encode

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-edn/format"

	"github.com/goccy/go-yaml"
)

// Encode writes recs to w in the format selected by opts (text by
// default).
func Encode(recs []Record, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch {
	case es.format.IsJSON():
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case es.format.IsYAML():
		d, err := yaml.Marshal(recs)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case es.format.IsText():
		return encodeText(recs, w, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func encodeText(recs []Record, w io.Writer, es *EncState) error {
	bw := bufio.NewWriter(w)
	for i := range recs {
		rec := &recs[i]
		if rec.Valid() {
			fmt.Fprintf(bw, "%s\t%s\n", es.ident(rec), rec.Kind)
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\n", es.color("", InputColor, rec.Input), es.color("", ErrorColor, rec.Error))
	}
	return bw.Flush()
}

func (es *EncState) color(k Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

// ident renders the canonical text of rec with its parts colored.
func (es *EncState) ident(rec *Record) string {
	if es.Color == nil {
		return rec.Canonical
	}
	b := &strings.Builder{}
	switch rec.Kind {
	case KeywordKind:
		b.WriteString(es.color(rec.Kind, SigilColor, ":"))
	case TagKind:
		b.WriteString(es.color(rec.Kind, SigilColor, "#"))
	}
	if rec.Prefix != "" {
		b.WriteString(es.color(rec.Kind, PrefixColor, rec.Prefix))
		b.WriteString(es.color(rec.Kind, SepColor, "/"))
	}
	b.WriteString(es.color(rec.Kind, NameColor, rec.Name))
	return b.String()
}

// MustString encodes recs as text and panics on error.
func MustString(recs ...Record) string {
	buf := &strings.Builder{}
	if err := Encode(recs, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
