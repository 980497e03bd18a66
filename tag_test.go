package edn

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTagNotInterned(t *testing.T) {
	before := KeywordStats()
	a, err := NewTag("a", "b")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewTag("a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if a != b || !a.Equal(b) || a.Compare(b) != 0 || a.Hash() != b.Hash() {
		t.Errorf("equal tags are not equal")
	}
	if after := KeywordStats(); after != before {
		t.Errorf("tag construction touched the keyword cache: %+v -> %+v", before, after)
	}
}

func TestTagString(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"", "inst", "#inst"},
		{"myapp", "Person", "#myapp/Person"},
	}
	for _, tt := range tests {
		tag := MustTag(tt.prefix, tt.name)
		if got := tag.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		parsed, err := ParseTag(tt.want)
		if err != nil {
			t.Fatal(err)
		}
		if parsed != tag {
			t.Errorf("ParseTag(%q) = %v, want %v", tt.want, parsed, tag)
		}
	}
	if tag, err := NewTagName("uuid"); err != nil || tag.String() != "#uuid" {
		t.Errorf("NewTagName(uuid) = %v, %v", tag, err)
	}
}

func TestTagErrors(t *testing.T) {
	if _, err := NewTag("", "1a"); !errors.Is(err, ErrSyntax) {
		t.Errorf("got %v, want syntax error", err)
	}
	if _, err := TagFrom(Symbol{}); !errors.Is(err, ErrArgument) {
		t.Errorf("got %v, want argument error", err)
	}
	for _, text := range []string{"", "inst", ":inst", "#", "##inst"} {
		if _, err := ParseTag(text); !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseTag(%q): got %v, want syntax error", text, err)
		}
	}
}

func TestTagFromSymbol(t *testing.T) {
	sym := MustSymbol("x", "y")
	tag, err := TagFrom(sym)
	if err != nil {
		t.Fatal(err)
	}
	if tag.Symbol() != sym || tag.Prefix() != "x" || tag.Name() != "y" {
		t.Errorf("TagFrom(%v) = %v", sym, tag)
	}
	if tag.Hash() == sym.Hash() {
		t.Errorf("tag hash is not scoped to its type")
	}
}

func TestTagJSON(t *testing.T) {
	in := map[string]Tag{"t": MustTag("app", "T")}
	d, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"t":"#app/T"}` {
		t.Errorf("got %s", d)
	}
	var out map[string]Tag
	if err := json.Unmarshal(d, &out); err != nil {
		t.Fatal(err)
	}
	if out["t"] != in["t"] {
		t.Errorf("round trip gave %v", out["t"])
	}
}
