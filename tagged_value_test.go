package edn

import (
	"errors"
	"testing"
)

func TestTaggedValue(t *testing.T) {
	tag := MustTag("app", "point")
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "x", "#app/point x"},
		{"nil", nil, "#app/point nil"},
		{"slice", []any{int64(1), int64(2)}, "#app/point [1 2]"},
		{"keyword", MustKeyword("", "k"), "#app/point :k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewTaggedValue(tag, tt.value)
			if err != nil {
				t.Fatal(err)
			}
			if v.Tag() != tag {
				t.Errorf("Tag() = %v", v.Tag())
			}
			if got := v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			w, _ := NewTaggedValue(MustTag("app", "point"), tt.value)
			if !v.Equal(w) || v.Hash() != w.Hash() {
				t.Errorf("structurally equal tagged values differ")
			}
		})
	}
}

func TestTaggedValueEquality(t *testing.T) {
	tag := MustTag("app", "p")
	a, _ := NewTaggedValue(tag, map[string]any{"x": 1.0})
	b, _ := NewTaggedValue(tag, map[string]any{"x": 1.0})
	c, _ := NewTaggedValue(tag, map[string]any{"x": 2.0})
	d, _ := NewTaggedValue(MustTag("app", "q"), map[string]any{"x": 1.0})
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Errorf("deeply equal values are not equal")
	}
	if a.Equal(c) || a.Equal(d) {
		t.Errorf("distinct values are equal")
	}
	z1, _ := NewTaggedValue(tag, 0.0)
	var negZero = 0.0
	negZero = -negZero
	z2, _ := NewTaggedValue(tag, negZero)
	if z1.Equal(z2) && z1.Hash() != z2.Hash() {
		t.Errorf("hash inconsistent with Equal for signed zeros")
	}
	if v := a.Value().(map[string]any); v["x"] != 1.0 {
		t.Errorf("Value() = %v", v)
	}
}

func TestTaggedValueAbsentTag(t *testing.T) {
	_, err := NewTaggedValue(Tag{}, "anything")
	if !errors.Is(err, ErrArgument) {
		t.Errorf("got %v, want argument error", err)
	}
	if errors.Is(err, ErrGeneral) {
		t.Errorf("argument error should not be an edn fault")
	}
}
