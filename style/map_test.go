package style

import (
	"slices"
	"testing"
)

func TestMapOrder(t *testing.T) {
	m := MapOf("color", "red", "margin-top", " 4px ", "color", "blue", "orphan")

	if got := m.Names(); !slices.Equal(got, []string{"color", "margin-top"}) {
		t.Errorf("Names() = %v", got)
	}
	if got := m.Value("color"); got != "blue" {
		t.Errorf("color = %q, want blue", got)
	}
	if got := m.Value("margin-top"); got != "4px" {
		t.Errorf("margin-top = %q, want trimmed value", got)
	}
	if _, ok := m.Get("orphan"); ok {
		t.Error("odd trailing name should be ignored")
	}

	m.Delete("color")
	m.Set("color", "green")
	if got := m.Names(); !slices.Equal(got, []string{"margin-top", "color"}) {
		t.Errorf("Names() after re-insert = %v", got)
	}

	var pairs []string
	for n, v := range m.All() {
		pairs = append(pairs, n+"="+v)
		break
	}
	if !slices.Equal(pairs, []string{"margin-top=4px"}) {
		t.Errorf("All() with early stop = %v", pairs)
	}
}

func TestMapPresence(t *testing.T) {
	m := MapOf("border-color", "", "float", "left")

	tests := []struct {
		name    string
		present bool
		has     bool
	}{
		{"border-color", true, false},
		{"float", true, true},
		{"clear", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := m.Get(tt.name)
			if ok != tt.present || m.Has(tt.name) != tt.has {
				t.Errorf("Get present = %v, Has = %v, want %v, %v", ok, m.Has(tt.name), tt.present, tt.has)
			}
		})
	}
}

func TestMapNilAndClone(t *testing.T) {
	var m *Map
	if m.Len() != 0 || m.Names() != nil || m.Has("color") {
		t.Error("nil map should be empty")
	}
	m.Delete("color")
	for range m.All() {
		t.Error("nil map should not yield")
	}

	orig := MapOf("color", "red")
	c := orig.Clone()
	c.Set("color", "blue")
	c.Set("float", "left")
	if orig.Value("color") != "red" || orig.Len() != 1 {
		t.Error("Clone() is not independent")
	}
}
