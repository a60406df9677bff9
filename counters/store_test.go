package counters_test

import (
	"slices"
	"testing"

	"go.uber.org/zap"

	"pdfhtml/counters"
	"pdfhtml/style"
)

func TestNestedLists(t *testing.T) {
	s := counters.New(zap.NewNop())

	// <ol><li/><li><ol><li/></ol></li><li/></ol>
	s.Push() // ol
	s.Reset(counters.ListItem, 0)

	var got []int
	item := func() {
		s.Push()
		s.Increment(counters.ListItem, 1)
		v, _ := s.Value(counters.ListItem)
		got = append(got, v)
	}

	item()
	s.Pop()
	item()
	{
		s.Push() // nested ol
		s.Reset(counters.ListItem, 0)
		item()
		if all := s.Values(counters.ListItem); !slices.Equal(all, []int{2, 1}) {
			t.Errorf("Values = %v, want [2 1]", all)
		}
		s.Pop()
		s.Pop()
	}
	s.Pop()
	item()
	s.Pop()
	s.Pop()

	if !slices.Equal(got, []int{1, 2, 1, 3}) {
		t.Errorf("numbers = %v, want [1 2 1 3]", got)
	}
	if s.Depth() != 0 {
		t.Errorf("depth = %d", s.Depth())
	}
	// counter created by the list stays visible to the list siblings
	if v, ok := s.Value(counters.ListItem); !ok || v != 3 {
		t.Errorf("list-item after the list = %d, %v", v, ok)
	}
}

func TestResetIsVisibleToSiblings(t *testing.T) {
	s := counters.New(nil)
	s.Push() // body
	s.Push() // h1
	s.Apply(style.MapOf(style.CounterReset, "chapter 4"))
	s.Pop()
	s.Push() // h2
	s.Apply(style.MapOf(style.CounterIncrement, "chapter"))
	if v, ok := s.Value("chapter"); !ok || v != 5 {
		t.Errorf("chapter = %d, %v", v, ok)
	}
	s.Pop()
	s.Pop()
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  map[string]int
	}{
		{
			name:  "reset defaults to zero",
			pairs: []string{style.CounterReset, "a b 3"},
			want:  map[string]int{"a": 0, "b": 3},
		},
		{
			name:  "increment defaults to one",
			pairs: []string{style.CounterIncrement, "a b -2"},
			want:  map[string]int{"a": 1, "b": -2},
		},
		{
			name:  "reset then increment",
			pairs: []string{style.CounterReset, "a 10", style.CounterIncrement, "a 5"},
			want:  map[string]int{"a": 15},
		},
		{
			name:  "none",
			pairs: []string{style.CounterReset, "none"},
			want:  map[string]int{},
		},
		{
			name:  "invalid name",
			pairs: []string{style.CounterReset, "5 a"},
			want:  map[string]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := counters.New(nil)
			s.Push()
			s.Apply(style.MapOf(tt.pairs...))
			for _, name := range []string{"a", "b"} {
				v, ok := s.Value(name)
				want, exists := tt.want[name]
				if ok != exists || v != want {
					t.Errorf("%s = %d, %v; want %d, %v", name, v, ok, want, exists)
				}
			}
		})
	}
}

func TestSet(t *testing.T) {
	s := counters.New(nil)
	s.Push()
	s.Set(counters.ListItem, 7)
	s.Increment(counters.ListItem, 1)
	if v, _ := s.Value(counters.ListItem); v != 8 {
		t.Errorf("list-item = %d, want 8", v)
	}
}
