// Package counters keeps CSS counters while elements are visited in document
// order.
package counters

import (
	"strconv"

	"go.uber.org/zap"

	"pdfhtml/css"
	"pdfhtml/style"
)

// ListItem is the counter maintained implicitly for list items.
const ListItem = "list-item"

// Store is a stack of counter scopes, one per open element. Counter created by
// an element belongs to the scope of its parent, so following siblings and
// their descendants see it too. Store is not safe for concurrent use.
type Store struct {
	log    *zap.Logger
	scopes []map[string]int
}

func New(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log.Named("counters"), scopes: []map[string]int{{}}}
}

// Push opens scope of an element. It must be called before counters of the
// element are applied.
func (s *Store) Push() {
	s.scopes = append(s.scopes, nil)
}

// Pop closes scope of an element together with counters its children created.
// The document scope is never removed.
func (s *Store) Pop() {
	if len(s.scopes) > 1 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

// Depth returns number of open element scopes.
func (s *Store) Depth() int {
	return len(s.scopes) - 1
}

// Reset creates new instance of the counter for the current element.
func (s *Store) Reset(name string, value int) {
	i := max(0, len(s.scopes)-2)
	if s.scopes[i] == nil {
		s.scopes[i] = make(map[string]int)
	}
	s.scopes[i][name] = value
}

// Increment changes innermost instance of the counter, creating it first when
// there is none.
func (s *Store) Increment(name string, by int) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if v, ok := s.scopes[i][name]; ok {
			s.scopes[i][name] = v + by
			return
		}
	}
	s.Reset(name, by)
}

// Set changes innermost instance of the counter, creating it first when there
// is none.
func (s *Store) Set(name string, value int) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if _, ok := s.scopes[i][name]; ok {
			s.scopes[i][name] = value
			return
		}
	}
	s.Reset(name, value)
}

// Value returns innermost instance of the counter.
func (s *Store) Value(name string) (int, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if v, ok := s.scopes[i][name]; ok {
			return v, true
		}
	}
	return 0, false
}

// Values returns all instances of the counter from outermost to innermost, as
// used by counters() function.
func (s *Store) Values(name string) []int {
	var res []int
	for _, sc := range s.scopes {
		if v, ok := sc[name]; ok {
			res = append(res, v)
		}
	}
	return res
}

// Apply executes counter-reset and counter-increment of the element.
func (s *Store) Apply(m *style.Map) {
	if v, ok := m.Get(style.CounterReset); ok {
		for _, p := range s.pairs(style.CounterReset, v, 0) {
			s.Reset(p.name, p.value)
		}
	}
	if v, ok := m.Get(style.CounterIncrement); ok {
		for _, p := range s.pairs(style.CounterIncrement, v, 1) {
			s.Increment(p.name, p.value)
		}
	}
}

type pair struct {
	name  string
	value int
}

// pairs parses "name [integer] name [integer] ..." list in declaration order.
func (s *Store) pairs(property, value string, def int) []pair {
	toks := css.SplitSpace(value)
	if len(toks) == 1 && css.IsKeyword(toks[0], "none") {
		toks = nil
	}
	var list []pair
	for i := 0; i < len(toks); i++ {
		name := toks[i]
		if _, err := strconv.Atoi(name); err == nil || css.IsKeyword(name, "none", "inherit", "initial") {
			s.log.Warn("Invalid counter name, ignored", zap.String("property", property), zap.String("value", value))
			return nil
		}
		p := pair{name: name, value: def}
		if i+1 < len(toks) {
			if n, err := strconv.Atoi(toks[i+1]); err == nil {
				p.value = n
				i++
			}
		}
		list = append(list, p)
	}
	return list
}
