// Package style holds cascaded property values of a single element.
package style

import (
	"iter"
	"slices"
	"strings"
)

// Map is an ordered mapping of property names to raw cascaded values. Names
// keep the position of their first insertion.
type Map struct {
	names  []string
	values map[string]string
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{values: make(map[string]string)}
}

// MapOf creates a map from name, value pairs. Odd trailing name is ignored.
func MapOf(pairs ...string) *Map {
	m := NewMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// Get returns trimmed value of the property. Nil map has no properties.
func (m *Map) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[name]
	return v, ok
}

// Value returns property value or empty string.
func (m *Map) Value(name string) string {
	v, _ := m.Get(name)
	return v
}

// Has reports whether property is present and not blank.
func (m *Map) Has(name string) bool {
	v, ok := m.Get(name)
	return ok && v != ""
}

// Set stores the value, leading and trailing spaces are removed.
func (m *Map) Set(name, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[name]; !exists {
		m.names = append(m.names, name)
	}
	m.values[name] = strings.TrimSpace(value)
}

func (m *Map) Delete(name string) {
	if m == nil {
		return
	}
	if _, exists := m.values[name]; !exists {
		return
	}
	delete(m.values, name)
	m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == name })
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns property names in insertion order.
func (m *Map) Names() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.names)
}

// All iterates over properties in insertion order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, n := range m.names {
			if !yield(n, m.values[n]) {
				return
			}
		}
	}
}

// Clone returns independent copy of the map.
func (m *Map) Clone() *Map {
	c := NewMap()
	for n, v := range m.All() {
		c.Set(n, v)
	}
	return c
}
