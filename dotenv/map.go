package dotenv

import "slices"

// Map is an insertion-ordered mapping of names to optional values, as
// produced by [Resolve]. Re-inserting a name updates its value in place
// without changing its position.
type Map struct {
	keys []string
	vals map[string]optional
}

type optional struct {
	value string
	has   bool
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{vals: make(map[string]optional)}
}

// Set binds key to value.
func (m *Map) Set(key, value string) {
	m.put(key, optional{value: value, has: true})
}

// SetNone records key as declared without a value.
func (m *Map) SetNone(key string) {
	m.put(key, optional{})
}

func (m *Map) put(key string, v optional) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Lookup reports the value bound to key. hasValue is false when the
// name was declared without a value; present is false when the name is
// absent entirely.
func (m *Map) Lookup(key string) (value string, hasValue, present bool) {
	v, ok := m.vals[key]
	return v.value, v.has, ok
}

// Get returns the value bound to key, or "" when key is absent or
// declared without a value.
func (m *Map) Get(key string) string {
	return m.vals[key].value
}

// Has reports whether key is present, with or without a value.
func (m *Map) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

// Len returns the number of names in the map.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the names in first-seen order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Strings returns the entries that carry a value as a plain map,
// dropping names declared without one.
func (m *Map) Strings() map[string]string {
	out := make(map[string]string, len(m.keys))
	for key, v := range m.vals {
		if v.has {
			out[key] = v.value
		}
	}
	return out
}
