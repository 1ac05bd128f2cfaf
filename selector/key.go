// File: selector/key.go
package selector

import (
	"strconv"
	"strings"
)

// Key is the canonical, comparable form of a selector-value tuple: one
// component per selector argument. Each component is encoded with the
// shortest round-trip float format, so a scalar 5, a float 5.0 and a
// one-element column [5] all produce the same Key. Multi-element
// components keep every value, mirroring the tuple-of-values form a
// vector-valued selector coordinate takes.
type Key struct {
	repr string
	n    int
}

const (
	componentSep = "|"
	valueSep     = ","
)

// KeyOf builds a Key from one scalar value per selector argument.
func KeyOf(values ...float64) Key {
	components := make([][]float64, len(values))
	for i, v := range values {
		components[i] = []float64{v}
	}
	return keyOf(components)
}

// keyOf builds a Key from raw per-argument components.
func keyOf(components [][]float64) Key {
	encoded := make([]string, len(components))
	for i, component := range components {
		values := make([]string, len(component))
		for j, v := range component {
			values[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		encoded[i] = strings.Join(values, valueSep)
	}
	return Key{repr: strings.Join(encoded, componentSep), n: len(components)}
}

// Len reports the number of selector components.
func (k Key) Len() int { return k.n }

// Components decodes the per-argument value lists.
func (k Key) Components() [][]float64 {
	if k.n == 0 {
		return nil
	}
	encoded := strings.Split(k.repr, componentSep)
	components := make([][]float64, len(encoded))
	for i, component := range encoded {
		values := strings.Split(component, valueSep)
		decoded := make([]float64, len(values))
		for j, v := range values {
			decoded[j], _ = strconv.ParseFloat(v, 64)
		}
		components[i] = decoded
	}
	return components
}

// Without returns the Key with component i removed — the remaining
// selector key after one argument has been fixed.
func (k Key) Without(i int) Key {
	components := k.Components()
	if i < 0 || i >= len(components) {
		return k
	}
	return keyOf(append(components[:i], components[i+1:]...))
}

// Matches reports whether component i is the single scalar value.
func (k Key) Matches(i int, value float64) bool {
	components := k.Components()
	if i < 0 || i >= len(components) {
		return false
	}
	return len(components[i]) == 1 && components[i][0] == value
}

// String renders the key tuple-style, e.g. "(5)" or "(1, 2)".
func (k Key) String() string {
	components := k.Components()
	parts := make([]string, len(components))
	for i, component := range components {
		values := make([]string, len(component))
		for j, v := range component {
			values[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if len(values) == 1 {
			parts[i] = values[0]
		} else {
			parts[i] = "[" + strings.Join(values, " ") + "]"
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
