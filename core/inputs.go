// File: core/inputs.go
package core

import (
	"fmt"
)

// InputRef references a model input either by declared name or by
// position. It is a sealed sum: the only implementations are Name and
// Index, so every lookup funnels through one canonicalization point.
type InputRef interface {
	fmt.Stringer
	// resolve canonicalizes the reference to an integer input position.
	resolve(m Model) (int, error)
}

// Name references a model input by its declared name.
type Name string

// Index references a model input by position among the declared inputs.
type Index int

func (n Name) String() string { return string(n) }

func (n Name) resolve(m Model) (int, error) {
	for i, input := range m.Inputs() {
		if input == string(n) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("'%s' is not one of the inputs: %v: %w", string(n), m.Inputs(), ErrUnknownInput)
}

func (i Index) String() string { return fmt.Sprintf("%d", int(i)) }

func (i Index) resolve(m Model) (int, error) {
	if int(i) < 0 || int(i) >= m.NInputs() {
		return 0, fmt.Errorf("integer key: %d must be non-negative and < %d: %w",
			int(i), m.NInputs(), ErrInputIndex)
	}
	return int(i), nil
}

// ResolveInput canonicalizes ref to an integer input position of m.
// Unknown names fail with ErrUnknownInput; out-of-range or negative
// indices fail with ErrInputIndex.
func ResolveInput(m Model, ref InputRef) (int, error) {
	return ref.resolve(m)
}

// ResolveInputs canonicalizes every reference, failing on the first one
// that does not resolve. A nil list resolves to an empty index list.
func ResolveInputs(m Model, refs []InputRef) ([]int, error) {
	indices := make([]int, 0, len(refs))
	for _, ref := range refs {
		index, err := ResolveInput(m, ref)
		if err != nil {
			return nil, err
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// InputName reports the declared name of the input at index. The index
// must already be resolved; out-of-range lookups fail with ErrInputIndex.
func InputName(m Model, index int) (string, error) {
	inputs := m.Inputs()
	if index < 0 || index >= len(inputs) {
		return "", fmt.Errorf("integer key: %d must be non-negative and < %d: %w",
			index, len(inputs), ErrInputIndex)
	}
	return inputs[index], nil
}
