// File: selector/argument.go
package selector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/boundbox/core"
)

// Sentinel errors for selector arguments.
var (
	// ErrNoArguments indicates an empty selector-argument set.
	ErrNoArguments = errors.New("selector: there must be at least one selector argument")
	// ErrRepeatedInput indicates one input used by two arguments.
	ErrRepeatedInput = errors.New("selector: input has been repeated")
	// ErrNotArgument indicates a reference naming no active argument.
	ErrNotArgument = errors.New("selector: does not correspond to any selector argument")
	// ErrIgnoreArgument indicates ignoring an active selector argument.
	ErrIgnoreArgument = errors.New("selector: is a selector argument and cannot be ignored")
	// ErrFixedValue indicates a fixed-values mapping without an entry for
	// the argument under either its index or its name.
	ErrFixedValue = errors.New("selector: argument was not found in the fixed values")
)

// Spec is one raw selector-argument specification: which input, and
// whether it is excluded from the child boxes' dimensions once used for
// selection.
type Spec struct {
	Ref    core.InputRef
	Ignore bool
}

// Of is the bare-reference shorthand: selector arguments default to
// ignoring their input in the child boxes.
func Of(ref core.InputRef) Spec {
	return Spec{Ref: ref, Ignore: true}
}

// Argument is a validated selector argument. Equality is by value:
// resolved index plus ignore flag.
type Argument struct {
	Index  int
	Ignore bool
}

// ValidateArgument resolves spec against the model's declared inputs.
func ValidateArgument(m core.Model, spec Spec) (Argument, error) {
	index, err := core.ResolveInput(m, spec.Ref)
	if err != nil {
		return Argument{}, err
	}
	return Argument{Index: index, Ignore: spec.Ignore}, nil
}

// Name is the argument input's declared name under m.
func (a Argument) Name(m core.Model) string {
	name, _ := core.InputName(m, a.Index)
	return name
}

// Describe renders the argument with its resolved name.
func (a Argument) Describe(m core.Model) string {
	return fmt.Sprintf("Argument(name='%s', ignore=%t)", a.Name(m), a.Ignore)
}

// Component extracts this argument's coordinate from full evaluation
// columns. A one-element column is a scalar component; a multi-element
// column keeps all its values so it can still act as a mapping key.
func (a Argument) Component(inputs [][]float64) ([]float64, error) {
	if a.Index < 0 || a.Index >= len(inputs) {
		return nil, fmt.Errorf("selector argument %d with %d input columns: %w",
			a.Index, len(inputs), core.ErrShapeMismatch)
	}
	column := inputs[a.Index]
	if len(column) == 0 {
		return nil, fmt.Errorf("selector argument %d has an empty column: %w",
			a.Index, core.ErrShapeMismatch)
	}
	return append([]float64(nil), column...), nil
}

// FixedValue looks this argument's bound value up in a mapping keyed by
// either input index or input name.
func (a Argument) FixedValue(m core.Model, values map[core.InputRef]float64) (float64, error) {
	if v, ok := values[core.Index(a.Index)]; ok {
		return v, nil
	}
	if v, ok := values[core.Name(a.Name(m))]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%s was not found in %v: %w", a.Describe(m), values, ErrFixedValue)
}

// IsArgument reports whether ref resolves to this argument's input.
func (a Argument) IsArgument(m core.Model, ref core.InputRef) (bool, error) {
	index, err := core.ResolveInput(m, ref)
	if err != nil {
		return false, err
	}
	return index == a.Index, nil
}
