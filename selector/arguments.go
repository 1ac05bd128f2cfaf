// File: selector/arguments.go
package selector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/boundbox/core"
)

// Arguments is an ordered, fixed-length, immutable set of selector
// arguments plus keptIgnore: input indices that used to be selector
// arguments (or bounded dimensions) and were reduced away, yet must stay
// excluded from the active dimension set. Every mutating operation
// returns a new Arguments; the receiver is never changed.
type Arguments struct {
	args       []Argument
	keptIgnore []int
}

// Validate resolves and checks a raw specification list: at least one
// argument, and no input referenced twice.
func Validate(m core.Model, specs []Spec, keptIgnore []int) (Arguments, error) {
	if len(specs) == 0 {
		return Arguments{}, ErrNoArguments
	}
	args := make([]Argument, 0, len(specs))
	for _, spec := range specs {
		arg, err := ValidateArgument(m, spec)
		if err != nil {
			return Arguments{}, err
		}
		for _, prior := range args {
			if prior.Index == arg.Index {
				return Arguments{}, fmt.Errorf("input '%s' has been repeated: %w",
					arg.Name(m), ErrRepeatedInput)
			}
		}
		args = append(args, arg)
	}
	return Arguments{args: args, keptIgnore: append([]int(nil), keptIgnore...)}, nil
}

// WithKeptIgnore re-validates an existing set, overriding its keptIgnore
// bookkeeping. The active arguments pass through unchanged.
func (s Arguments) WithKeptIgnore(keptIgnore []int) Arguments {
	return Arguments{
		args:       append([]Argument(nil), s.args...),
		keptIgnore: append([]int(nil), keptIgnore...),
	}
}

// Len reports the number of active selector arguments.
func (s Arguments) Len() int { return len(s.args) }

// At is the i-th active argument in declared order.
func (s Arguments) At(i int) Argument { return s.args[i] }

// Args is a copy of the active arguments in declared order.
func (s Arguments) Args() []Argument { return append([]Argument(nil), s.args...) }

// KeptIgnore is a copy of the reduced-away index bookkeeping.
func (s Arguments) KeptIgnore() []int { return append([]int(nil), s.keptIgnore...) }

// Ignore is the union of ignore-true argument indices and keptIgnore:
// every input the child boxes must exclude from their own dimensions.
func (s Arguments) Ignore() []int {
	ignore := make([]int, 0, len(s.args)+len(s.keptIgnore))
	for _, arg := range s.args {
		if arg.Ignore {
			ignore = append(ignore, arg.Index)
		}
	}
	return append(ignore, s.keptIgnore...)
}

// Key concatenates every argument's component from the evaluation
// columns, in declared order — the compound box's lookup key.
func (s Arguments) Key(inputs [][]float64) (Key, error) {
	components := make([][]float64, 0, len(s.args))
	for _, arg := range s.args {
		component, err := arg.Component(inputs)
		if err != nil {
			return Key{}, err
		}
		components = append(components, component)
	}
	return keyOf(components), nil
}

// IsSelector reports whether key has one component per active argument.
func (s Arguments) IsSelector(key Key) bool {
	return key.Len() == len(s.args)
}

// FixedValues assembles the selector key from a mapping of fixed input
// values keyed by index or name.
func (s Arguments) FixedValues(m core.Model, values map[core.InputRef]float64) (Key, error) {
	fixed := make([]float64, 0, len(s.args))
	for _, arg := range s.args {
		v, err := arg.FixedValue(m, values)
		if err != nil {
			return Key{}, err
		}
		fixed = append(fixed, v)
	}
	return KeyOf(fixed...), nil
}

// IsArgument reports whether ref resolves to any active argument's input.
func (s Arguments) IsArgument(m core.Model, ref core.InputRef) (bool, error) {
	index, err := core.ResolveInput(m, ref)
	if err != nil {
		return false, err
	}
	for _, arg := range s.args {
		if arg.Index == index {
			return true, nil
		}
	}
	return false, nil
}

// SelectorIndex is the position of ref's input among the active
// arguments — the component slot it occupies in every selector key.
func (s Arguments) SelectorIndex(m core.Model, ref core.InputRef) (int, error) {
	index, err := core.ResolveInput(m, ref)
	if err != nil {
		return 0, err
	}
	for i, arg := range s.args {
		if arg.Index == index {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s %w", ref, ErrNotArgument)
}

// Reduce removes ref's argument from the active set, recording its input
// index in keptIgnore so the dimension stays excluded. The caller decides
// what a zero-argument result means (a fully resolved selector).
func (s Arguments) Reduce(m core.Model, ref core.InputRef) (Arguments, error) {
	position, err := s.SelectorIndex(m, ref)
	if err != nil {
		return Arguments{}, err
	}
	removed := s.args[position]
	args := make([]Argument, 0, len(s.args)-1)
	args = append(args, s.args[:position]...)
	args = append(args, s.args[position+1:]...)
	return Arguments{
		args:       args,
		keptIgnore: append(s.KeptIgnore(), removed.Index),
	}, nil
}

// AddIgnore records a non-selector input index in keptIgnore. Ignoring an
// input that is an active selector argument is an error.
func (s Arguments) AddIgnore(m core.Model, ref core.InputRef) (Arguments, error) {
	index, err := core.ResolveInput(m, ref)
	if err != nil {
		return Arguments{}, err
	}
	for _, arg := range s.args {
		if arg.Index == index {
			return Arguments{}, fmt.Errorf("%s: %w", ref, ErrIgnoreArgument)
		}
	}
	return Arguments{
		args:       append([]Argument(nil), s.args...),
		keptIgnore: append(s.KeptIgnore(), index),
	}, nil
}

// Names lists the active arguments' input names in declared order.
func (s Arguments) Names(m core.Model) []string {
	names := make([]string, len(s.args))
	for i, arg := range s.args {
		names[i] = arg.Name(m)
	}
	return names
}

// Equal compares the active argument lists by value. keptIgnore is
// bookkeeping about the past, not identity, and is excluded.
func (s Arguments) Equal(other Arguments) bool {
	if len(s.args) != len(other.args) {
		return false
	}
	for i, arg := range s.args {
		if other.args[i] != arg {
			return false
		}
	}
	return true
}

// Describe renders the argument set with resolved names.
func (s Arguments) Describe(m core.Model) string {
	var sb strings.Builder
	sb.WriteString("SelectorArguments(\n")
	for _, arg := range s.args {
		fmt.Fprintf(&sb, "    %s\n", arg.Describe(m))
	}
	sb.WriteString(")")
	return sb.String()
}
