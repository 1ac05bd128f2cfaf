// File: compound/fix.go
package compound

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/boundbox/bound"
	"github.com/katalvlaran/boundbox/core"
	"github.com/katalvlaran/boundbox/selector"
)

// MatchingBoxes collects the children whose key carries value for ref's
// selector argument, re-keyed with that component removed. When the
// argument is a tracked dimension of its children, each match drops the
// dimension via FixInputs; children of an ignored argument are copied
// unchanged.
func (b *Box) MatchingBoxes(ref core.InputRef, value float64) (map[selector.Key]*bound.Box, error) {
	position, err := b.args.SelectorIndex(b.model, ref)
	if err != nil {
		return nil, err
	}
	arg := b.args.At(position)
	matching := make(map[selector.Key]*bound.Box)
	for key, child := range b.boxes {
		if !key.Matches(position, value) {
			continue
		}
		if arg.Ignore {
			matching[key.Without(position)] = child.Copy()
			continue
		}
		fixed, err := child.FixInputs(b.model, []core.InputRef{core.Index(arg.Index)}, true)
		if err != nil {
			return nil, err
		}
		matching[key.Without(position)] = fixed
	}
	if len(matching) == 0 {
		return nil, fmt.Errorf("attempting to fix input %s to %v: %w",
			arg.Name(b.model), value, ErrNoMatchingBox)
	}
	return matching, nil
}

// FixInputSelectorArg pins one selector argument to a constant: the
// matching children are re-keyed without the argument's component and the
// argument moves into the reduced-away bookkeeping. Fixing the last
// argument collapses the result into the single matching bound.Box.
func (b *Box) FixInputSelectorArg(ref core.InputRef, value float64) (bound.Domain, error) {
	matching, err := b.MatchingBoxes(ref, value)
	if err != nil {
		return nil, err
	}
	reduced, err := b.args.Reduce(b.model, ref)
	if err != nil {
		return nil, err
	}
	if reduced.Len() == 0 {
		return matching[selector.KeyOf()], nil
	}
	cb := &Box{
		model: b.model,
		args:  reduced,
		boxes: make(map[selector.Key]*bound.Box, len(matching)),
		order: b.order,
	}
	for key, child := range matching {
		if err := cb.Set(key, child); err != nil {
			return nil, err
		}
	}
	return cb, nil
}

// FixInputBBoxArg pins an input that is a plain bounded dimension, not a
// selector argument: every child drops the dimension and the input joins
// the arguments' reduced-away bookkeeping so it stays excluded.
func (b *Box) FixInputBBoxArg(ref core.InputRef) (*Box, error) {
	args, err := b.args.AddIgnore(b.model, ref)
	if err != nil {
		return nil, err
	}
	cb := &Box{
		model:  b.model,
		args:   args,
		boxes:  make(map[selector.Key]*bound.Box, len(b.boxes)),
		create: b.create,
		order:  b.order,
	}
	for key, child := range b.boxes {
		fixed, err := child.FixInputs(b.model, []core.InputRef{ref}, true)
		if err != nil {
			return nil, err
		}
		if err := cb.Set(key, fixed); err != nil {
			return nil, err
		}
	}
	return cb, nil
}

// FixInputs specializes the compound box for newModel, a variant of the
// current model with the referenced inputs pinned to the given values.
// Selector-argument fixes are applied first, then bounded-dimension
// fixes, and the survivor is re-validated against newModel by input name
// with fresh bookkeeping. A plain bound.Box comes back once no selector
// arguments remain.
func (b *Box) FixInputs(newModel core.Model, values map[core.InputRef]float64) (bound.Domain, error) {
	selectorFixes, bboxFixes, err := b.partitionFixes(values)
	if err != nil {
		return nil, err
	}

	current := b
	for _, fix := range selectorFixes {
		next, err := current.FixInputSelectorArg(fix.ref, fix.value)
		if err != nil {
			return nil, err
		}
		if plain, ok := next.(*bound.Box); ok {
			// Last selector argument fixed: the remaining fixes are plain
			// dimension drops on a single box.
			refs := make([]core.InputRef, len(bboxFixes))
			for i, f := range bboxFixes {
				refs[i] = f.ref
			}
			return plain.FixInputs(newModel, refs, false)
		}
		current = next.(*Box)
	}
	for _, fix := range bboxFixes {
		next, err := current.FixInputBBoxArg(fix.ref)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current.rebind(newModel)
}

// rebind re-validates the compound against newModel: arguments are
// re-resolved by name (positions shift when the input list shrinks), the
// reduced-away bookkeeping resets, and every child is rebuilt from its
// surviving named intervals.
func (b *Box) rebind(newModel core.Model) (*Box, error) {
	argSpecs := make([]selector.Spec, b.args.Len())
	for i, arg := range b.args.Args() {
		argSpecs[i] = selector.Spec{Ref: core.Name(arg.Name(b.model)), Ignore: arg.Ignore}
	}
	boxes := make(map[selector.Key]bound.Spec, len(b.boxes))
	for key, child := range b.boxes {
		boxes[key] = child
	}
	return Validate(newModel, boxes, argSpecs, WithOrder(b.order))
}

type fixedInput struct {
	ref   core.InputRef
	index int
	value float64
}

// partitionFixes splits the fixed inputs into selector-argument fixes and
// bounded-dimension fixes, each sorted by input position for stable
// application order.
func (b *Box) partitionFixes(values map[core.InputRef]float64) (selectorFixes, bboxFixes []fixedInput, err error) {
	for ref, value := range values {
		index, err := core.ResolveInput(b.model, ref)
		if err != nil {
			return nil, nil, err
		}
		fix := fixedInput{ref: ref, index: index, value: value}
		isArg, err := b.args.IsArgument(b.model, ref)
		if err != nil {
			return nil, nil, err
		}
		if isArg {
			selectorFixes = append(selectorFixes, fix)
		} else {
			bboxFixes = append(bboxFixes, fix)
		}
	}
	sort.Slice(selectorFixes, func(i, j int) bool { return selectorFixes[i].index < selectorFixes[j].index })
	sort.Slice(bboxFixes, func(i, j int) bool { return bboxFixes[i].index < bboxFixes[j].index })
	return selectorFixes, bboxFixes, nil
}
