// File: compound/compound.go
package compound

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/boundbox/bound"
	"github.com/katalvlaran/boundbox/core"
	"github.com/katalvlaran/boundbox/selector"
)

var (
	// ErrNotSelector marks a key whose arity does not match the selector
	// arguments.
	ErrNotSelector = errors.New("compound: key is not a selector")
	// ErrMissingSelector marks a lookup of a key with no stored box and no
	// create-selector factory to build one.
	ErrMissingSelector = errors.New("compound: no bounding box is defined for selector")
	// ErrNoMatchingBox marks a fix of a selector argument to a value no
	// stored key carries.
	ErrNoMatchingBox = errors.New("compound: no bounding boxes for argument value")
)

// CreateSelector builds a bounding-box specification for a selector key
// seen for the first time. The produced spec is validated and memoized,
// so the factory runs at most once per key.
type CreateSelector func(key selector.Key) (bound.Spec, error)

// Box is a compound bounding domain: a collection of bound.Box children
// keyed by the values of designated selector inputs. It satisfies
// bound.Domain, so the standard evaluation pipeline picks the child
// matching each call's selector values transparently.
type Box struct {
	model  core.Model
	args   selector.Arguments
	boxes  map[selector.Key]*bound.Box
	create CreateSelector
	order  bound.Order
}

type options struct {
	create   CreateSelector
	order    bound.Order
	orderSet bool
}

// Option configures compound Box construction.
type Option func(*options)

// WithCreateSelector installs a factory for keys with no stored box.
func WithCreateSelector(create CreateSelector) Option {
	return func(o *options) { o.create = create }
}

// WithOrder sets the coordinate order applied to every child box.
func WithOrder(order bound.Order) Option {
	return func(o *options) {
		o.order = order
		o.orderSet = true
	}
}

// Validate builds a compound Box over model: the selector arguments are
// resolved first, then every supplied specification is validated into a
// child box under its key. A failed Validate leaves nothing behind.
func Validate(model core.Model, boxes map[selector.Key]bound.Spec, argSpecs []selector.Spec, opts ...Option) (*Box, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	order, err := bound.ValidateOrder(o.order, bound.DefaultOrder)
	if err != nil {
		return nil, err
	}
	args, err := selector.Validate(model, argSpecs, nil)
	if err != nil {
		return nil, err
	}
	b := &Box{
		model:  model,
		args:   args,
		boxes:  make(map[selector.Key]*bound.Box, len(boxes)),
		create: o.create,
		order:  order,
	}
	for key, spec := range boxes {
		if err := b.Set(key, spec); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Model is the owning model, referenced for name resolution only.
func (b *Box) Model() core.Model { return b.model }

// Order is the coordinate order applied to the child boxes.
func (b *Box) Order() bound.Order { return b.order }

// SelectorArgs is the argument set keys are built from.
func (b *Box) SelectorArgs() selector.Arguments { return b.args }

// CreateSelectorFn is the installed factory, nil when lookups of unknown
// keys must fail.
func (b *Box) CreateSelectorFn() CreateSelector { return b.create }

// Boxes is a copy of the key→box mapping. The children are shared, not
// cloned.
func (b *Box) Boxes() map[selector.Key]*bound.Box {
	boxes := make(map[selector.Key]*bound.Box, len(b.boxes))
	for key, child := range b.boxes {
		boxes[key] = child
	}
	return boxes
}

// Len reports the number of stored selector keys.
func (b *Box) Len() int { return len(b.boxes) }

// Contains reports whether a box is already stored under key. A factory
// that could build one does not count.
func (b *Box) Contains(key selector.Key) bool {
	_, ok := b.boxes[key]
	return ok
}

// Set validates spec into a child box stored under key. The key's arity
// must match the selector arguments, and the child inherits the compound
// order plus the arguments' ignored inputs.
func (b *Box) Set(key selector.Key, spec bound.Spec) error {
	if !b.args.IsSelector(key) {
		return fmt.Errorf("%s %w", key, ErrNotSelector)
	}
	opts := []bound.Option{bound.WithOrder(b.order)}
	for _, index := range b.args.Ignore() {
		opts = append(opts, bound.WithIgnored(core.Index(index)))
	}
	child, err := bound.Validate(b.model, spec, opts...)
	if err != nil {
		return err
	}
	b.boxes[key] = child
	return nil
}

// Get returns the box stored under key, consulting the create-selector
// factory for unseen keys. Factory results are validated via Set and
// memoized, so repeated lookups hand back the same child.
func (b *Box) Get(key selector.Key) (*bound.Box, error) {
	if child, ok := b.boxes[key]; ok {
		return child, nil
	}
	if b.create == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSelector, key)
	}
	spec, err := b.create(key)
	if err != nil {
		return nil, err
	}
	if err := b.Set(key, spec); err != nil {
		return nil, err
	}
	return b.boxes[key], nil
}

// Select reads the selector values out of the evaluation columns and
// returns the matching child box.
func (b *Box) Select(inputs [][]float64) (*bound.Box, error) {
	key, err := b.args.Key(inputs)
	if err != nil {
		return nil, err
	}
	return b.Get(key)
}

// PrepareInputs selects the child matching the call's selector values and
// delegates the point classification to it.
func (b *Box) PrepareInputs(shape int, inputs [][]float64) (bound.Prepared, error) {
	child, err := b.Select(inputs)
	if err != nil {
		return bound.Prepared{}, err
	}
	return child.PrepareInputs(shape, inputs)
}

// Equal reports whether two compound boxes carry equal selector arguments
// and pairwise-equal children under the same keys. The create-selector
// factory and the order flag are presentation, not identity.
func (b *Box) Equal(other *Box) bool {
	if other == nil || len(b.boxes) != len(other.boxes) {
		return false
	}
	if !b.args.Equal(other.args) {
		return false
	}
	for key, child := range b.boxes {
		otherChild, ok := other.boxes[key]
		if !ok || !child.Equal(otherChild) {
			return false
		}
	}
	return true
}

// Copy deep-copies the children and argument bookkeeping; the model
// reference and factory are shared.
func (b *Box) Copy() *Box {
	cp := &Box{
		model:  b.model,
		args:   b.args,
		boxes:  make(map[selector.Key]*bound.Box, len(b.boxes)),
		create: b.create,
		order:  b.order,
	}
	for key, child := range b.boxes {
		cp.boxes[key] = child.Copy()
	}
	return cp
}

// String renders the argument set and every stored child, keys sorted for
// stable output.
func (b *Box) String() string {
	keys := make([]selector.Key, 0, len(b.boxes))
	for key := range b.boxes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	var sb strings.Builder
	sb.WriteString("CompoundBox(\n")
	for _, line := range strings.Split(b.args.Describe(b.model), "\n") {
		fmt.Fprintf(&sb, "    %s\n", line)
	}
	sb.WriteString("    boxes={\n")
	for _, key := range keys {
		fmt.Fprintf(&sb, "        %s: %s\n", key, b.boxes[key])
	}
	sb.WriteString("    }\n)")
	return sb.String()
}
