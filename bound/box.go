// File: bound/box.go
package bound

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/boundbox/core"
	"github.com/katalvlaran/boundbox/interval"
)

// Box is a concrete bounding domain: a mapping from model-input index to
// interval.Interval, plus a set of ignored inputs excluded from tracking.
// Every existing input index is either tracked or ignored, never both;
// partial boxes (indices in neither set) are allowed during incremental
// construction and behave as unconstrained.
//
// A Box references its model for name resolution only: copying a Box
// copies intervals and ignored indices but re-attaches the same model,
// since models may embed their own boxes.
type Box struct {
	model     core.Model
	intervals map[int]interval.Interval
	ignored   []int
	order     Order
}

// options collects the optional construction knobs.
type options struct {
	order    Order
	orderSet bool
	ignored  []core.InputRef
}

// Option configures Box construction.
type Option func(*options)

// WithOrder sets the box's stored coordinate order.
func WithOrder(order Order) Option {
	return func(o *options) {
		o.order = order
		o.orderSet = true
	}
}

// WithIgnored marks the referenced inputs as ignored: no interval is ever
// tracked or checked for them.
func WithIgnored(refs ...core.InputRef) Option {
	return func(o *options) { o.ignored = append(o.ignored, refs...) }
}

// New builds an empty (partial) Box over model. Intervals are added
// afterwards via Set.
func New(model core.Model, opts ...Option) (*Box, error) {
	o := collectOptions(opts)
	order, err := ValidateOrder(o.order, DefaultOrder)
	if err != nil {
		return nil, err
	}
	ignored, err := core.ResolveInputs(model, o.ignored)
	if err != nil {
		return nil, err
	}
	sort.Ints(ignored)
	return &Box{
		model:     model,
		intervals: make(map[int]interval.Interval),
		ignored:   ignored,
		order:     order,
	}, nil
}

// Validate builds a fully specified Box over model from one of the
// accepted specification shapes (ByName, ByIndex, Sequence, Single, or an
// existing *Box for re-validation). Validation happens before any state
// is published: a failed Validate leaves nothing behind.
func Validate(model core.Model, spec Spec, opts ...Option) (*Box, error) {
	o := collectOptions(opts)
	if src, ok := spec.(*Box); ok && !o.orderSet {
		o.order = src.order
		o.orderSet = true
	}
	box, err := New(model, optionList(o)...)
	if err != nil {
		return nil, err
	}
	if spec != nil {
		if err := spec.build(box); err != nil {
			return nil, err
		}
	}
	return box, nil
}

func collectOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func optionList(o options) []Option {
	list := []Option{WithIgnored(o.ignored...)}
	if o.orderSet {
		list = append(list, WithOrder(o.order))
	}
	return list
}

// Spec is a sealed bounding-box specification: one of ByName, ByIndex,
// Sequence, Single, or an existing *Box.
type Spec interface {
	build(b *Box) error
}

// ByName specifies intervals keyed by declared input name.
type ByName map[string][2]float64

// ByIndex specifies intervals keyed by input position.
type ByIndex map[int][2]float64

// Sequence specifies intervals positionally over the non-ignored inputs,
// consumed per the box's order: OrderF in declaration order, OrderC
// reversed.
type Sequence [][2]float64

// Single specifies the interval of the one remaining non-ignored input.
type Single [2]float64

func (s ByName) build(b *Box) error {
	if err := checkCount(len(s), b); err != nil {
		return err
	}
	for name, pair := range s {
		if err := b.Set(core.Name(name), interval.New(pair[0], pair[1])); err != nil {
			return err
		}
	}
	return nil
}

func (s ByIndex) build(b *Box) error {
	if err := checkCount(len(s), b); err != nil {
		return err
	}
	for index, pair := range s {
		if err := b.Set(core.Index(index), interval.New(pair[0], pair[1])); err != nil {
			return err
		}
	}
	return nil
}

func (s Sequence) build(b *Box) error {
	if err := checkCount(len(s), b); err != nil {
		return err
	}
	positions := b.unconstrained()
	for k, index := range positions {
		pair := s[k]
		if b.order == OrderC {
			pair = s[len(s)-1-k]
		}
		if err := b.Set(core.Index(index), interval.New(pair[0], pair[1])); err != nil {
			return err
		}
	}
	return nil
}

func (s Single) build(b *Box) error {
	return Sequence{[2]float64(s)}.build(b)
}

func (src *Box) build(b *Box) error {
	for name, iv := range src.NamedIntervals() {
		if err := b.Set(core.Name(name), iv); err != nil {
			return err
		}
	}
	return nil
}

// checkCount verifies a specification covers the non-ignored inputs
// exactly.
func checkCount(found int, b *Box) error {
	expected := b.model.NInputs() - len(b.ignored)
	if found != expected {
		return fmt.Errorf("found %d intervals, but must have exactly %d: %w",
			found, expected, ErrIntervalCount)
	}
	return nil
}

// unconstrained lists the non-ignored input indices in declaration order.
func (b *Box) unconstrained() []int {
	positions := make([]int, 0, b.model.NInputs())
	for i := 0; i < b.model.NInputs(); i++ {
		if !b.isIgnored(i) {
			positions = append(positions, i)
		}
	}
	return positions
}

// Model is the owning model, referenced for name resolution only.
func (b *Box) Model() core.Model { return b.model }

// Order is the box's stored coordinate order.
func (b *Box) Order() Order { return b.order }

// Ignored lists the ignored input indices in ascending order.
func (b *Box) Ignored() []int { return append([]int(nil), b.ignored...) }

// IgnoredInputs lists the ignored input names in ascending index order.
func (b *Box) IgnoredInputs() []string {
	names := make([]string, 0, len(b.ignored))
	for _, index := range b.ignored {
		name, _ := core.InputName(b.model, index)
		names = append(names, name)
	}
	return names
}

// Intervals is a copy of the tracked index→interval mapping.
func (b *Box) Intervals() map[int]interval.Interval {
	intervals := make(map[int]interval.Interval, len(b.intervals))
	for index, iv := range b.intervals {
		intervals[index] = iv
	}
	return intervals
}

// NamedIntervals is the tracked mapping keyed by declared input name.
func (b *Box) NamedIntervals() map[string]interval.Interval {
	named := make(map[string]interval.Interval, len(b.intervals))
	for index, iv := range b.intervals {
		name, _ := core.InputName(b.model, index)
		named[name] = iv
	}
	return named
}

// Len reports the number of tracked dimensions.
func (b *Box) Len() int { return len(b.intervals) }

// Dimension reports the number of tracked dimensions.
func (b *Box) Dimension() int { return len(b.intervals) }

// Contains reports whether ref names any existing input of the model,
// tracked or ignored. Only references to inputs that do not exist are
// outside the box's vocabulary.
func (b *Box) Contains(ref core.InputRef) bool {
	_, err := core.ResolveInput(b.model, ref)
	return err == nil
}

// IntervalOf resolves ref and returns its tracked interval. Ignored and
// not-yet-specified inputs return the interval.Ignored sentinel rather
// than failing; only references to nonexistent inputs error.
func (b *Box) IntervalOf(ref core.InputRef) (interval.Interval, error) {
	index, err := core.ResolveInput(b.model, ref)
	if err != nil {
		return interval.Interval{}, err
	}
	if iv, ok := b.intervals[index]; ok {
		return iv, nil
	}
	return interval.Ignored, nil
}

// Set validates ref, moves the input out of the ignored set if present,
// and tracks iv for it. Prior state is untouched on failure.
func (b *Box) Set(ref core.InputRef, iv interval.Interval) error {
	index, err := core.ResolveInput(b.model, ref)
	if err != nil {
		return err
	}
	b.unignore(index)
	b.intervals[index] = iv
	return nil
}

// SetBounds is shorthand for Set with a freshly constructed interval.
func (b *Box) SetBounds(ref core.InputRef, lower, upper float64) error {
	return b.Set(ref, interval.New(lower, upper))
}

// Delete moves the referenced input into the ignored set, discarding its
// interval. Deleting an input that is already ignored fails with
// ErrDeleteIgnored.
func (b *Box) Delete(ref core.InputRef) error {
	index, err := core.ResolveInput(b.model, ref)
	if err != nil {
		return err
	}
	if b.isIgnored(index) {
		return fmt.Errorf("%s: %w", ref, ErrDeleteIgnored)
	}
	delete(b.intervals, index)
	b.ignored = append(b.ignored, index)
	sort.Ints(b.ignored)
	return nil
}

// Bounds is the order-adjusted tuple view of the tracked intervals:
// OrderF in declaration order, OrderC reversed. An empty order falls back
// to the box's stored order. Zero tracked dimensions yield the single
// ignored-sentinel pair.
func (b *Box) Bounds(order Order) ([][2]float64, error) {
	resolved, err := ValidateOrder(order, b.order)
	if err != nil {
		return nil, err
	}
	indices := b.trackedIndices()
	if len(indices) == 0 {
		return [][2]float64{{interval.Ignored.Lower, interval.Ignored.Upper}}, nil
	}
	bounds := make([][2]float64, 0, len(indices))
	for _, index := range indices {
		iv := b.intervals[index]
		bounds = append(bounds, [2]float64{iv.Lower, iv.Upper})
	}
	if resolved == OrderC {
		reversePairs(bounds)
	}
	return bounds, nil
}

// Domain samples every tracked dimension at the given resolution,
// returning one sample per dimension in the requested order.
func (b *Box) Domain(resolution float64, order Order) ([][]float64, error) {
	resolved, err := ValidateOrder(order, b.order)
	if err != nil {
		return nil, err
	}
	indices := b.trackedIndices()
	samples := make([][]float64, 0, len(indices))
	for _, index := range indices {
		sample, err := b.intervals[index].Domain(resolution)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	if resolved == OrderC {
		reverseColumns(samples)
	}
	return samples, nil
}

// Equal reports whether two boxes track the same intervals and ignore the
// same inputs. The stored order flag is presentation, not identity: a C
// box equals the F box over the same logical intervals.
func (b *Box) Equal(other *Box) bool {
	if other == nil || len(b.intervals) != len(other.intervals) {
		return false
	}
	for index, iv := range b.intervals {
		if other.intervals[index] != iv {
			return false
		}
	}
	return equalIntSets(b.ignored, other.ignored)
}

// EqualBounds reports whether the box's order-adjusted bounds match the
// raw pair sequence. Any order error reports not-equal rather than
// failing, so raw comparisons never raise.
func (b *Box) EqualBounds(pairs [][2]float64, order Order) bool {
	bounds, err := b.Bounds(order)
	if err != nil || len(bounds) != len(pairs) {
		return false
	}
	for i, pair := range pairs {
		if bounds[i] != pair {
			return false
		}
	}
	return true
}

// PrepareInputs classifies points against every tracked interval: a point
// is outside the box when it is outside any tracked dimension. It returns
// the compact valid-only columns (one per model input), the original
// positions of the valid points, and AllOut when nothing survives.
func (b *Box) PrepareInputs(shape int, inputs [][]float64) (Prepared, error) {
	if len(inputs) != b.model.NInputs() {
		return Prepared{}, fmt.Errorf("expected %d input columns, got %d: %w",
			b.model.NInputs(), len(inputs), core.ErrShapeMismatch)
	}
	outside := make([]bool, shape)
	for index, iv := range b.intervals {
		column := inputs[index]
		if len(column) != shape {
			return Prepared{}, fmt.Errorf("input %d has %d values, expected %d: %w",
				index, len(column), shape, core.ErrShapeMismatch)
		}
		for i, out := range iv.Outside(column) {
			outside[i] = outside[i] || out
		}
	}

	validIndex := make([]int, 0, shape)
	for i, out := range outside {
		if !out {
			validIndex = append(validIndex, i)
		}
	}
	if len(validIndex) == 0 {
		return Prepared{Index: validIndex, AllOut: true}, nil
	}

	validInputs := make([][]float64, len(inputs))
	for c, column := range inputs {
		compact := make([]float64, 0, len(validIndex))
		for _, i := range validIndex {
			compact = append(compact, column[i])
		}
		validInputs[c] = compact
	}
	return Prepared{Inputs: validInputs, Index: validIndex}, nil
}

// FixInputs produces a new Box over newModel with the fixed dimensions
// dropped. Surviving intervals are re-resolved by name against newModel,
// so their positions shift correctly when the input list shrinks. With
// keepIgnored, previously ignored inputs stay ignored in the result
// (including the just-fixed ones); otherwise they are dropped entirely.
func (b *Box) FixInputs(newModel core.Model, fixed []core.InputRef, keepIgnored bool) (*Box, error) {
	cp := b.Copy()
	for _, ref := range fixed {
		if err := cp.Delete(ref); err != nil {
			return nil, err
		}
	}
	opts := []Option{WithOrder(cp.order)}
	if keepIgnored {
		for _, name := range cp.IgnoredInputs() {
			opts = append(opts, WithIgnored(core.Name(name)))
		}
	}
	return Validate(newModel, cp, opts...)
}

// Copy deep-copies intervals and ignored indices; the model reference is
// shared, never cloned.
func (b *Box) Copy() *Box {
	cp := &Box{
		model:     b.model,
		intervals: make(map[int]interval.Interval, len(b.intervals)),
		ignored:   append([]int(nil), b.ignored...),
		order:     b.order,
	}
	for index, iv := range b.intervals {
		cp.intervals[index] = iv
	}
	return cp
}

// String renders the box with named intervals in declaration order.
func (b *Box) String() string {
	var sb strings.Builder
	sb.WriteString("Box(\n    intervals={\n")
	for _, index := range b.trackedIndices() {
		name, _ := core.InputName(b.model, index)
		fmt.Fprintf(&sb, "        %s: %s\n", name, b.intervals[index])
	}
	sb.WriteString("    }\n")
	if len(b.ignored) > 0 {
		fmt.Fprintf(&sb, "    ignored=%v\n", b.IgnoredInputs())
	}
	fmt.Fprintf(&sb, "    order='%s'\n)", string(b.order))
	return sb.String()
}

func (b *Box) isIgnored(index int) bool {
	for _, ignored := range b.ignored {
		if ignored == index {
			return true
		}
	}
	return false
}

func (b *Box) unignore(index int) {
	for i, ignored := range b.ignored {
		if ignored == index {
			b.ignored = append(b.ignored[:i], b.ignored[i+1:]...)
			return
		}
	}
}

// trackedIndices lists the tracked input indices in declaration order.
func (b *Box) trackedIndices() []int {
	indices := make([]int, 0, len(b.intervals))
	for index := range b.intervals {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

func reversePairs(pairs [][2]float64) {
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
}

func reverseColumns(columns [][]float64) {
	for l, r := 0, len(columns)-1; l < r; l, r = l+1, r-1 {
		columns[l], columns[r] = columns[r], columns[l]
	}
}

func equalIntSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			return false
		}
	}
	return true
}
