// Package selector describes which model inputs act as discrete
// selectors for a compound bounding box, and the canonical keys those
// selectors produce.
//
// What:
//
//   - Argument: one selector input — its resolved index and whether the
//     input is excluded (ignored) from the child boxes' own dimensions
//     once it has been consumed for selection.
//   - Arguments: an ordered, immutable set of Argument plus keptIgnore
//     bookkeeping for arguments that were reduced away and must stay
//     excluded from the active dimension set.
//   - Key: the comparable canonical form of a selector-value tuple, used
//     as the lookup key of a compound bounding box. Scalars and
//     one-element columns collapse to the same component, so a model
//     called with x=5 and with x=[5] selects the same region.
//
// Reduction:
//
//   - Reduce removes an argument when its input gets bound to a constant,
//     recording the index in keptIgnore; AddIgnore records a non-selector
//     input fixed out from under every child box.
//
// Errors:
//
//   - ErrNoArguments, ErrRepeatedInput: set-level validation.
//   - ErrNotArgument: a reference that names no active argument.
//   - ErrIgnoreArgument: ignoring an input that is an active argument.
//   - ErrFixedValue: a fixed-values mapping missing an argument's entry.
package selector
