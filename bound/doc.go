// Package bound implements the bounding-domain protocol and its simple
// concrete form, the Box.
//
// What:
//
//   - Domain: the one capability every bounding domain supplies —
//     PrepareInputs, classifying evaluation points as inside or outside.
//   - Evaluate: the shared masking template built on that capability.
//     It short-circuits when nothing is valid, runs the evaluator on the
//     compact valid subset only, and scatters results back into
//     full-shape outputs around a fill sentinel.
//   - Box: a mapping from model-input index to interval.Interval with
//     named/indexed access, ignorable dimensions, C/Fortran tuple
//     ordering, domain sampling, and input fixing.
//
// Why:
//
//   - "Which points are valid" varies per domain shape; "scatter valid
//     results back and fill the rest" does not. Splitting the two lets
//     Box and compound.Box share one evaluation algorithm.
//
// Order conventions:
//
//   - OrderF (Fortran/mathematical): tuple position = declared input
//     position.
//   - OrderC (C/row-major): tuple position reversed, last declared input
//     varies fastest. The default.
//
// Errors:
//
//   - ErrOrder: an order other than "C" or "F".
//   - ErrIntervalCount: a bounds sequence whose length does not match the
//     non-ignored dimensionality.
//   - ErrDeleteIgnored: deleting a dimension that is already ignored.
//   - ErrEvaluatorShape: an evaluator returning the wrong output arity or
//     column length.
//   - ErrNotImplemented: PrepareInputs invoked on an Unimplemented base.
//   - ErrFixedByModel: calling a bounding domain as if it had adjustable
//     parameters of its own.
package bound
