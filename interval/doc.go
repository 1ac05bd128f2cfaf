// Package interval implements the closed numeric range underlying every
// bounding box dimension.
//
// What:
//
//   - Interval: an immutable [Lower, Upper] pair with elementwise
//     containment testing (Outside) and uniform sampling (Domain).
//   - Ignored: the (-Inf, +Inf) sentinel returned for dimensions a box
//     does not constrain — nothing is ever outside it.
//   - Validate / ValidateNested: normalize raw bound sequences into an
//     Interval, rejecting anything that is not exactly two bounds.
//
// Why:
//
//   - Reversed bounds (Upper < Lower) are a warning, not an error: an
//     intentionally empty or reversed domain is the caller's prerogative,
//     and Outside stays well-defined either way.
//
// Complexity: all operations are O(1) or O(len(input)); Domain allocates
// its sample slice and nothing else.
//
// Errors:
//
//   - ErrIntervalShape: bounds cannot be read as exactly two values.
//   - ErrResolution: a non-positive sampling resolution.
package interval
