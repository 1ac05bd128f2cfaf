// Package compound implements selector-keyed collections of bounding
// boxes: one bound.Box per discrete configuration of a model, chosen at
// evaluation time by reading the values of designated selector inputs.
//
// What
//
//   - Box — a mapping from selector.Key to *bound.Box, plus the
//     selector.Arguments describing which model inputs form the key.
//   - CreateSelector — an optional factory producing a bounding-box
//     specification for keys never seen before; results are memoized.
//   - Fixing operations — MatchingBoxes, FixInputSelectorArg,
//     FixInputBBoxArg and FixInputs, which specialize a compound box when
//     some of its inputs are pinned to constants. Fixing the last
//     selector argument collapses the compound into a plain bound.Box.
//
// Why
//
// A single rectangular region cannot describe a model whose valid domain
// depends on a discrete mode input (a slit id, an order number, a chip
// index). Keying whole boxes by the mode values keeps each region simple
// while the collection stays a bound.Domain: Select picks the right child
// and the usual prepare/evaluate pipeline applies unchanged.
//
// Errors
//
//   - ErrNotSelector     — a key's arity does not match the arguments.
//   - ErrMissingSelector — lookup of an unknown key with no factory.
//   - ErrNoMatchingBox   — fixing a selector value no stored key matches.
//
// All failures wrap one of the sentinels above or an error from the
// core, interval, bound or selector packages; errors.Is works throughout.
package compound
