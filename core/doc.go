// Package core defines the model contract consumed by every bounding
// domain, plus canonical input-reference resolution.
//
// What:
//
//   - Model: the read-only view of a parametric model a bounding domain
//     needs — input count & names, output count, input-shape derivation,
//     declared output unit, opaque parameters.
//   - InputRef: a sealed name-or-index reference (Name / Index) with one
//     canonicalization point, ResolveInput, so heterogeneous keys never
//     leak into map lookups.
//   - StaticModel: the minimal concrete Model, enough to attach bounding
//     domains without any external model framework.
//
// Why:
//
//   - Bounding domains hold a back-reference to their model for name
//     resolution only; they never own, copy, or mutate it.
//   - A single resolution function keeps "x" vs 0 vs out-of-range errors
//     identical across every package.
//
// Errors:
//
//   - ErrUnknownInput: a name is not one of the model's inputs.
//   - ErrInputIndex: an integer reference is negative or ≥ NInputs.
//   - ErrShapeMismatch: evaluation columns disagree on length.
package core
