// Package boundbox associates multidimensional validity regions —
// bounding boxes — with parametric models, and masks model evaluation
// outside those regions.
//
// 🚀 What is boundbox?
//
//	A pure-Go library for bounding-domain bookkeeping:
//		• Intervals: closed numeric ranges with containment tests & sampling
//		• Boxes: per-input interval maps with named access, ignorable
//		  dimensions and C/Fortran coordinate ordering
//		• Compound boxes: selector-keyed families of boxes with lazy,
//		  memoized construction of unseen regions
//		• One shared masking protocol: evaluate a model only on in-domain
//		  points, fill everything else with a caller-chosen sentinel
//		• Input fixing: bind inputs to constants and get back a
//		  consistently reduced bounding domain
//
// ✨ Why choose boundbox?
//
//   - Value semantics – boxes and intervals copy cheaply and never own
//     the model they describe
//   - Explicit errors – every misuse is a sentinel error, never a panic
//   - Pure Go – no cgo, no numeric dependencies
//   - Small surface – one interface (bound.Domain) carries the whole
//     evaluate-with-masking protocol
//
// Everything is organized under five subpackages:
//
//	core/     — the model contract & input-name resolution
//	interval/ — closed ranges, the ignored sentinel, domain sampling
//	bound/    — the Domain protocol, the concrete Box, Evaluate
//	selector/ — selector arguments & canonical selector keys
//	compound/ — selector-keyed collections of boxes
//
// Quick ASCII example:
//
//	    y
//	    2 ┤  ┌─────────┐          x ∈ [-1, 1]
//	      │  │ in      │          y ∈ [ 0, 2]
//	    0 ┤  └─────────┘
//	      └──┴─────────┴──── x    everything else → fill value
//	        -1         1
//
// Dive into the package docs for full examples; start with bound.Evaluate
// for the masking pipeline and compound.Box for selector dispatch.
//
//	go get github.com/katalvlaran/boundbox
package boundbox
