// File: bound/domain.go
package bound

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/boundbox/core"
)

// Sentinel errors for the bounding-domain protocol.
var (
	// ErrOrder indicates an order value other than "C" or "F".
	ErrOrder = errors.New("bound: invalid order")
	// ErrIntervalCount indicates a bounds sequence of the wrong length.
	ErrIntervalCount = errors.New("bound: wrong number of intervals")
	// ErrDeleteIgnored indicates deleting an already-ignored dimension.
	ErrDeleteIgnored = errors.New("bound: cannot delete ignored input")
	// ErrEvaluatorShape indicates evaluator output of the wrong shape.
	ErrEvaluatorShape = errors.New("bound: evaluator output does not match the model contract")
	// ErrNotImplemented indicates the base domain's missing classification.
	ErrNotImplemented = errors.New("bound: prepare inputs has not been implemented for this domain")
	// ErrFixedByModel indicates calling a domain with adjustable-parameter
	// style arguments; a bounding domain is fixed by its model and has none.
	ErrFixedByModel = errors.New("bound: this bounding box is fixed by the model and does not have adjustable parameters")
)

// Prepared is the result of classifying evaluation points against a
// domain: the compact valid-only columns, the positions those columns
// came from, and whether every point fell outside.
type Prepared struct {
	// Inputs holds one column per model input, restricted to valid points.
	Inputs [][]float64
	// Index lists the original positions of the valid points.
	Index []int
	// AllOut reports that no point was inside the domain.
	AllOut bool
}

// Domain is a bounding domain: a region of input space outside which a
// model's output is defined to be a fill value. Concrete domains supply
// only the classification step; the evaluation algorithm is shared (see
// Evaluate).
type Domain interface {
	// Model is the owning model, referenced for name resolution only.
	Model() core.Model
	// PrepareInputs classifies the points of the given columns,
	// returning the valid subset, its positions, and the all-out flag.
	PrepareInputs(shape int, inputs [][]float64) (Prepared, error)
}

// Unimplemented is a Domain with no validity logic of its own. Embedding
// it marks a type as a bounding domain whose classification must be
// supplied elsewhere; calling PrepareInputs on it fails with
// ErrNotImplemented.
type Unimplemented struct{}

// PrepareInputs always fails with ErrNotImplemented.
func (Unimplemented) PrepareInputs(int, [][]float64) (Prepared, error) {
	return Prepared{}, ErrNotImplemented
}

// Call rejects model-style invocation of a bounding domain. A domain is
// fixed by its model and carries no adjustable parameters of its own;
// evaluation goes through Evaluate.
func Call(Domain, ...float64) (Result, error) {
	return Result{}, ErrFixedByModel
}

// Evaluator evaluates the wrapped model on compact valid-only columns,
// returning one output column per model output.
type Evaluator func(inputs [][]float64) ([][]float64, error)

// EvalOptions configures Evaluate.
//
// Fields:
//   - Fill      — the sentinel written at out-of-domain positions; 0, NaN,
//     or any caller-chosen value.
//   - WithUnits — attach the model's declared output unit to the result.
type EvalOptions struct {
	Fill      float64
	WithUnits bool
}

// DefaultEvalOptions returns the default evaluation options: NaN fill,
// no units.
func DefaultEvalOptions() EvalOptions {
	return EvalOptions{Fill: math.NaN()}
}

// Result is a masked evaluation: one full-shape column per model output,
// plus the attached unit ("" when units were not requested, the model is
// unitless, or the output is degenerate all-fill).
type Result struct {
	Outputs [][]float64
	Unit    string
}

// Evaluate runs the generic evaluate-with-masking algorithm for any
// Domain:
//
//  1. derive the input shape from the model,
//  2. classify points via d.PrepareInputs,
//  3. if everything is out, produce all-fill outputs without invoking the
//     evaluator at all,
//  4. otherwise invoke the evaluator on the valid subset only,
//  5. scatter the compact outputs back to full shape around opts.Fill,
//  6. attach the model's output unit when requested and the result is
//     non-degenerate.
func Evaluate(d Domain, ev Evaluator, inputs [][]float64, opts EvalOptions) (Result, error) {
	model := d.Model()
	shape, err := model.InputShape(inputs)
	if err != nil {
		return Result{}, err
	}
	prepared, err := d.PrepareInputs(shape, inputs)
	if err != nil {
		return Result{}, err
	}
	if prepared.AllOut {
		return Result{Outputs: allOutOutputs(model.NOutputs(), shape, opts.Fill)}, nil
	}

	validOutputs, err := ev(prepared.Inputs)
	if err != nil {
		return Result{}, err
	}
	outputs, err := prepareOutputs(model, validOutputs, prepared.Index, shape, opts.Fill)
	if err != nil {
		return Result{}, err
	}

	result := Result{Outputs: outputs}
	if opts.WithUnits {
		result.Unit = model.OutputUnit()
	}
	return result, nil
}

// allOutOutputs builds nOutputs full-shape columns holding only fill.
func allOutOutputs(nOutputs, shape int, fill float64) [][]float64 {
	outputs := make([][]float64, nOutputs)
	for i := range outputs {
		outputs[i] = baseOutput(shape, fill)
	}
	return outputs
}

// baseOutput builds one full-shape column holding only fill.
func baseOutput(shape int, fill float64) []float64 {
	column := make([]float64, shape)
	for i := range column {
		column[i] = fill
	}
	return column
}

// prepareOutputs scatters compact valid outputs back into full-shape
// columns, filling every position not named by validIndex.
func prepareOutputs(m core.Model, validOutputs [][]float64, validIndex []int, shape int, fill float64) ([][]float64, error) {
	if len(validOutputs) != m.NOutputs() {
		return nil, fmt.Errorf("got %d output columns, expected %d: %w",
			len(validOutputs), m.NOutputs(), ErrEvaluatorShape)
	}
	outputs := make([][]float64, len(validOutputs))
	for i, valid := range validOutputs {
		if len(valid) != len(validIndex) {
			return nil, fmt.Errorf("output %d has %d values, expected %d: %w",
				i, len(valid), len(validIndex), ErrEvaluatorShape)
		}
		column := baseOutput(shape, fill)
		for j, position := range validIndex {
			column[position] = valid[j]
		}
		outputs[i] = column
	}
	return outputs, nil
}
