// File: core/model.go
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for model and input resolution.
var (
	// ErrUnknownInput indicates a name reference that is not a model input.
	ErrUnknownInput = errors.New("core: name is not one of the model inputs")
	// ErrInputIndex indicates an integer reference outside [0, NInputs).
	ErrInputIndex = errors.New("core: integer key must be non-negative and < the number of inputs")
	// ErrShapeMismatch indicates evaluation columns of differing lengths.
	ErrShapeMismatch = errors.New("core: all input columns must have the same length")
)

// Model is the read-only contract a bounding domain consumes. Inputs are
// passed around as columns: inputs[i] holds one value per evaluated point
// for model input i, and a scalar call is a set of length-1 columns.
type Model interface {
	// NInputs reports the number of declared inputs.
	NInputs() int
	// Inputs lists the declared input names in order.
	Inputs() []string
	// NOutputs reports the number of outputs an evaluation produces.
	NOutputs() int
	// InputShape derives the common column length from raw call inputs.
	InputShape(inputs [][]float64) (int, error)
	// OutputUnit is the model's declared output unit, "" when unitless.
	OutputUnit() string
	// Parameters exposes the model's parameter values. Bounding domains
	// treat them as opaque; they exist for comparison and copying only.
	Parameters() []float64
}

// CommonShape validates that inputs supplies exactly one column per model
// input and that all columns share one length, and returns that length.
// It is the canonical InputShape implementation.
func CommonShape(m Model, inputs [][]float64) (int, error) {
	if len(inputs) != m.NInputs() {
		return 0, fmt.Errorf("expected %d input columns, got %d: %w",
			m.NInputs(), len(inputs), ErrShapeMismatch)
	}
	if len(inputs) == 0 {
		return 0, nil
	}
	shape := len(inputs[0])
	for i, column := range inputs {
		if len(column) != shape {
			return 0, fmt.Errorf("input %q has %d values, expected %d: %w",
				m.Inputs()[i], len(column), shape, ErrShapeMismatch)
		}
	}
	return shape, nil
}

// StaticModel is the minimal concrete Model: fixed input names, a fixed
// output count, and optional unit and parameters. It carries no evaluation
// logic of its own; evaluation is always supplied separately (see
// bound.Evaluator).
type StaticModel struct {
	inputs     []string
	nOutputs   int
	outputUnit string
	parameters []float64
}

// NewStaticModel builds a StaticModel over the given input names producing
// nOutputs outputs.
func NewStaticModel(inputs []string, nOutputs int) *StaticModel {
	return &StaticModel{inputs: append([]string(nil), inputs...), nOutputs: nOutputs}
}

// WithOutputUnit sets the declared output unit and returns the model.
func (m *StaticModel) WithOutputUnit(unit string) *StaticModel {
	m.outputUnit = unit
	return m
}

// WithParameters sets the opaque parameter values and returns the model.
func (m *StaticModel) WithParameters(parameters ...float64) *StaticModel {
	m.parameters = append([]float64(nil), parameters...)
	return m
}

// NInputs reports the number of declared inputs.
func (m *StaticModel) NInputs() int { return len(m.inputs) }

// Inputs lists the declared input names in order.
func (m *StaticModel) Inputs() []string { return append([]string(nil), m.inputs...) }

// NOutputs reports the number of outputs an evaluation produces.
func (m *StaticModel) NOutputs() int { return m.nOutputs }

// InputShape derives the common column length via CommonShape.
func (m *StaticModel) InputShape(inputs [][]float64) (int, error) {
	return CommonShape(m, inputs)
}

// OutputUnit is the declared output unit, "" when unitless.
func (m *StaticModel) OutputUnit() string { return m.outputUnit }

// Parameters exposes the opaque parameter values.
func (m *StaticModel) Parameters() []float64 { return append([]float64(nil), m.parameters...) }
