// File: compound/compound_test.go
package compound_test

import (
	"testing"

	"github.com/katalvlaran/boundbox/bound"
	"github.com/katalvlaran/boundbox/compound"
	"github.com/katalvlaran/boundbox/core"
	"github.com/katalvlaran/boundbox/interval"
	"github.com/katalvlaran/boundbox/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slitModel mirrors the usual multi-mode setup: a discrete slit_id input
// selecting which box applies to the spatial x input.
func slitModel() core.Model {
	return core.NewStaticModel([]string{"slit_id", "x"}, 1)
}

func slitSpecs() []selector.Spec {
	return []selector.Spec{selector.Of(core.Name("slit_id"))}
}

func validSlitBox(t *testing.T) *compound.Box {
	t.Helper()
	b, err := compound.Validate(slitModel(), map[selector.Key]bound.Spec{
		selector.KeyOf(1): bound.Single{-1, 1},
		selector.KeyOf(2): bound.Single{0, 2},
	}, slitSpecs())
	require.NoError(t, err)
	return b
}

func TestValidate(t *testing.T) {
	b := validSlitBox(t)

	require.Equal(t, 2, b.Len())
	require.Equal(t, bound.OrderC, b.Order())
	require.True(t, b.Contains(selector.KeyOf(1)))
	require.True(t, b.Contains(selector.KeyOf(2)))
	require.False(t, b.Contains(selector.KeyOf(3)))
	require.Nil(t, b.CreateSelectorFn())
	assert.Equal(t, []string{"slit_id"}, b.SelectorArgs().Names(b.Model()))
}

func TestValidate_ChildrenInheritIgnores(t *testing.T) {
	b := validSlitBox(t)

	// The selector input is excluded from every child's dimensions.
	child, err := b.Get(selector.KeyOf(1))
	require.NoError(t, err)
	require.Equal(t, []int{0}, child.Ignored())
	x, err := child.IntervalOf(core.Name("x"))
	require.NoError(t, err)
	require.Equal(t, interval.Interval{Lower: -1, Upper: 1}, x)
}

func TestValidate_Errors(t *testing.T) {
	m := slitModel()

	_, err := compound.Validate(m, nil, nil)
	require.ErrorIs(t, err, selector.ErrNoArguments)

	_, err = compound.Validate(m, map[selector.Key]bound.Spec{
		selector.KeyOf(1, 2): bound.Single{-1, 1},
	}, slitSpecs())
	require.ErrorIs(t, err, compound.ErrNotSelector)

	_, err = compound.Validate(m, map[selector.Key]bound.Spec{
		selector.KeyOf(1): bound.Sequence{{-1, 1}, {0, 2}},
	}, slitSpecs())
	require.ErrorIs(t, err, bound.ErrIntervalCount)

	_, err = compound.Validate(m, nil, slitSpecs(), compound.WithOrder("bad"))
	require.ErrorIs(t, err, bound.ErrOrder)
}

func TestSet_KeyArity(t *testing.T) {
	b := validSlitBox(t)

	err := b.Set(selector.KeyOf(4, 5), bound.Single{-1, 1})
	require.ErrorIs(t, err, compound.ErrNotSelector)
	assert.Contains(t, err.Error(), "(4, 5) ")

	require.NoError(t, b.Set(selector.KeyOf(4), bound.Single{-7, 7}))
	require.Equal(t, 3, b.Len())
}

func TestGet_MissingSelector(t *testing.T) {
	b := validSlitBox(t)

	_, err := b.Get(selector.KeyOf(3))
	require.ErrorIs(t, err, compound.ErrMissingSelector)
	assert.Contains(t, err.Error(), "no bounding box is defined for selector: (3)")
}

func TestGet_CreateSelectorMemoizes(t *testing.T) {
	calls := 0
	create := func(key selector.Key) (bound.Spec, error) {
		calls++
		return bound.Single{-15, 15}, nil
	}
	b, err := compound.Validate(slitModel(), map[selector.Key]bound.Spec{
		selector.KeyOf(1): bound.Single{-1, 1},
	}, slitSpecs(), compound.WithCreateSelector(create))
	require.NoError(t, err)
	require.NotNil(t, b.CreateSelectorFn())

	require.False(t, b.Contains(selector.KeyOf(7)))
	child, err := b.Get(selector.KeyOf(7))
	require.NoError(t, err)
	x, _ := child.IntervalOf(core.Name("x"))
	require.Equal(t, interval.Interval{Lower: -15, Upper: 15}, x)

	// The factory result is stored; repeat lookups reuse it.
	require.True(t, b.Contains(selector.KeyOf(7)))
	again, err := b.Get(selector.KeyOf(7))
	require.NoError(t, err)
	require.Same(t, child, again)
	require.Equal(t, 1, calls)

	// Stored keys never consult the factory.
	_, err = b.Get(selector.KeyOf(1))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestSelect(t *testing.T) {
	b := validSlitBox(t)

	child, err := b.Select([][]float64{{2}, {0.5}})
	require.NoError(t, err)
	x, _ := child.IntervalOf(core.Name("x"))
	require.Equal(t, interval.Interval{Lower: 0, Upper: 2}, x)

	_, err = b.Select([][]float64{{9}, {0.5}})
	require.ErrorIs(t, err, compound.ErrMissingSelector)
}

func TestPrepareInputs_DelegatesToSelectedChild(t *testing.T) {
	b := validSlitBox(t)

	// slit 1 bounds x to [-1, 1]; the slit value itself is unchecked.
	prepared, err := b.PrepareInputs(1, [][]float64{{1}, {0}})
	require.NoError(t, err)
	require.Equal(t, []int{0}, prepared.Index)
	require.Equal(t, [][]float64{{1}, {0}}, prepared.Inputs)

	prepared, err = b.PrepareInputs(1, [][]float64{{1}, {5}})
	require.NoError(t, err)
	require.True(t, prepared.AllOut)

	_, err = b.PrepareInputs(1, [][]float64{{9}, {0}})
	require.ErrorIs(t, err, compound.ErrMissingSelector)
}

func TestEvaluate_CompoundIsADomain(t *testing.T) {
	b := validSlitBox(t)

	ev := func(inputs [][]float64) ([][]float64, error) {
		out := make([]float64, len(inputs[1]))
		for i, x := range inputs[1] {
			out[i] = 10 * x
		}
		return [][]float64{out}, nil
	}
	// Scalar calls: the single slit value picks the box, and slit 2
	// bounds x to [0, 2].
	result, err := bound.Evaluate(b, ev, [][]float64{{2}, {1}}, bound.EvalOptions{Fill: -99})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{10}}, result.Outputs)

	result, err = bound.Evaluate(b, ev, [][]float64{{2}, {5}}, bound.EvalOptions{Fill: -99})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-99}}, result.Outputs)
}

func TestEqual(t *testing.T) {
	a := validSlitBox(t)
	b := validSlitBox(t)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	// A factory does not participate in identity.
	c, err := compound.Validate(slitModel(), map[selector.Key]bound.Spec{
		selector.KeyOf(1): bound.Single{-1, 1},
		selector.KeyOf(2): bound.Single{0, 2},
	}, slitSpecs(), compound.WithCreateSelector(func(selector.Key) (bound.Spec, error) {
		return bound.Single{0, 0}, nil
	}))
	require.NoError(t, err)
	require.True(t, a.Equal(c))

	require.NoError(t, b.Set(selector.KeyOf(2), bound.Single{0, 3}))
	require.False(t, a.Equal(b))

	d, err := compound.Validate(slitModel(), map[selector.Key]bound.Spec{
		selector.KeyOf(1): bound.Single{-1, 1},
	}, slitSpecs())
	require.NoError(t, err)
	require.False(t, a.Equal(d))
}

func TestCopy(t *testing.T) {
	a := validSlitBox(t)
	cp := a.Copy()
	require.True(t, a.Equal(cp))

	// Mutating the copy's children leaves the original alone.
	require.NoError(t, cp.Set(selector.KeyOf(1), bound.Single{-9, 9}))
	child, err := a.Get(selector.KeyOf(1))
	require.NoError(t, err)
	x, _ := child.IntervalOf(core.Name("x"))
	require.Equal(t, interval.Interval{Lower: -1, Upper: 1}, x)
	require.False(t, a.Equal(cp))
}

func TestCompoundString(t *testing.T) {
	b := validSlitBox(t)
	s := b.String()
	assert.Contains(t, s, "Argument(name='slit_id', ignore=true)")
	assert.Contains(t, s, "(1):")
	assert.Contains(t, s, "(2):")
}
