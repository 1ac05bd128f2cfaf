// File: selector/argument_test.go
package selector_test

import (
	"testing"

	"github.com/katalvlaran/boundbox/core"
	"github.com/katalvlaran/boundbox/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeInputModel() core.Model {
	return core.NewStaticModel([]string{"slit_id", "x", "y"}, 1)
}

func TestValidateArgument(t *testing.T) {
	m := threeInputModel()

	arg, err := selector.ValidateArgument(m, selector.Of(core.Name("slit_id")))
	require.NoError(t, err)
	assert.Equal(t, selector.Argument{Index: 0, Ignore: true}, arg)
	assert.Equal(t, "slit_id", arg.Name(m))

	arg, err = selector.ValidateArgument(m, selector.Spec{Ref: core.Index(1), Ignore: false})
	require.NoError(t, err)
	assert.Equal(t, selector.Argument{Index: 1, Ignore: false}, arg)

	_, err = selector.ValidateArgument(m, selector.Of(core.Name("nope")))
	require.ErrorIs(t, err, core.ErrUnknownInput)
}

func TestArgument_Describe(t *testing.T) {
	m := threeInputModel()
	arg, err := selector.ValidateArgument(m, selector.Of(core.Name("slit_id")))
	require.NoError(t, err)
	assert.Equal(t, "Argument(name='slit_id', ignore=true)", arg.Describe(m))
}

func TestArgument_Component(t *testing.T) {
	m := threeInputModel()
	arg, err := selector.ValidateArgument(m, selector.Of(core.Name("x")))
	require.NoError(t, err)

	component, err := arg.Component([][]float64{{5}, {1, 2}, {0, 0}})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, component)

	// Missing or empty columns fail.
	_, err = arg.Component([][]float64{{5}})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
	_, err = arg.Component([][]float64{{5}, {}, {0}})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestArgument_FixedValue(t *testing.T) {
	m := threeInputModel()
	arg, err := selector.ValidateArgument(m, selector.Of(core.Name("slit_id")))
	require.NoError(t, err)

	// Index key and name key both resolve.
	v, err := arg.FixedValue(m, map[core.InputRef]float64{core.Index(0): 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	v, err = arg.FixedValue(m, map[core.InputRef]float64{core.Name("slit_id"): 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = arg.FixedValue(m, map[core.InputRef]float64{core.Name("x"): 1})
	require.ErrorIs(t, err, selector.ErrFixedValue)
}

func TestArgument_IsArgument(t *testing.T) {
	m := threeInputModel()
	arg, err := selector.ValidateArgument(m, selector.Of(core.Name("x")))
	require.NoError(t, err)

	is, err := arg.IsArgument(m, core.Name("x"))
	require.NoError(t, err)
	assert.True(t, is)
	is, err = arg.IsArgument(m, core.Index(1))
	require.NoError(t, err)
	assert.True(t, is)
	is, err = arg.IsArgument(m, core.Name("y"))
	require.NoError(t, err)
	assert.False(t, is)
	_, err = arg.IsArgument(m, core.Name("nope"))
	require.ErrorIs(t, err, core.ErrUnknownInput)
}

func TestValidateArguments(t *testing.T) {
	m := threeInputModel()

	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
		{Ref: core.Name("x"), Ignore: false},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, args.Len())
	assert.Equal(t, selector.Argument{Index: 0, Ignore: true}, args.At(0))
	assert.Equal(t, selector.Argument{Index: 1, Ignore: false}, args.At(1))
	assert.Equal(t, []string{"slit_id", "x"}, args.Names(m))

	// Empty argument lists are rejected.
	_, err = selector.Validate(m, nil, nil)
	require.ErrorIs(t, err, selector.ErrNoArguments)

	// The same input twice, even via mixed references.
	_, err = selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("x")),
		selector.Of(core.Index(1)),
	}, nil)
	require.ErrorIs(t, err, selector.ErrRepeatedInput)
	_, err = selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("x")),
		selector.Of(core.Index(1)),
	}, nil)
	assert.Contains(t, err.Error(), "input 'x' has been repeated")
}

func TestArguments_Ignore(t *testing.T) {
	m := threeInputModel()
	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
		{Ref: core.Name("x"), Ignore: false},
	}, []int{2})
	require.NoError(t, err)

	// Ignore-true argument indices plus the kept bookkeeping.
	assert.Equal(t, []int{0, 2}, args.Ignore())
	assert.Equal(t, []int{2}, args.KeptIgnore())
}

func TestArguments_Key(t *testing.T) {
	m := threeInputModel()
	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
		selector.Of(core.Name("x")),
	}, nil)
	require.NoError(t, err)

	key, err := args.Key([][]float64{{5}, {2}, {0}})
	require.NoError(t, err)
	assert.Equal(t, selector.KeyOf(5, 2), key)
	assert.True(t, args.IsSelector(key))
	assert.False(t, args.IsSelector(selector.KeyOf(5)))

	_, err = args.Key([][]float64{{5}})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestArguments_FixedValues(t *testing.T) {
	m := threeInputModel()
	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
		selector.Of(core.Name("x")),
	}, nil)
	require.NoError(t, err)

	key, err := args.FixedValues(m, map[core.InputRef]float64{
		core.Name("slit_id"): 4,
		core.Index(1):        9,
	})
	require.NoError(t, err)
	assert.Equal(t, selector.KeyOf(4, 9), key)

	_, err = args.FixedValues(m, map[core.InputRef]float64{core.Name("slit_id"): 4})
	require.ErrorIs(t, err, selector.ErrFixedValue)
}

func TestArguments_SelectorIndex(t *testing.T) {
	m := threeInputModel()
	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("x")),
		selector.Of(core.Name("slit_id")),
	}, nil)
	require.NoError(t, err)

	i, err := args.SelectorIndex(m, core.Name("slit_id"))
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	i, err = args.SelectorIndex(m, core.Index(1))
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = args.SelectorIndex(m, core.Name("y"))
	require.ErrorIs(t, err, selector.ErrNotArgument)
}

func TestArguments_Reduce(t *testing.T) {
	m := threeInputModel()
	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
		selector.Of(core.Name("x")),
	}, nil)
	require.NoError(t, err)

	reduced, err := args.Reduce(m, core.Name("slit_id"))
	require.NoError(t, err)
	require.Equal(t, 1, reduced.Len())
	assert.Equal(t, []string{"x"}, reduced.Names(m))
	// The removed input stays excluded via keptIgnore.
	assert.Equal(t, []int{0}, reduced.KeptIgnore())
	assert.Equal(t, []int{1, 0}, reduced.Ignore())

	// Reducing the last argument is allowed; zero-argument sets only fail
	// fresh validation.
	final, err := reduced.Reduce(m, core.Name("x"))
	require.NoError(t, err)
	assert.Equal(t, 0, final.Len())
	assert.Equal(t, []int{0, 1}, final.KeptIgnore())

	// The receiver is untouched.
	require.Equal(t, 2, args.Len())
	require.Empty(t, args.KeptIgnore())

	_, err = args.Reduce(m, core.Name("y"))
	require.ErrorIs(t, err, selector.ErrNotArgument)
}

func TestArguments_AddIgnore(t *testing.T) {
	m := threeInputModel()
	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
	}, nil)
	require.NoError(t, err)

	widened, err := args.AddIgnore(m, core.Name("y"))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, widened.KeptIgnore())
	require.Empty(t, args.KeptIgnore())

	// Active selector arguments cannot be ignored.
	_, err = args.AddIgnore(m, core.Name("slit_id"))
	require.ErrorIs(t, err, selector.ErrIgnoreArgument)
	assert.Contains(t, err.Error(), "slit_id: ")
}

func TestArguments_IsArgument(t *testing.T) {
	m := threeInputModel()
	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
	}, nil)
	require.NoError(t, err)

	is, err := args.IsArgument(m, core.Name("slit_id"))
	require.NoError(t, err)
	assert.True(t, is)
	is, err = args.IsArgument(m, core.Name("x"))
	require.NoError(t, err)
	assert.False(t, is)
}

func TestArguments_Equal(t *testing.T) {
	m := threeInputModel()
	specs := []selector.Spec{selector.Of(core.Name("slit_id"))}

	a, err := selector.Validate(m, specs, nil)
	require.NoError(t, err)
	b, err := selector.Validate(m, specs, []int{2})
	require.NoError(t, err)

	// keptIgnore is bookkeeping, not identity.
	assert.True(t, a.Equal(b))

	c, err := selector.Validate(m, []selector.Spec{
		{Ref: core.Name("slit_id"), Ignore: false},
	}, nil)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	d, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
		selector.Of(core.Name("x")),
	}, nil)
	require.NoError(t, err)
	assert.False(t, a.Equal(d))
}

func TestArguments_Describe(t *testing.T) {
	m := threeInputModel()
	args, err := selector.Validate(m, []selector.Spec{
		selector.Of(core.Name("slit_id")),
		{Ref: core.Name("x"), Ignore: false},
	}, nil)
	require.NoError(t, err)

	s := args.Describe(m)
	assert.Contains(t, s, "Argument(name='slit_id', ignore=true)")
	assert.Contains(t, s, "Argument(name='x', ignore=false)")
}
