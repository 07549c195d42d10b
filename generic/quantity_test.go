package generic_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/measure-engine/generic"
	"github.com/warp/measure-engine/length"
	"github.com/warp/measure-engine/temperature"
	"github.com/warp/measure-engine/volume"
	"github.com/warp/measure-engine/weight"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

const tolerance = 1e-5

func ft(v float64) generic.Quantity[length.Unit]    { return generic.MustNew(v, length.Feet) }
func in(v float64) generic.Quantity[length.Unit]    { return generic.MustNew(v, length.Inch) }
func yd(v float64) generic.Quantity[length.Unit]    { return generic.MustNew(v, length.Yards) }
func cm(v float64) generic.Quantity[length.Unit]    { return generic.MustNew(v, length.Centimeters) }
func litre(v float64) generic.Quantity[volume.Unit] { return generic.MustNew(v, volume.Litre) }
func ml(v float64) generic.Quantity[volume.Unit]    { return generic.MustNew(v, volume.Millilitre) }
func kg(v float64) generic.Quantity[weight.Unit]    { return generic.MustNew(v, weight.Kilogram) }
func grams(v float64) generic.Quantity[weight.Unit] { return generic.MustNew(v, weight.Gram) }

func celsius(v float64) generic.Quantity[temperature.Unit] {
	return generic.MustNew(v, temperature.Celsius)
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNew_RejectsMissingUnit(t *testing.T) {
	_, err := generic.New(1.0, length.Unit(0))
	require.ErrorIs(t, err, generic.ErrNilUnit)
	assert.True(t, generic.IsInvalidArgument(err))

	_, err = generic.New[generic.Unit](1.0, nil)
	require.ErrorIs(t, err, generic.ErrNilUnit)
}

func TestNew_RejectsNonFiniteValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := generic.New(v, length.Feet)
		require.ErrorIs(t, err, generic.ErrInvalidValue)
		require.ErrorIs(t, err, generic.ErrInvalidArgument)

		var invalid *generic.InvalidValueError
		require.True(t, errors.As(err, &invalid))
	}
}

func TestNew_RejectsUndeclaredUnit(t *testing.T) {
	_, err := generic.New(1.0, length.Unit(42))
	require.ErrorIs(t, err, generic.ErrInvalidUnit)
	assert.True(t, generic.IsInvalidArgument(err))

	_, err = generic.New(20.0, temperature.Unit(7))
	require.ErrorIs(t, err, generic.ErrInvalidUnit)

	_, err = ft(1).ConvertTo(length.Unit(42))
	require.ErrorIs(t, err, generic.ErrInvalidUnit)

	_, err = ft(1).AddIn(ft(2), length.Unit(42))
	require.ErrorIs(t, err, generic.ErrInvalidUnit)
}

func TestNew_RejectsBaseOverflow(t *testing.T) {
	_, err := generic.New(math.MaxFloat64, length.Yards)
	require.ErrorIs(t, err, generic.ErrInvalidValue)

	var invalid *generic.InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, math.MaxFloat64, invalid.Value)
}

func TestNew_Accessors(t *testing.T) {
	q, err := generic.New(-2.5, weight.Gram)
	require.NoError(t, err)

	assert.Equal(t, -2.5, q.Value())
	assert.Equal(t, weight.Gram, q.Unit())
	assert.Equal(t, weight.Category, q.Category())
	assert.True(t, q.Valid())
	assert.InDelta(t, -0.0025, q.BaseValue(), 1e-12)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { generic.MustNew(math.NaN(), length.Feet) })
}

func TestZeroQuantity_IsInvalid(t *testing.T) {
	var q generic.Quantity[length.Unit]
	assert.False(t, q.Valid())
	assert.Equal(t, generic.Category(""), q.Category())
	assert.Equal(t, "Quantity(<nil>)", q.String())
}

// =============================================================================
// EQUALITY
// =============================================================================

func TestEqual_CrossUnit(t *testing.T) {
	tests := []struct {
		name string
		a, b generic.Quantity[length.Unit]
		want bool
	}{
		{"feet to inches", ft(1), in(12), true},
		{"inches to feet", in(12), ft(1), true},
		{"yard to feet", yd(1), ft(3), true},
		{"yard to inches", yd(1), in(36), true},
		{"centimeters to inches", cm(1), in(0.393701), true},
		{"centimeters to feet", cm(1), ft(1), false},
		{"different values", ft(1), ft(2), false},
		{"zero", ft(0), in(0), true},
		{"negative", ft(-1), in(-12), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestEqual_IsReflexiveSymmetricTransitive(t *testing.T) {
	a, b, c := yd(1), ft(3), in(36)

	assert.True(t, a.Equal(a))
	assert.Equal(t, a.Equal(b), b.Equal(a))
	assert.True(t, a.Equal(b) && b.Equal(c))
	assert.True(t, a.Equal(c))
}

func TestEquivalent_AcrossCategories(t *testing.T) {
	assert.False(t, generic.Equivalent(litre(1), kg(1)))
	assert.False(t, generic.Equivalent(litre(1), ft(1)))
	assert.False(t, generic.Equivalent(celsius(1), ft(1)))
	assert.True(t, generic.Equivalent(litre(1), ml(1000)))
	assert.False(t, generic.Equivalent(litre(1), nil))
}

func TestEqual_EmptyQuantity(t *testing.T) {
	var empty generic.Quantity[length.Unit]
	assert.False(t, ft(0).Equal(empty))
	assert.False(t, empty.Equal(ft(0)))
	assert.True(t, empty.Equal(empty))
}

func TestEqual_WithinPrecision(t *testing.T) {
	// Pound factor is rounded, so 2.20462 lb is 0.999998 kg
	assert.True(t, kg(1).Equal(generic.MustNew(2.20462, weight.Pound)))
	assert.True(t, litre(1).Equal(generic.MustNew(0.264172, volume.Gallon)))
	assert.False(t, kg(1).Equal(kg(1.0001)))
}

func TestHash_ConsistentWithEqual(t *testing.T) {
	pairs := [][2]generic.Quantity[length.Unit]{
		{ft(1), in(12)},
		{yd(1), in(36)},
		{cm(2.54), in(1)},
		{ft(0), in(-0.0)},
	}
	for _, p := range pairs {
		require.True(t, p[0].Equal(p[1]), "%s vs %s", p[0], p[1])
		assert.Equal(t, p[0].Hash(), p[1].Hash(), "%s vs %s", p[0], p[1])
		assert.Equal(t, p[0].Key(), p[1].Key())
	}

	assert.NotEqual(t, ft(1).Hash(), ft(2).Hash())
	assert.NotEqual(t, litre(1).Key(), kg(1).Key())
}

func TestKey_UsableAsMapKey(t *testing.T) {
	seen := map[generic.Key]string{}
	seen[ft(1).Key()] = "one foot"

	assert.Equal(t, "one foot", seen[in(12).Key()])
	_, ok := seen[yd(1).Key()]
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Quantity(1, Feet)", ft(1).String())
	assert.Equal(t, "Quantity(0.5, Litre)", litre(0.5).String())
	assert.Equal(t, "Quantity(-40, Celsius)", celsius(-40).String())
}

// =============================================================================
// CONVERSION
// =============================================================================

func TestConvertTo(t *testing.T) {
	tests := []struct {
		name string
		run  func() (float64, error)
		want float64
	}{
		{"feet to inches", value(ft(1).ConvertTo(length.Inch)), 12},
		{"inches to feet", value(in(24).ConvertTo(length.Feet)), 2},
		{"yards to inches", value(yd(1).ConvertTo(length.Inch)), 36},
		{"feet to centimeters", value(ft(1).ConvertTo(length.Centimeters)), 30.48},
		{"kilogram to gram", value(kg(1).ConvertTo(weight.Gram)), 1000},
		{"gram to kilogram", value(grams(1000).ConvertTo(weight.Kilogram)), 1},
		{"kilogram to pound", value(kg(1).ConvertTo(weight.Pound)), 2.20462},
		{"litre to millilitre", value(litre(1).ConvertTo(volume.Millilitre)), 1000},
		{"gallon to litre", value(generic.MustNew(1.0, volume.Gallon).ConvertTo(volume.Litre)), 3.78541},
		{"negative", value(ft(-1).ConvertTo(length.Inch)), -12},
		{"zero", value(ft(0).ConvertTo(length.Yards)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestConvertTo_RoundsToPrecision(t *testing.T) {
	q, err := in(1).ConvertTo(length.Feet)
	require.NoError(t, err)
	assert.Equal(t, 0.08333, q.Value())
}

func TestConvertTo_RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 2.5, 123.456, 1e6, -0.75}
	for _, from := range length.Units() {
		for _, to := range length.Units() {
			for _, v := range values {
				q := generic.MustNew(v, from)
				there, err := q.ConvertTo(to)
				require.NoError(t, err)
				back, err := there.ConvertTo(from)
				require.NoError(t, err)

				// Rounding happens twice; the first error is scaled back by to/from.
				delta := tolerance * math.Max(1, to.Factor()/from.Factor())
				assert.InDelta(t, v, back.Value(), delta, "%v %s -> %s", v, from, to)
			}
		}
	}
}

func TestConvertTo_ReturnsNewValue(t *testing.T) {
	q := ft(1)
	converted, err := q.ConvertTo(length.Inch)
	require.NoError(t, err)

	assert.Equal(t, 1.0, q.Value())
	assert.Equal(t, length.Feet, q.Unit())
	assert.Equal(t, length.Inch, converted.Unit())
}

func TestConvertTo_MissingTarget(t *testing.T) {
	_, err := ft(1).ConvertTo(length.Unit(0))
	require.ErrorIs(t, err, generic.ErrNilTargetUnit)

	var empty generic.Quantity[length.Unit]
	_, err = empty.ConvertTo(length.Inch)
	require.ErrorIs(t, err, generic.ErrNilUnit)
}

func TestConvertTo_RuntimeCategoryCheck(t *testing.T) {
	q := generic.MustNew[generic.Unit](1.0, volume.Litre)

	_, err := q.ConvertTo(weight.Kilogram)
	require.ErrorIs(t, err, generic.ErrCrossCategory)
	require.ErrorIs(t, err, generic.ErrInvalidArgument)

	var cross *generic.CrossCategoryError
	require.ErrorAs(t, err, &cross)
	assert.Equal(t, generic.OpConvert, cross.Operation)
	assert.Equal(t, volume.Category, cross.Left)
	assert.Equal(t, weight.Category, cross.Right)
}

// =============================================================================
// ADDITION
// =============================================================================

func TestAdd_SameUnit(t *testing.T) {
	sum, err := ft(1).Add(ft(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum.Value())
	assert.Equal(t, length.Feet, sum.Unit())
}

func TestAdd_ImplicitTargetIsFirstOperand(t *testing.T) {
	sum, err := ft(1).Add(in(12))
	require.NoError(t, err)
	assert.Equal(t, length.Feet, sum.Unit())
	assert.InDelta(t, 2.0, sum.Value(), tolerance)

	sum, err = in(12).Add(ft(1))
	require.NoError(t, err)
	assert.Equal(t, length.Inch, sum.Unit())
	assert.InDelta(t, 24.0, sum.Value(), tolerance)
}

func TestAddIn_ExplicitTarget(t *testing.T) {
	sum, err := ft(1).AddIn(in(12), length.Yards)
	require.NoError(t, err)
	assert.Equal(t, length.Yards, sum.Unit())
	assert.InDelta(t, 0.6667, sum.Value(), 1e-4)

	sum, err = cm(2.54).AddIn(in(1), length.Centimeters)
	require.NoError(t, err)
	assert.InDelta(t, 5.08, sum.Value(), 0.01)

	total, err := generic.MustNew(1.0, volume.Gallon).AddIn(litre(3.78541), volume.Gallon)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, total.Value(), 1e-6)

	mass, err := kg(1).AddIn(grams(1000), weight.Gram)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, mass.Value(), 1e-6)
}

func TestAdd_Commutative(t *testing.T) {
	ab, err := ft(1).Add(in(12))
	require.NoError(t, err)
	ba, err := in(12).Add(ft(1))
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba))

	ab, err = ft(1).AddIn(in(6), length.Inch)
	require.NoError(t, err)
	ba, err = in(6).AddIn(ft(1), length.Inch)
	require.NoError(t, err)
	assert.Equal(t, ab.Value(), ba.Value())
}

func TestAdd_ZeroAndNegative(t *testing.T) {
	sum, err := ft(5).Add(in(0))
	require.NoError(t, err)
	assert.Equal(t, 5.0, sum.Value())

	sum, err = ft(5).Add(ft(-2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum.Value())
}

func TestAdd_OperandsUnchanged(t *testing.T) {
	a, b := ft(1), in(12)
	_, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Value())
	assert.Equal(t, 12.0, b.Value())
}

func TestAdd_OverflowRejected(t *testing.T) {
	big := ft(math.MaxFloat64)
	_, err := big.Add(big)
	require.ErrorIs(t, err, generic.ErrInvalidValue)
}

// =============================================================================
// SUBTRACTION
// =============================================================================

func TestSubtract(t *testing.T) {
	diff, err := litre(5).Subtract(ml(500))
	require.NoError(t, err)
	assert.Equal(t, 4.5, diff.Value())
	assert.Equal(t, volume.Litre, diff.Unit())

	diff, err = litre(5).SubtractIn(ml(500), volume.Millilitre)
	require.NoError(t, err)
	assert.InDelta(t, 4500.0, diff.Value(), 1e-6)

	mass, err := kg(10).SubtractIn(grams(5000), weight.Gram)
	require.NoError(t, err)
	assert.InDelta(t, 5000.0, mass.Value(), 1e-6)
}

func TestSubtract_NonCommutative(t *testing.T) {
	ab, err := ft(10).Subtract(in(6))
	require.NoError(t, err)
	ba, err := in(6).SubtractIn(ft(10), length.Feet)
	require.NoError(t, err)

	assert.InDelta(t, 9.5, ab.Value(), tolerance)
	assert.InDelta(t, -ab.Value(), ba.Value(), tolerance)
}

func TestSubtract_ZeroAndNegativeResults(t *testing.T) {
	diff, err := ft(1).Subtract(in(12))
	require.NoError(t, err)
	assert.Equal(t, 0.0, diff.Value())

	diff, err = ft(5).Subtract(ft(10))
	require.NoError(t, err)
	assert.Equal(t, -5.0, diff.Value())
}

// =============================================================================
// DIVISION
// =============================================================================

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		run  func() (float64, error)
		want float64
	}{
		{"same unit", func() (float64, error) { return ft(10).Divide(ft(2)) }, 5},
		{"inches by feet", func() (float64, error) { return in(24).Divide(ft(2)) }, 1},
		{"ratio below one", func() (float64, error) { return ft(5).Divide(ft(10)) }, 0.5},
		{"millilitre by litre", func() (float64, error) { return ml(1000).Divide(litre(1)) }, 1},
		{"kilogram by gram", func() (float64, error) { return kg(1).Divide(grams(1000)) }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDivide_NonCommutative(t *testing.T) {
	ab, err := ft(10).Divide(ft(5))
	require.NoError(t, err)
	ba, err := ft(5).Divide(ft(10))
	require.NoError(t, err)
	assert.NotEqual(t, ab, ba)
}

func TestDivide_ByZero(t *testing.T) {
	_, err := ft(10).Divide(ft(0))
	require.ErrorIs(t, err, generic.ErrDivisionByZero)
	assert.True(t, generic.IsArithmetic(err))

	_, err = ft(10).Divide(ft(1e-7))
	require.ErrorIs(t, err, generic.ErrDivisionByZero)
}

func TestDivide_OverflowRejected(t *testing.T) {
	_, err := ft(1e308).Divide(ft(1e-5))
	require.ErrorIs(t, err, generic.ErrInvalidValue)
	assert.False(t, generic.IsArithmetic(err))
}

// =============================================================================
// CAPABILITY GATING
// =============================================================================

func TestTemperature_ArithmeticUnsupported(t *testing.T) {
	ops := map[generic.Operation]func() error{
		generic.OpAdd: func() error {
			_, err := celsius(100).Add(celsius(50))
			return err
		},
		generic.OpSubtract: func() error {
			_, err := celsius(100).Subtract(celsius(50))
			return err
		},
		generic.OpDivide: func() error {
			_, err := celsius(100).Divide(celsius(50))
			return err
		},
	}
	for op, run := range ops {
		t.Run(string(op), func(t *testing.T) {
			err := run()
			require.ErrorIs(t, err, generic.ErrUnsupportedOperation)
			assert.True(t, generic.IsUnsupported(err))
			assert.False(t, generic.IsInvalidArgument(err))

			var unsupported *generic.UnsupportedOperationError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, op, unsupported.Operation)
			assert.Equal(t, temperature.Category, unsupported.Category)
			assert.Equal(t, string(op)+" not supported for temperature", err.Error())
		})
	}
}

func TestTemperature_ConversionAndEqualityAllowed(t *testing.T) {
	assert.True(t, celsius(0).Equal(generic.MustNew(32.0, temperature.Fahrenheit)))

	k, err := celsius(0).ConvertTo(temperature.Kelvin)
	require.NoError(t, err)
	assert.Equal(t, 273.15, k.Value())
}

// =============================================================================
// VALIDATION ORDER
// =============================================================================

func TestValidation_NullOperandFirst(t *testing.T) {
	var empty generic.Quantity[length.Unit]

	_, err := ft(1).Add(empty)
	require.ErrorIs(t, err, generic.ErrNilOperand)
	_, err = ft(1).Subtract(empty)
	require.ErrorIs(t, err, generic.ErrNilOperand)
	_, err = ft(1).Divide(empty)
	require.ErrorIs(t, err, generic.ErrNilOperand)

	// Even for temperature, a missing operand is reported before capability.
	var emptyTemp generic.Quantity[temperature.Unit]
	_, err = celsius(1).Add(emptyTemp)
	require.ErrorIs(t, err, generic.ErrNilOperand)
}

func TestValidation_EmptyReceiver(t *testing.T) {
	var empty generic.Quantity[length.Unit]
	_, err := empty.Add(ft(1))
	require.ErrorIs(t, err, generic.ErrNilUnit)
}

func TestValidation_CapabilityBeforeCategory(t *testing.T) {
	a := generic.MustNew[generic.Unit](1.0, temperature.Celsius)
	b := generic.MustNew[generic.Unit](1.0, length.Feet)

	_, err := a.Add(b)
	require.ErrorIs(t, err, generic.ErrUnsupportedOperation)

	_, err = b.Add(a)
	require.ErrorIs(t, err, generic.ErrUnsupportedOperation)
}

func TestValidation_CrossCategory(t *testing.T) {
	a := generic.MustNew[generic.Unit](1.0, length.Feet)
	b := generic.MustNew[generic.Unit](1.0, weight.Kilogram)

	_, err := a.Add(b)
	require.ErrorIs(t, err, generic.ErrCrossCategory)
	_, err = a.Subtract(b)
	require.ErrorIs(t, err, generic.ErrCrossCategory)
	_, err = a.Divide(b)
	require.ErrorIs(t, err, generic.ErrCrossCategory)
	assert.True(t, generic.IsInvalidArgument(err))
	assert.False(t, a.Equal(b))
}

func TestValidation_MissingTargetAfterCategory(t *testing.T) {
	_, err := ft(1).AddIn(in(1), length.Unit(0))
	require.ErrorIs(t, err, generic.ErrNilTargetUnit)
	_, err = ft(1).SubtractIn(in(1), length.Unit(0))
	require.ErrorIs(t, err, generic.ErrNilTargetUnit)

	a := generic.MustNew[generic.Unit](1.0, length.Feet)
	b := generic.MustNew[generic.Unit](1.0, weight.Kilogram)
	_, err = a.AddIn(b, nil)
	require.ErrorIs(t, err, generic.ErrCrossCategory)
}

func TestValidation_TargetOfOtherCategory(t *testing.T) {
	a := generic.MustNew[generic.Unit](1.0, length.Feet)
	_, err := a.AddIn(generic.MustNew[generic.Unit](12.0, length.Inch), volume.Litre)
	require.ErrorIs(t, err, generic.ErrCrossCategory)
}

func value(q interface{ Value() float64 }, err error) func() (float64, error) {
	return func() (float64, error) {
		if err != nil {
			return 0, err
		}
		return q.Value(), nil
	}
}
