package generic

// =============================================================================
// CONVERSION STRATEGIES
// =============================================================================

// Conversion maps values between a unit and its category's base.
// FromBase must be the inverse of ToBase for every finite input.
type Conversion interface {
	ToBase(value float64) float64
	FromBase(base float64) float64
}

// LinearConversion scales by a constant factor: base = value * Factor.
// Used by every category whose units share a common zero (feet, grams, litres).
type LinearConversion struct {
	Factor float64
}

func (c LinearConversion) ToBase(value float64) float64  { return value * c.Factor }
func (c LinearConversion) FromBase(base float64) float64 { return base / c.Factor }

// AffineConversion shifts then scales: base = (value + Offset) * Scale.
//
// Examples (base Celsius):
//   - Fahrenheit: Scale 5/9, Offset -32
//   - Kelvin:     Scale 1,   Offset -273.15
type AffineConversion struct {
	Scale  float64
	Offset float64
}

func (c AffineConversion) ToBase(value float64) float64  { return (value + c.Offset) * c.Scale }
func (c AffineConversion) FromBase(base float64) float64 { return base/c.Scale - c.Offset }

// Compile-time checks
var (
	_ Conversion = LinearConversion{}
	_ Conversion = AffineConversion{}
)
