// Package length defines the length measurement category.
// All length units normalize to feet.
package length

import "github.com/warp/measure-engine/generic"

// Category is the category shared by every length unit.
const Category generic.Category = "length"

// =============================================================================
// LENGTH UNITS
// =============================================================================

// Unit is the concrete unit type for the length category.
// Implements generic.Unit.
type Unit uint8

const (
	Feet Unit = iota + 1
	Inch
	Yards
	Centimeters
)

// Conversion factors to feet
var descriptors = [...]generic.Descriptor{
	Feet:        generic.NewDescriptor("Feet", Category, generic.LinearConversion{Factor: 1.0}),
	Inch:        generic.NewDescriptor("Inch", Category, generic.LinearConversion{Factor: 1.0 / 12.0}),
	Yards:       generic.NewDescriptor("Yards", Category, generic.LinearConversion{Factor: 3.0}),
	Centimeters: generic.NewDescriptor("Centimeters", Category, generic.LinearConversion{Factor: 0.393701 / 12.0}),
}

// Compile-time check that Unit implements generic.Unit
var _ generic.Unit = Feet

// Descriptor returns the table entry backing u, or the zero Descriptor
// for an undeclared value.
func (u Unit) Descriptor() generic.Descriptor {
	if !u.Valid() {
		return generic.Descriptor{}
	}
	return descriptors[u]
}

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool { return u > 0 && int(u) < len(descriptors) }

func (u Unit) Name() string                  { return u.Descriptor().Name() }
func (u Unit) String() string                { return u.Name() }
func (u Unit) Category() generic.Category    { return Category }
func (u Unit) ToBase(value float64) float64  { return u.Descriptor().ToBase(value) }
func (u Unit) FromBase(base float64) float64 { return u.Descriptor().FromBase(base) }
func (u Unit) SupportsArithmetic() bool      { return u.Descriptor().SupportsArithmetic() }

// ValidateOperationSupport never fails: length supports all arithmetic.
func (u Unit) ValidateOperationSupport(op generic.Operation) error {
	return u.Descriptor().ValidateOperationSupport(op)
}

// Factor returns how many feet one of this unit is.
func (u Unit) Factor() float64 { return u.Descriptor().Factor() }

// Units returns every length unit in declaration order.
func Units() []Unit {
	return []Unit{Feet, Inch, Yards, Centimeters}
}

// Quantity is a length value.
type Quantity = generic.Quantity[Unit]

// New creates a length quantity.
func New(value float64, unit Unit) (Quantity, error) {
	return generic.New(value, unit)
}

// Register all length units with the generic registry
func init() {
	generic.MustRegisterUnit(Feet, "ft", "foot")
	generic.MustRegisterUnit(Inch, "in", "inches")
	generic.MustRegisterUnit(Yards, "yd", "yard")
	generic.MustRegisterUnit(Centimeters, "cm", "centimeter", "centimetre")
}
