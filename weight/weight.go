// Package weight defines the weight measurement category.
// All weight units normalize to kilograms.
package weight

import "github.com/warp/measure-engine/generic"

// Category is the category shared by every weight unit.
const Category generic.Category = "weight"

// Unit is the concrete unit type for the weight category.
type Unit uint8

const (
	Kilogram Unit = iota + 1
	Gram
	Pound
)

// Conversion factors to kilograms
var descriptors = [...]generic.Descriptor{
	Kilogram: generic.NewDescriptor("Kilogram", Category, generic.LinearConversion{Factor: 1.0}),
	Gram:     generic.NewDescriptor("Gram", Category, generic.LinearConversion{Factor: 0.001}),
	Pound:    generic.NewDescriptor("Pound", Category, generic.LinearConversion{Factor: 0.453592}),
}

var _ generic.Unit = Kilogram

// Descriptor returns the table entry backing u, or the zero Descriptor
// for an undeclared value.
func (u Unit) Descriptor() generic.Descriptor {
	if !u.Valid() {
		return generic.Descriptor{}
	}
	return descriptors[u]
}

func (u Unit) Valid() bool { return u > 0 && int(u) < len(descriptors) }

func (u Unit) Name() string                  { return u.Descriptor().Name() }
func (u Unit) String() string                { return u.Name() }
func (u Unit) Category() generic.Category    { return Category }
func (u Unit) ToBase(value float64) float64  { return u.Descriptor().ToBase(value) }
func (u Unit) FromBase(base float64) float64 { return u.Descriptor().FromBase(base) }
func (u Unit) SupportsArithmetic() bool      { return u.Descriptor().SupportsArithmetic() }
func (u Unit) Factor() float64               { return u.Descriptor().Factor() }

func (u Unit) ValidateOperationSupport(op generic.Operation) error {
	return u.Descriptor().ValidateOperationSupport(op)
}

// Units returns every weight unit in declaration order.
func Units() []Unit {
	return []Unit{Kilogram, Gram, Pound}
}

type Quantity = generic.Quantity[Unit]

func New(value float64, unit Unit) (Quantity, error) {
	return generic.New(value, unit)
}

func init() {
	generic.MustRegisterUnit(Kilogram, "kg", "kilograms")
	generic.MustRegisterUnit(Gram, "g", "grams")
	generic.MustRegisterUnit(Pound, "lb", "lbs", "pounds")
}
