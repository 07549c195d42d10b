/*
Package volume defines the volume measurement category.

BASE UNIT: litre

UNITS:
  Litre:      1
  Millilitre: 0.001 litres
  Gallon:     3.78541 litres (US liquid gallon)
*/
package volume

import "github.com/warp/measure-engine/generic"

const Category generic.Category = "volume"

// Unit is the concrete unit type for the volume category.
type Unit uint8

const (
	Litre Unit = iota + 1
	Millilitre
	Gallon
)

var descriptors = [...]generic.Descriptor{
	Litre:      generic.NewDescriptor("Litre", Category, generic.LinearConversion{Factor: 1.0}),
	Millilitre: generic.NewDescriptor("Millilitre", Category, generic.LinearConversion{Factor: 0.001}),
	Gallon:     generic.NewDescriptor("Gallon", Category, generic.LinearConversion{Factor: 3.78541}),
}

var _ generic.Unit = Litre

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

func Units() []Unit {
	return []Unit{Litre, Millilitre, Gallon}
}

type Quantity = generic.Quantity[Unit]

func New(value float64, unit Unit) (Quantity, error) {
	return generic.New(value, unit)
}

func init() {
	generic.MustRegisterUnit(Litre, "l", "liter", "litres", "liters")
	generic.MustRegisterUnit(Millilitre, "ml", "milliliter")
	generic.MustRegisterUnit(Gallon, "gal", "gallons")
}
