/*
Package temperature defines the temperature measurement category.

PURPOSE:
  Temperature scales do not share a common zero, so conversion needs an
  offset as well as a factor. Every unit uses generic.AffineConversion with
  Celsius as the base:

    Celsius:    base = value
    Fahrenheit: base = (value - 32) * 5/9
    Kelvin:     base = value - 273.15

CAPABILITIES:
  Adding or dividing absolute temperatures is meaningless, so every unit is
  built WithoutArithmetic. Conversion and equality still work:

    q := generic.MustNew(0.0, temperature.Celsius)
    q.Equal(generic.MustNew(32.0, temperature.Fahrenheit))  // true
    q.Add(q)                                                 // ErrUnsupportedOperation
*/
package temperature

import "github.com/warp/measure-engine/generic"

const Category generic.Category = "temperature"

// Unit is the concrete unit type for the temperature category.
type Unit uint8

const (
	Celsius Unit = iota + 1
	Fahrenheit
	Kelvin
)

var descriptors = [...]generic.Descriptor{
	Celsius:    generic.NewDescriptor("Celsius", Category, generic.AffineConversion{Scale: 1.0, Offset: 0}).WithoutArithmetic(),
	Fahrenheit: generic.NewDescriptor("Fahrenheit", Category, generic.AffineConversion{Scale: 5.0 / 9.0, Offset: -32.0}).WithoutArithmetic(),
	Kelvin:     generic.NewDescriptor("Kelvin", Category, generic.AffineConversion{Scale: 1.0, Offset: -273.15}).WithoutArithmetic(),
}

var _ generic.Unit = Celsius

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

// ValidateOperationSupport rejects add, subtract and divide.
func (u Unit) ValidateOperationSupport(op generic.Operation) error {
	return u.Descriptor().ValidateOperationSupport(op)
}

func Units() []Unit {
	return []Unit{Celsius, Fahrenheit, Kelvin}
}

type Quantity = generic.Quantity[Unit]

func New(value float64, unit Unit) (Quantity, error) {
	return generic.New(value, unit)
}

func init() {
	generic.MustRegisterUnit(Celsius, "c", "°c", "degc")
	generic.MustRegisterUnit(Fahrenheit, "f", "°f", "degf")
	generic.MustRegisterUnit(Kelvin, "k")
}
