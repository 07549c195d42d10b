package generic

import "math"

// =============================================================================
// DESCRIPTOR - Table-driven Unit implementation
// =============================================================================

// Descriptor is an immutable Unit built from a name, a category and a
// Conversion. Category packages keep one Descriptor per enum value;
// catalogs loaded at runtime hand out *Descriptor directly.
type Descriptor struct {
	name       string
	category   Category
	conversion Conversion
	arithmetic bool
}

// NewDescriptor creates a descriptor that supports arithmetic.
func NewDescriptor(name string, category Category, conversion Conversion) Descriptor {
	return Descriptor{
		name:       name,
		category:   category,
		conversion: conversion,
		arithmetic: true,
	}
}

// WithoutArithmetic returns a copy that rejects add, subtract and divide.
func (d Descriptor) WithoutArithmetic() Descriptor {
	d.arithmetic = false
	return d
}

func (d Descriptor) Name() string             { return d.name }
func (d Descriptor) Category() Category       { return d.category }
func (d Descriptor) Conversion() Conversion   { return d.conversion }
func (d Descriptor) SupportsArithmetic() bool { return d.arithmetic }
func (d Descriptor) String() string           { return d.name }

// ToBase returns NaN for a descriptor without a conversion, which New
// rejects with ErrInvalidUnit.
func (d Descriptor) ToBase(value float64) float64 {
	if d.conversion == nil {
		return math.NaN()
	}
	return d.conversion.ToBase(value)
}

func (d Descriptor) FromBase(base float64) float64 {
	if d.conversion == nil {
		return math.NaN()
	}
	return d.conversion.FromBase(base)
}

func (d Descriptor) ValidateOperationSupport(op Operation) error {
	if d.arithmetic || !op.Arithmetic() {
		return nil
	}
	return &UnsupportedOperationError{Operation: op, Category: d.category}
}

// Factor returns the linear conversion factor, or 1 for non-linear units.
func (d Descriptor) Factor() float64 {
	if lc, ok := d.conversion.(LinearConversion); ok {
		return lc.Factor
	}
	return 1.0
}

// Compile-time check that both forms implement Unit
var (
	_ Unit = Descriptor{}
	_ Unit = (*Descriptor)(nil)
)
