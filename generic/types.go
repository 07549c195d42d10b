/*
Package generic provides the core measurement engine.

PURPOSE:
  This package contains domain-agnostic types and algorithms for working with
  physical quantities. Whether the value is a length, a weight, a volume or a
  temperature, the same engine handles equality, conversion and arithmetic by
  normalizing every value to its category's base representation.

KEY CONCEPTS IN THIS FILE (types.go):
  - Unit: Describes one unit of one category (how to reach the base and back)
  - Measurable: Type constraint used as Quantity's type parameter
  - Category: Tag shared by all mutually convertible units
  - Operation: Name of an operation, used for capability gating

DESIGN PRINCIPLES:
  1. Immutability: Quantities and units are never modified after creation
  2. Base-space arithmetic: All math happens on normalized base values
  3. Type Safety: Each category package defines its own unit type, so
     Quantity[length.Unit] can never be added to Quantity[weight.Unit]
  4. No special cases: Quantity never inspects a concrete unit

USAGE:
  feet, _ := generic.New(1.0, length.Feet)
  inches, _ := generic.New(12.0, length.Inch)
  sum, err := feet.AddIn(inches, length.Yards) // Quantity(0.66667, Yards)

SEE ALSO:
  - quantity.go: The Quantity value type
  - descriptor.go: Reusable Unit implementation backed by a Conversion
  - errors.go: Validation error taxonomy
*/
package generic

// =============================================================================
// CATEGORY - Closed set of mutually convertible units
// =============================================================================

// Category identifies a measurement category such as "length" or "weight".
// Two units may be compared or combined only if their categories are equal.
type Category string

func (c Category) String() string { return string(c) }

// =============================================================================
// OPERATION - Names used for capability checks and error messages
// =============================================================================

// Operation names an engine operation for capability checks and error messages.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpDivide   Operation = "divide"
	OpConvert  Operation = "convert"
	OpEqual    Operation = "equal"
)

// Arithmetic reports whether the operation combines values arithmetically.
// Only arithmetic operations are subject to capability gating.
func (o Operation) Arithmetic() bool {
	switch o {
	case OpAdd, OpSubtract, OpDivide:
		return true
	default:
		return false
	}
}

// =============================================================================
// UNIT - One unit within one category
// =============================================================================

// Unit describes how a unit relates to its category's base representation.
// Implementations must be immutable and safe to share.
//
// Category packages implement this with a small enum:
//
//	// In length/length.go
//	type Unit uint8
//	func (u Unit) ToBase(v float64) float64 { return u.descriptor().ToBase(v) }
//	const Feet Unit = 1
type Unit interface {
	// Name returns the display label of the unit.
	Name() string

	// Category returns the category the unit belongs to.
	Category() Category

	// ToBase converts a value expressed in this unit to the base representation.
	ToBase(value float64) float64

	// FromBase converts a base value to this unit.
	FromBase(base float64) float64

	// SupportsArithmetic reports whether add/subtract/divide are allowed.
	SupportsArithmetic() bool

	// ValidateOperationSupport returns an error if op is not allowed for
	// this unit. Conversion and equality are always allowed.
	ValidateOperationSupport(op Operation) error
}

// Measurable is the constraint for Quantity's type parameter.
// The zero value of a Measurable type stands for "no unit".
type Measurable interface {
	comparable
	Unit
}

func isZero[U comparable](u U) bool {
	var zero U
	return u == zero
}
