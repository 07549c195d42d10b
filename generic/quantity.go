package generic

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
)

// =============================================================================
// QUANTITY - Immutable value with a unit
// =============================================================================

// Quantity is an immutable (value, unit) pair. Every operation returns a new
// Quantity; the receiver is never modified.
//
// The zero Quantity has no unit and is reported as invalid. It stands in for
// a missing operand and is rejected by every operation.
type Quantity[U Measurable] struct {
	value float64
	unit  U
}

// New validates and creates a quantity. Both the value and its base value
// must be finite.
func New[U Measurable](value float64, unit U) (Quantity[U], error) {
	if isZero(unit) {
		return Quantity[U]{}, ErrNilUnit
	}
	if err := validateValue(value); err != nil {
		return Quantity[U]{}, err
	}
	if err := validateConversion(unit); err != nil {
		return Quantity[U]{}, err
	}
	if !isFinite(unit.ToBase(value)) {
		return Quantity[U]{}, &InvalidValueError{Value: value}
	}
	return Quantity[U]{value: value, unit: unit}, nil
}

// MustNew is like New but panics on invalid input.
// Use in tests or with literal values.
func MustNew[U Measurable](value float64, unit U) Quantity[U] {
	q, err := New(value, unit)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity[U]) Value() float64 { return q.value }
func (q Quantity[U]) Unit() U        { return q.unit }

// Valid reports whether the quantity has a unit.
func (q Quantity[U]) Valid() bool { return !isZero(q.unit) }

// Category returns the unit's category, or "" for an invalid quantity.
func (q Quantity[U]) Category() Category {
	if !q.Valid() {
		return ""
	}
	return q.unit.Category()
}

// BaseValue returns the value in the category's base representation.
func (q Quantity[U]) BaseValue() float64 {
	if !q.Valid() {
		return 0
	}
	return q.unit.ToBase(q.value)
}

// =============================================================================
// CONVERSION
// =============================================================================

// ConvertTo expresses the quantity in target.
func (q Quantity[U]) ConvertTo(target U) (Quantity[U], error) {
	if !q.Valid() {
		return Quantity[U]{}, ErrNilUnit
	}
	if err := validateTarget(OpConvert, q.unit, target); err != nil {
		return Quantity[U]{}, err
	}
	return New(Round(target.FromBase(q.BaseValue())), target)
}

// =============================================================================
// ARITHMETIC
// =============================================================================

// Add returns q + other expressed in q's unit.
func (q Quantity[U]) Add(other Quantity[U]) (Quantity[U], error) {
	return q.combine(OpAdd, other, q.unit)
}

// AddIn returns q + other expressed in target.
func (q Quantity[U]) AddIn(other Quantity[U], target U) (Quantity[U], error) {
	return q.combine(OpAdd, other, target)
}

// Subtract returns q - other expressed in q's unit.
func (q Quantity[U]) Subtract(other Quantity[U]) (Quantity[U], error) {
	return q.combine(OpSubtract, other, q.unit)
}

// SubtractIn returns q - other expressed in target.
func (q Quantity[U]) SubtractIn(other Quantity[U], target U) (Quantity[U], error) {
	return q.combine(OpSubtract, other, target)
}

// Divide returns the dimensionless ratio q / other.
// The result is not rounded.
func (q Quantity[U]) Divide(other Quantity[U]) (float64, error) {
	if err := validateOperands(OpDivide, q, other); err != nil {
		return 0, err
	}
	return compute(OpDivide, q.BaseValue(), other.BaseValue())
}

func (q Quantity[U]) combine(op Operation, other Quantity[U], target U) (Quantity[U], error) {
	if err := validateOperands(op, q, other); err != nil {
		return Quantity[U]{}, err
	}
	if err := validateTarget(op, q.unit, target); err != nil {
		return Quantity[U]{}, err
	}
	base, err := compute(op, q.BaseValue(), other.BaseValue())
	if err != nil {
		return Quantity[U]{}, err
	}
	return New(Round(target.FromBase(base)), target)
}

// =============================================================================
// EQUALITY & HASHING
// =============================================================================

// Measure is the view of a quantity needed to compare it with quantities of
// any category.
type Measure interface {
	Category() Category
	BaseValue() float64
}

// Equivalent reports whether a and b describe the same amount: same category
// and base values equal at Precision decimal places.
func Equivalent(a, b Measure) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return keyOf(a) == keyOf(b)
}

// Equal reports whether q and other are equivalent. 1 ft equals 12 in.
func (q Quantity[U]) Equal(other Quantity[U]) bool {
	return Equivalent(q, other)
}

// Key is a comparable identity for a quantity, suitable as a map key.
// Equal quantities have equal keys.
type Key struct {
	Category Category
	Base     float64
}

func (q Quantity[U]) Key() Key {
	return keyOf(q)
}

// Hash returns a hash consistent with Equal.
func (q Quantity[U]) Hash() uint64 {
	k := q.Key()
	h := fnv.New64a()
	h.Write([]byte(k.Category))
	h.Write([]byte{0})
	var buf [8]byte
	bits := math.Float64bits(k.Base)
	for i := range buf {
		buf[i] = byte(bits >> (8 * i))
	}
	h.Write(buf[:])
	return h.Sum64()
}

func keyOf(m Measure) Key {
	base := Round(m.BaseValue())
	if base == 0 {
		base = 0 // drop negative zero
	}
	return Key{Category: m.Category(), Base: base}
}

// String returns a debug representation, e.g. "Quantity(12, Inch)".
func (q Quantity[U]) String() string {
	if !q.Valid() {
		return "Quantity(<nil>)"
	}
	return fmt.Sprintf("Quantity(%s, %s)", strconv.FormatFloat(q.value, 'f', -1, 64), q.unit.Name())
}

// Compile-time check
var _ Measure = Quantity[Descriptor]{}
