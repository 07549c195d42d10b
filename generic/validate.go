package generic

import (
	"fmt"
	"math"
)

// =============================================================================
// VALIDATION - Preconditions shared by every Quantity operation
// =============================================================================
//
// Order for add/subtract/divide:
//   1. empty operand
//   2. capability (either side)
//   3. category mismatch
//   4. missing or unusable target unit (add/subtract)
//   5. divide by zero (divide)
//   6. non-finite result

func validateValue(value float64) error {
	if !isFinite(value) {
		return &InvalidValueError{Value: value}
	}
	return nil
}

// validateConversion rejects units whose conversion yields NaN or infinity
// for an ordinary input: undeclared enum values, descriptors without a
// conversion, zero factors.
func validateConversion(u Unit) error {
	if !isFinite(u.ToBase(1)) || !isFinite(u.FromBase(1)) {
		return fmt.Errorf("%w (%s unit %q)", ErrInvalidUnit, u.Category(), u.Name())
	}
	return nil
}

func validateOperands[U Measurable](op Operation, q, other Quantity[U]) error {
	if !q.Valid() {
		return ErrNilUnit
	}
	if !other.Valid() {
		return ErrNilOperand
	}
	if err := q.unit.ValidateOperationSupport(op); err != nil {
		return err
	}
	if err := other.unit.ValidateOperationSupport(op); err != nil {
		return err
	}
	return validateSameCategory(op, q.unit, other.unit)
}

func validateTarget[U Measurable](op Operation, source, target U) error {
	if isZero(target) {
		return ErrNilTargetUnit
	}
	if err := validateSameCategory(op, source, target); err != nil {
		return err
	}
	return validateConversion(target)
}

func validateSameCategory(op Operation, a, b Unit) error {
	if a.Category() != b.Category() {
		return &CrossCategoryError{Operation: op, Left: a.Category(), Right: b.Category()}
	}
	return nil
}

// compute applies op to two base values. The result is always finite.
func compute(op Operation, a, b float64) (float64, error) {
	var result float64
	switch op {
	case OpAdd:
		result = a + b
	case OpSubtract:
		result = a - b
	case OpDivide:
		if math.Abs(b) < Epsilon {
			return 0, ErrDivisionByZero
		}
		result = a / b
	default:
		return 0, &UnsupportedOperationError{Operation: op}
	}
	if err := validateValue(result); err != nil {
		return 0, err
	}
	return result, nil
}
