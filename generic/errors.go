/*
errors.go - Centralized error types for the measurement engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Every Quantity operation validates its inputs before touching any value,
  so a returned error always means "no result was produced".

ERROR CATEGORIES:
  1. Invalid argument - missing unit/operand/target, non-finite values
  2. Cross-category   - a specialization of invalid argument
  3. Unsupported      - arithmetic on a capability-disabled category
  4. Arithmetic       - division by a (near) zero quantity
  5. Registry         - unknown or conflicting unit names

USAGE:
  if errors.Is(err, generic.ErrCrossCategory) { ... }

  var unsupported *generic.UnsupportedOperationError
  if errors.As(err, &unsupported) {
      log.Printf("%s rejected for %s", unsupported.Operation, unsupported.Category)
  }

SEE ALSO:
  - validate.go: Where these errors are raised
  - registry.go: Registry errors
*/
package generic

import (
	"errors"
	"fmt"
	"strconv"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidArgument is the root of every input validation failure.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilUnit is returned when a quantity is built without a unit.
	ErrNilUnit = fmt.Errorf("%w: unit cannot be null", ErrInvalidArgument)

	// ErrNilOperand is returned when the other side of an operation is empty.
	ErrNilOperand = fmt.Errorf("%w: other quantity cannot be null", ErrInvalidArgument)

	// ErrNilTargetUnit is returned when a conversion or arithmetic target is missing.
	ErrNilTargetUnit = fmt.Errorf("%w: target unit cannot be null", ErrInvalidArgument)

	// ErrInvalidUnit is returned for a unit whose conversion does not produce
	// finite values, such as an undeclared enum value.
	ErrInvalidUnit = fmt.Errorf("%w: unit has no usable conversion", ErrInvalidArgument)

	// ErrInvalidValue is returned for NaN and infinite values.
	ErrInvalidValue = fmt.Errorf("%w: invalid numeric value", ErrInvalidArgument)

	// ErrCrossCategory is returned when two units of different categories meet.
	ErrCrossCategory = fmt.Errorf("%w: cross-category operation is not allowed", ErrInvalidArgument)

	// ErrUnsupportedOperation is returned when a category disables an operation.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrDivisionByZero is returned when the divisor's base value is within Epsilon of zero.
	ErrDivisionByZero = errors.New("cannot divide by zero quantity")

	// ErrUnknownUnit is returned when a unit name is not registered.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrDuplicateUnit is returned when a name is already taken by another unit.
	ErrDuplicateUnit = errors.New("duplicate unit name")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidValueError reports the rejected value.
type InvalidValueError struct {
	Value float64
}

func (e *InvalidValueError) Error() string {
	return ErrInvalidValue.Error() + ": " + strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}

// CrossCategoryError reports the two categories that were mixed.
type CrossCategoryError struct {
	Operation Operation
	Left      Category
	Right     Category
}

func (e *CrossCategoryError) Error() string {
	return fmt.Sprintf("%v (%s: %s vs %s)", ErrCrossCategory, e.Operation, e.Left, e.Right)
}

func (e *CrossCategoryError) Unwrap() error {
	return ErrCrossCategory
}

// UnsupportedOperationError names the operation a category refused.
type UnsupportedOperationError struct {
	Operation Operation
	Category  Category
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s not supported for %s", e.Operation, e.Category)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsInvalidArgument returns true for missing or malformed inputs,
// including cross-category operations.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnsupported returns true if a category refused the operation.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}

// IsArithmetic returns true if the operation failed while computing.
func IsArithmetic(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

// IsNotFound returns true if a unit lookup failed.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownUnit)
}
