package generic

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// Precision is the number of decimal places every produced value is
	// rounded to. It also defines the equality tolerance.
	Precision = 5

	// Epsilon is the smallest divisor base value Divide accepts.
	Epsilon = 1e-6
)

// Round rounds v to Precision decimal places, half away from zero.
// Non-finite values are returned unchanged so that New can reject them.
func Round(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(Precision).Float64()
	return f
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
