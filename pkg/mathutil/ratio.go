// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/fundroi/fundraising-forecast/pkg/constants"
)

// SafeDiv divides a by b, resolving to 0.0 when the denominator is zero.
// Every ratio in the application (ROI, cost-to-raise-$1, average gift) uses
// this guard so that dashboards render zeros instead of NaN or errors.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0.0
	}
	return a / b
}

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// IsNegative checks if a value is negative (less than negative tolerance)
func IsNegative(val float64) bool {
	return val < -constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}
