package forecast

import "github.com/fundroi/fundraising-forecast/pkg/constants"

// RevenueMethod selects the revenue compounding policy.
type RevenueMethod string

const (
	// RevenueMethodPrior compounds each year off the prior year's revenue.
	// This is the default policy.
	RevenueMethodPrior RevenueMethod = "prior"

	// RevenueMethodRemaining treats year 1 as a pledge realized fully in
	// year 1. The remaining balance is definitionally zero, so years 2-3
	// project to zero regardless of retention.
	RevenueMethodRemaining RevenueMethod = "remaining"
)

// ProjectRevenue builds the 3-year revenue series. The shock multiplies
// years 2 and 3 only; year 1 is committed revenue and stays unshocked.
// Note the asymmetry with ProjectCost, which shocks all three years.
func ProjectRevenue(y1 float64, retention float64, method RevenueMethod, shock float64) []float64 {
	series := make([]float64, constants.ForecastYears)
	series[0] = y1

	switch method {
	case RevenueMethodRemaining:
		// remaining = y1 - y1 = 0, so retention compounds nothing.
		remaining := 0.0
		series[1] = retention * remaining
		series[2] = retention * series[1]
	default:
		series[1] = retention * y1
		series[2] = retention * series[1]
	}

	mult := 1.0 + shock
	for i := 1; i < len(series); i++ {
		series[i] *= mult
	}
	return series
}
