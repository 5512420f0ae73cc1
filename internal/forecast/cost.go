package forecast

import "github.com/fundroi/fundraising-forecast/pkg/constants"

// ProjectCost builds the 3-year cost series.
//
// Year 1 is always base acquisition cost plus the overhead margin. When
// year1Only is set, years 2-3 carry only the stewardship portion of the
// budget (base * margin) compounded by the growth rate; otherwise the full
// year-1 cost keeps compounding.
//
// The shock multiplies all three years. Revenue shocks exempt year 1 but
// cost shocks do not: year-1 spend is still exposed to price-level changes.
func ProjectCost(base, margin, growth, shock float64, year1Only bool) []float64 {
	series := make([]float64, constants.ForecastYears)
	series[0] = base * (1.0 + margin)

	if year1Only {
		stewardshipBase := base * margin
		series[1] = stewardshipBase * (1.0 + growth)
		series[2] = stewardshipBase * (1.0 + growth) * (1.0 + growth)
	} else {
		series[1] = series[0] * (1.0 + growth)
		series[2] = series[1] * (1.0 + growth)
	}

	mult := 1.0 + shock
	for i := range series {
		series[i] *= mult
	}
	return series
}
