package validation

import "fmt"

// AssumptionRanges mirrors the macro assumption scalars for range checking
// without importing the forecast package.
type AssumptionRanges struct {
	TotalRaisedY1 float64
	BaseCostY1    float64
	Retention     float64
	RevenueMethod string
	RevenueShock  float64
	Margin        float64
	CostGrowth    float64
	CostShock     float64
}

// AssumptionWarnings reports out-of-range macro assumptions as warnings.
// The engine itself never rejects these values; arithmetic passes them
// through unchanged, so warnings are the only signal the user gets.
func AssumptionWarnings(a AssumptionRanges) []string {
	var warnings []string

	if a.TotalRaisedY1 < 0 {
		warnings = append(warnings, fmt.Sprintf("totalRaisedY1 %.2f is negative", a.TotalRaisedY1))
	}
	if a.BaseCostY1 < 0 {
		warnings = append(warnings, fmt.Sprintf("baseCostY1 %.2f is negative", a.BaseCostY1))
	}
	if a.Retention < 0 || a.Retention > 1 {
		warnings = append(warnings, fmt.Sprintf("retention %.2f is outside the recommended domain [0, 1]", a.Retention))
	}
	switch a.RevenueMethod {
	case "", "prior", "remaining":
	default:
		warnings = append(warnings, fmt.Sprintf("revenueMethod %q is not prior or remaining; prior will be used", a.RevenueMethod))
	}
	if a.RevenueShock < -0.3 || a.RevenueShock > 0.3 {
		warnings = append(warnings, fmt.Sprintf("revenueShock %.2f is outside the typical range [-0.3, 0.3]", a.RevenueShock))
	}
	if a.Margin < 0 {
		warnings = append(warnings, fmt.Sprintf("margin %.2f is negative", a.Margin))
	}
	if a.CostGrowth > 1 {
		warnings = append(warnings, fmt.Sprintf("costGrowth %.2f exceeds 100%% per year", a.CostGrowth))
	}
	if a.CostShock < -0.3 || a.CostShock > 0.3 {
		warnings = append(warnings, fmt.Sprintf("costShock %.2f is outside the typical range [-0.3, 0.3]", a.CostShock))
	}

	return warnings
}
