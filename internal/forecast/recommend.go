package forecast

import "github.com/fundroi/fundraising-forecast/pkg/constants"

// Thresholds holds the configurable cutoffs for the advisory rules.
type Thresholds struct {
	LowRetention   float64
	HighCostGrowth float64
}

// DefaultThresholds returns the standard advisory cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LowRetention:   constants.DefaultLowRetentionThreshold,
		HighCostGrowth: constants.DefaultHighCostGrowthThreshold,
	}
}

// Recommend derives advisory strings from the summary KPIs and input flags.
// The three ROI bands are mutually exclusive; exactly one fires. The
// remaining rules are independent flags evaluated in a fixed order.
func Recommend(s Summary, a Assumptions, th Thresholds) []string {
	if th.LowRetention == 0 {
		th.LowRetention = constants.DefaultLowRetentionThreshold
	}
	if th.HighCostGrowth == 0 {
		th.HighCostGrowth = constants.DefaultHighCostGrowthThreshold
	}

	var recs []string

	switch {
	case s.ROIMultiple < constants.BreakevenROIMultiple:
		recs = append(recs, "3-year ROI is below 1.0x — modeled cost exceeds return; consider reducing Year 1 acquisition cost, improving retention, or rebalancing channels toward higher-return sources.")
	case s.ROIMultiple < constants.StrongROIMultiple:
		recs = append(recs, "3-year ROI is moderately positive (between 1.0x and 2.0x) — the strategy covers its cost; look for efficiency improvements to widen the margin.")
	default:
		recs = append(recs, "3-year ROI is strong (2.0x or better) — strategy appears sustainable under current assumptions; consider scaling what's working.")
	}

	if a.Retention < th.LowRetention {
		recs = append(recs, "Retention is relatively low — stewardship strategies (recurring gifts, donor journeys, major-donor follow-up) may produce outsized improvements.")
	}

	if a.CostGrowth > th.HighCostGrowth {
		recs = append(recs, "Cost growth is high — consider tighter budget controls or shifting effort toward lower-cost fundraising mechanisms.")
	}

	if a.RevenueShock < 0 {
		recs = append(recs, "Revenue shock is negative — use the conservative scenario as a planning baseline and build a contingency plan.")
	}

	if a.AcquisitionCostYear1Only {
		recs = append(recs, "Model assumes Year 2-3 costs are primarily stewardship/maintenance (not full acquisition), aligned with a donor retention strategy.")
	}

	return recs
}
