package forecast

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fundroi/fundraising-forecast/pkg/constants"
)

// Interpret builds a short narrative summary of a computed forecast for
// executive reporting: headline totals, ROI framing, the ROI trend across
// the horizon, the cost-modeling assumption, and the budget variance when a
// comparison is available.
func Interpret(f Forecast) []string {
	p := message.NewPrinter(language.English)
	s := f.Summary

	roiPct := (s.ROIMultiple - 1.0) * constants.PercentageMultiplier
	if roiPct < 0 && s.ROIMultiple == 0 {
		// Zero-cost forecasts report an ROI multiple of 0; don't frame
		// that as a -100% return.
		roiPct = 0
	}

	lines := []string{
		p.Sprintf("Over the 3-year horizon, the model projects $%.0f in revenue against $%.0f in modeled fundraising cost, for a net of $%.0f.",
			s.TotalRevenue, s.TotalCost, s.TotalNet),
		p.Sprintf("That corresponds to an overall ROI of %.2fx (approximately %.1f%%) and a cost to raise $1 of $%.2f.",
			s.ROIMultiple, roiPct, s.CostPerDollar),
	}

	if len(f.Rows) >= 2 {
		first := f.Rows[0].ROIPercent
		last := f.Rows[len(f.Rows)-1].ROIPercent
		switch {
		case last > first:
			lines = append(lines, "ROI improves over time, suggesting retained/repeat value outweighs modeled cost growth.")
		case last < first:
			lines = append(lines, "ROI declines over time, suggesting cost growth or weaker retention is outpacing retained revenue.")
		default:
			lines = append(lines, "ROI appears relatively stable across the 3 years under current assumptions.")
		}
	}

	if f.Assumptions.AcquisitionCostYear1Only {
		lines = append(lines, "Costs assume Year 1 includes acquisition effort, while Years 2-3 reflect lower ongoing stewardship cost, adjusted by the selected cost growth and any cost shock.")
	}

	if len(f.Variance) > 0 {
		var revVar, costVar, netVar float64
		for _, v := range f.Variance {
			revVar += v.RevenueVar
			costVar += v.CostVar
			netVar += v.NetVar
		}
		lines = append(lines, p.Sprintf("Against the uploaded budget, the 3-year forecast shows revenue variance %s, cost variance %s, and net variance %s (Forecast - Budget).",
			signedCurrency(p, revVar), signedCurrency(p, costVar), signedCurrency(p, netVar)))
	}

	return lines
}

func signedCurrency(p *message.Printer, v float64) string {
	if v < 0 {
		return p.Sprintf("-$%.0f", -v)
	}
	return p.Sprintf("+$%.0f", v)
}
