// Package forecast implements the 3-year strategic fundraising forecast:
// revenue and cost projection, row assembly, budget reconciliation, and
// derived advisory text. Every function is pure over its inputs; nothing in
// this package performs I/O or holds state between invocations.
package forecast

import (
	"fmt"

	"github.com/fundroi/fundraising-forecast/internal/config"
	"github.com/fundroi/fundraising-forecast/pkg/constants"
	"github.com/fundroi/fundraising-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// Assumptions is the immutable macro input record. Values are not range
// validated here; out-of-range inputs propagate through the arithmetic
// unchanged. pkg/validation surfaces range issues as warnings at config load.
type Assumptions struct {
	TotalRaisedY1            float64
	BaseCostY1               float64
	Retention                float64
	RevenueMethod            RevenueMethod
	RevenueShock             float64
	Margin                   float64
	CostGrowth               float64
	CostShock                float64
	AcquisitionCostYear1Only bool
}

// Row is one forecast year. Net and the ROI columns are always derived from
// Revenue and Cost, never stored independently.
type Row struct {
	Year        string  `json:"year"`
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	Net         float64 `json:"net"`
	ROIMultiple float64 `json:"roiMultiple"`
	ROIPercent  float64 `json:"roiPercent"`
}

// Summary rolls the 3-year rows into headline KPIs.
type Summary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalCost     float64 `json:"totalCost"`
	TotalNet      float64 `json:"totalNet"`
	ROIMultiple   float64 `json:"roiMultiple"`
	CostPerDollar float64 `json:"costPerDollar"`
}

// Forecast holds the full result for one scenario.
type Forecast struct {
	Name            string        `json:"name"`
	Assumptions     Assumptions   `json:"-"`
	Rows            []Row         `json:"rows"`
	Summary         Summary       `json:"summary"`
	Variance        []VarianceRow `json:"variance,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
	Interpretation  []string      `json:"interpretation,omitempty"`
}

// YearLabel returns the chronological label for a zero-based year index.
func YearLabel(i int) string {
	return fmt.Sprintf("Year %d", i+1)
}

// BuildRows zips the revenue and cost series into chronological rows and
// derives Net, ROI Multiple, and ROI %. A zero-cost year yields an ROI
// Multiple of exactly 0.0 rather than NaN.
func BuildRows(revenue, cost []float64) []Row {
	rows := make([]Row, constants.ForecastYears)
	for i := range rows {
		roi := mathutil.SafeDiv(revenue[i], cost[i])
		rows[i] = Row{
			Year:        YearLabel(i),
			Revenue:     revenue[i],
			Cost:        cost[i],
			Net:         revenue[i] - cost[i],
			ROIMultiple: roi,
			ROIPercent:  roi - 1.0,
		}
	}
	return rows
}

// Summarize rolls rows up into 3-year totals with zero-guarded ratios.
func Summarize(rows []Row) Summary {
	var s Summary
	for _, row := range rows {
		s.TotalRevenue += row.Revenue
		s.TotalCost += row.Cost
		s.TotalNet += row.Net
	}
	s.ROIMultiple = mathutil.SafeDiv(s.TotalRevenue, s.TotalCost)
	s.CostPerDollar = mathutil.SafeDiv(s.TotalCost, s.TotalRevenue)
	return s
}

// Build computes the complete forecast for one set of assumptions. budget may
// be nil or empty; a budget whose year labels never match yields no variance
// rows, which callers surface as "no budget comparison available".
func Build(a Assumptions, budget []BudgetRow, th Thresholds) Forecast {
	revenue := ProjectRevenue(a.TotalRaisedY1, a.Retention, a.RevenueMethod, a.RevenueShock)
	cost := ProjectCost(a.BaseCostY1, a.Margin, a.CostGrowth, a.CostShock, a.AcquisitionCostYear1Only)

	rows := BuildRows(revenue, cost)
	summary := Summarize(rows)
	variance := Reconcile(rows, budget)

	f := Forecast{
		Assumptions:     a,
		Rows:            rows,
		Summary:         summary,
		Variance:        variance,
		Recommendations: Recommend(summary, a, th),
	}
	f.Interpretation = Interpret(f)
	return f
}

// Run computes forecasts for every active scenario in the configuration, in
// declaration order.
func Run(logger *zap.Logger, conf config.Configuration) []Forecast {
	if logger == nil {
		logger = zap.NewNop()
	}

	th := Thresholds{
		LowRetention:   conf.Thresholds.LowRetention,
		HighCostGrowth: conf.Thresholds.HighCostGrowth,
	}
	budget := budgetFromConfig(conf.Budget)

	var results []Forecast
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.Run"),
			)
			continue
		}

		result := Build(assumptionsFromScenario(scenario), budget, th)
		result.Name = scenario.Name
		logger.Debug("computed scenario forecast",
			zap.String("op", "forecast.Run"),
			zap.String("scenario", scenario.Name),
			zap.Float64("totalRevenue", result.Summary.TotalRevenue),
			zap.Float64("totalCost", result.Summary.TotalCost),
			zap.Float64("roiMultiple", result.Summary.ROIMultiple),
		)
		results = append(results, result)
	}
	return results
}

// assumptionsFromScenario applies the canonical defaults: revenue method
// PRIOR and acquisition cost confined to year 1 unless the config says
// otherwise.
func assumptionsFromScenario(s config.Scenario) Assumptions {
	method := RevenueMethod(s.RevenueMethod)
	if method == "" {
		method = RevenueMethodPrior
	}
	year1Only := true
	if s.AcquisitionCostYear1Only != nil {
		year1Only = *s.AcquisitionCostYear1Only
	}
	return Assumptions{
		TotalRaisedY1:            s.TotalRaisedY1,
		BaseCostY1:               s.BaseCostY1,
		Retention:                s.Retention,
		RevenueMethod:            method,
		RevenueShock:             s.RevenueShock,
		Margin:                   s.Margin,
		CostGrowth:               s.CostGrowth,
		CostShock:                s.CostShock,
		AcquisitionCostYear1Only: year1Only,
	}
}

func budgetFromConfig(rows []config.BudgetRow) []BudgetRow {
	if len(rows) == 0 {
		return nil
	}
	budget := make([]BudgetRow, len(rows))
	for i, row := range rows {
		budget[i] = BudgetRow{Year: row.Year, Revenue: row.Revenue, Cost: row.Cost}
	}
	return budget
}
