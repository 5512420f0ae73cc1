package forecast

import "strings"

// BudgetRow is one externally supplied budget year, pre-parsed by the caller.
type BudgetRow struct {
	Year    string  `json:"year"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
}

// VarianceRow is Forecast minus Budget for one matched year. Budget Net is
// derived as Budget Revenue - Budget Cost.
type VarianceRow struct {
	Year       string  `json:"year"`
	RevenueVar float64 `json:"revenueVar"`
	CostVar    float64 `json:"costVar"`
	NetVar     float64 `json:"netVar"`
}

// Reconcile joins budget rows against the forecast by trimmed year label.
// The match is exact string equality; no fuzzy matching. Duplicate budget
// rows sharing a trimmed label keep the first occurrence. Forecast years
// without a budget counterpart produce no variance row and contribute
// nothing to variance sums. A budget whose labels never match yields an
// empty result, never an error.
func Reconcile(rows []Row, budget []BudgetRow) []VarianceRow {
	if len(budget) == 0 {
		return nil
	}

	byYear := make(map[string]BudgetRow, len(budget))
	for _, b := range budget {
		year := strings.TrimSpace(b.Year)
		if _, ok := byYear[year]; ok {
			continue
		}
		byYear[year] = b
	}

	var variance []VarianceRow
	for _, row := range rows {
		b, ok := byYear[strings.TrimSpace(row.Year)]
		if !ok {
			continue
		}
		variance = append(variance, VarianceRow{
			Year:       row.Year,
			RevenueVar: row.Revenue - b.Revenue,
			CostVar:    row.Cost - b.Cost,
			NetVar:     row.Net - (b.Revenue - b.Cost),
		})
	}
	return variance
}
