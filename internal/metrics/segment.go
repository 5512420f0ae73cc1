package metrics

import (
	"sort"
	"time"

	"github.com/fundroi/fundraising-forecast/pkg/constants"
	"github.com/fundroi/fundraising-forecast/pkg/datetime"
)

// SegmentDonors labels each donation "New" or "Returning" relative to the
// donor's earliest gift within the dataset. Equality against the per-donor
// minimum timestamp means multiple gifts at the identical earliest instant
// are all "New". The input slice is not mutated.
func SegmentDonors(donations []Donation) []Donation {
	earliest := make(map[string]time.Time, len(donations))
	for _, d := range donations {
		first, ok := earliest[d.DonorID]
		if !ok || d.Date.Before(first) {
			earliest[d.DonorID] = d.Date
		}
	}

	out := make([]Donation, len(donations))
	for i, d := range donations {
		if d.Date.Equal(earliest[d.DonorID]) {
			d.Segment = constants.SegmentNew
		} else {
			d.Segment = constants.SegmentReturning
		}
		out[i] = d
	}
	return out
}

// TrendRow is one month of the raised-vs-costs trend.
type TrendRow struct {
	Month  string  `json:"month"`
	Raised float64 `json:"raised"`
	Costs  float64 `json:"costs"`
	Net    float64 `json:"net"`
}

// MonthlyTrend buckets donations and costs into calendar months and returns
// the series in chronological order.
func MonthlyTrend(donations []Donation, costs []CostRecord) []TrendRow {
	raised := make(map[string]float64)
	spent := make(map[string]float64)

	for _, d := range donations {
		raised[datetime.MonthFloor(d.Date)] += d.Amount
	}
	for _, c := range costs {
		spent[datetime.MonthFloor(c.Date)] += c.Amount
	}

	months := make(map[string]struct{}, len(raised)+len(spent))
	for m := range raised {
		months[m] = struct{}{}
	}
	for m := range spent {
		months[m] = struct{}{}
	}

	rows := make([]TrendRow, 0, len(months))
	for m := range months {
		rows = append(rows, TrendRow{
			Month:  m,
			Raised: raised[m],
			Costs:  spent[m],
			Net:    raised[m] - spent[m],
		})
	}
	// Month labels are zero-padded YYYY-MM, so string order is chronological.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}
