// Package metrics computes transaction-level fundraising KPIs and rollups
// from normalized donation and cost records. Like the forecast engine, every
// function here is pure and single-pass.
package metrics

import (
	"sort"
	"time"

	"github.com/fundroi/fundraising-forecast/pkg/mathutil"
)

// Donation is one normalized gift record.
type Donation struct {
	Date         time.Time `json:"date"`
	Amount       float64   `json:"amount"`
	DonorID      string    `json:"donorId"`
	CampaignCode string    `json:"campaignCode"`
	Channel      string    `json:"channel"`
	Segment      string    `json:"segment,omitempty"` // set by SegmentDonors
}

// CostRecord is one normalized expense record.
type CostRecord struct {
	Date         time.Time `json:"date"`
	Amount       float64   `json:"amount"`
	CampaignCode string    `json:"campaignCode"`
	Channel      string    `json:"channel"`
	CostType     string    `json:"costType,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

// KPISet holds the aggregate micro metrics. Note that roi here is
// net/total_costs (a return on spend, which can be negative), not the
// revenue/cost multiple the macro forecast reports.
type KPISet struct {
	TotalRaised  float64 `json:"totalRaised"`
	TotalCosts   float64 `json:"totalCosts"`
	NetRaised    float64 `json:"netRaised"`
	ROI          float64 `json:"roi"`
	CostToRaise1 float64 `json:"costToRaise1"`
	Donors       int     `json:"donors"`
	Gifts        int     `json:"gifts"`
	AvgGift      float64 `json:"avgGift"`
}

// ComputeKPIs aggregates donations and costs into a KPISet. All ratios are
// zero-guarded; empty inputs yield zeros, never errors.
func ComputeKPIs(donations []Donation, costs []CostRecord) KPISet {
	var k KPISet
	donorSet := make(map[string]struct{})

	for _, d := range donations {
		k.TotalRaised += d.Amount
		donorSet[d.DonorID] = struct{}{}
	}
	for _, c := range costs {
		k.TotalCosts += c.Amount
	}

	k.NetRaised = k.TotalRaised - k.TotalCosts
	if k.TotalCosts > 0 {
		k.ROI = k.NetRaised / k.TotalCosts
	}
	if k.TotalRaised > 0 {
		k.CostToRaise1 = k.TotalCosts / k.TotalRaised
	}

	k.Gifts = len(donations)
	if k.Gifts > 0 {
		k.Donors = len(donorSet)
		k.AvgGift = mathutil.SafeDiv(k.TotalRaised, float64(k.Gifts))
	}
	return k
}

// Dimension selects the grouping column for rollups.
type Dimension func(campaignCode, channel string) string

// ByCampaign groups rollups by campaign code.
func ByCampaign(campaignCode, _ string) string { return campaignCode }

// ByChannel groups rollups by channel.
func ByChannel(_, channel string) string { return channel }

// RollupRow is one group of the per-dimension rollup.
type RollupRow struct {
	Group        string  `json:"group"`
	Raised       float64 `json:"raised"`
	Costs        float64 `json:"costs"`
	Net          float64 `json:"net"`
	ROI          float64 `json:"roi"`
	CostToRaise1 float64 `json:"costToRaise1"`
}

// ComputeRollups groups both inputs by the given dimension and outer-joins
// the groups: a group present on only one side gets zero on the other. Rows
// are returned sorted descending by raised amount (ties by group label);
// callers are free to re-sort.
func ComputeRollups(donations []Donation, costs []CostRecord, dim Dimension) []RollupRow {
	raised := make(map[string]float64)
	spent := make(map[string]float64)

	for _, d := range donations {
		raised[dim(d.CampaignCode, d.Channel)] += d.Amount
	}
	for _, c := range costs {
		spent[dim(c.CampaignCode, c.Channel)] += c.Amount
	}

	groups := make(map[string]struct{}, len(raised)+len(spent))
	for g := range raised {
		groups[g] = struct{}{}
	}
	for g := range spent {
		groups[g] = struct{}{}
	}

	rows := make([]RollupRow, 0, len(groups))
	for g := range groups {
		row := RollupRow{
			Group:  g,
			Raised: raised[g],
			Costs:  spent[g],
		}
		row.Net = row.Raised - row.Costs
		if row.Costs > 0 {
			row.ROI = row.Net / row.Costs
		}
		if row.Raised > 0 {
			row.CostToRaise1 = row.Costs / row.Raised
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Raised != rows[j].Raised {
			return rows[i].Raised > rows[j].Raised
		}
		return rows[i].Group < rows[j].Group
	})
	return rows
}
