package metrics

import "time"

// Filter restricts donations and costs to a date window and optional
// channel/campaign/segment sets before KPI and rollup computation. Nil or
// empty sets mean no restriction on that field.
type Filter struct {
	Start     time.Time
	End       time.Time
	Channels  []string
	Campaigns []string
	Segments  []string
}

// ApplyDonations returns the donations passing the filter. Segment filtering
// assumes SegmentDonors has already run.
func (f Filter) ApplyDonations(donations []Donation) []Donation {
	var out []Donation
	for _, d := range donations {
		if !f.inWindow(d.Date) {
			continue
		}
		if !matches(f.Channels, d.Channel) || !matches(f.Campaigns, d.CampaignCode) || !matches(f.Segments, d.Segment) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ApplyCosts returns the cost records passing the filter. Costs carry no
// donor segment, so the segment set is ignored.
func (f Filter) ApplyCosts(costs []CostRecord) []CostRecord {
	var out []CostRecord
	for _, c := range costs {
		if !f.inWindow(c.Date) {
			continue
		}
		if !matches(f.Channels, c.Channel) || !matches(f.Campaigns, c.CampaignCode) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f Filter) inWindow(t time.Time) bool {
	if !f.Start.IsZero() && t.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && t.After(f.End) {
		return false
	}
	return true
}

func matches(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
