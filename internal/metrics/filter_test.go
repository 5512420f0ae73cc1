package metrics

import (
	"testing"
)

func TestFilterDateWindow(t *testing.T) {
	f := Filter{Start: day("2025-02-01"), End: day("2025-02-28")}

	donations := f.ApplyDonations(sampleDonations())
	if len(donations) != 1 {
		t.Fatalf("got %d donations, expected 1 in february", len(donations))
	}
	if donations[0].Amount != 250.0 {
		t.Errorf("filtered donation amount = %.2f, expected 250", donations[0].Amount)
	}

	costs := f.ApplyCosts(sampleCosts())
	if len(costs) != 0 {
		t.Errorf("got %d costs, expected none in february", len(costs))
	}
}

func TestFilterChannelAndCampaign(t *testing.T) {
	f := Filter{Channels: []string{"Email"}, Campaigns: []string{"SPRING"}}

	donations := f.ApplyDonations(sampleDonations())
	if len(donations) != 2 {
		t.Fatalf("got %d donations, expected 2 SPRING/Email gifts", len(donations))
	}

	costs := f.ApplyCosts(sampleCosts())
	if len(costs) != 1 {
		t.Errorf("got %d costs, expected 1 SPRING/Email cost", len(costs))
	}
}

func TestFilterSegments(t *testing.T) {
	segmented := SegmentDonors(sampleDonations())
	f := Filter{Segments: []string{"Returning"}}

	donations := f.ApplyDonations(segmented)
	if len(donations) != 1 {
		t.Fatalf("got %d donations, expected 1 returning gift", len(donations))
	}
	if donations[0].Amount != 250.0 {
		t.Errorf("returning gift amount = %.2f, expected 250", donations[0].Amount)
	}
}

func TestFilterEmptyMeansNoRestriction(t *testing.T) {
	var f Filter
	if got := len(f.ApplyDonations(sampleDonations())); got != 4 {
		t.Errorf("zero filter kept %d donations, expected all 4", got)
	}
	if got := len(f.ApplyCosts(sampleCosts())); got != 2 {
		t.Errorf("zero filter kept %d costs, expected all 2", got)
	}
}
