package metrics

import (
	"testing"

	"github.com/fundroi/fundraising-forecast/pkg/constants"
)

func TestSegmentDonorsFirstGiftIsNew(t *testing.T) {
	donations := []Donation{
		{Date: day("2025-01-10"), Amount: 100.0, DonorID: "D1"},
		{Date: day("2025-02-15"), Amount: 250.0, DonorID: "D1"},
		{Date: day("2025-03-01"), Amount: 50.0, DonorID: "D1"},
		{Date: day("2025-02-01"), Amount: 500.0, DonorID: "D2"},
	}

	segmented := SegmentDonors(donations)

	wantSegments := []string{
		constants.SegmentNew,
		constants.SegmentReturning,
		constants.SegmentReturning,
		constants.SegmentNew,
	}
	for i, want := range wantSegments {
		if segmented[i].Segment != want {
			t.Errorf("donation %d segment = %q, expected %q", i, segmented[i].Segment, want)
		}
	}

	// Input order is unchanged and the input slice is not mutated.
	for i := range donations {
		if donations[i].Segment != "" {
			t.Errorf("input donation %d was mutated: segment %q", i, donations[i].Segment)
		}
	}
}

func TestSegmentDonorsEarliestDateTieAllNew(t *testing.T) {
	// Two gifts at the identical earliest instant are both New; the
	// comparison is equality against the per-donor minimum, not a pick-one.
	donations := []Donation{
		{Date: day("2025-01-10"), Amount: 100.0, DonorID: "D1"},
		{Date: day("2025-01-10"), Amount: 200.0, DonorID: "D1"},
		{Date: day("2025-02-15"), Amount: 250.0, DonorID: "D1"},
	}

	segmented := SegmentDonors(donations)
	if segmented[0].Segment != constants.SegmentNew || segmented[1].Segment != constants.SegmentNew {
		t.Errorf("tied earliest gifts = %q, %q; expected both New", segmented[0].Segment, segmented[1].Segment)
	}
	if segmented[2].Segment != constants.SegmentReturning {
		t.Errorf("later gift = %q, expected Returning", segmented[2].Segment)
	}
}

func TestMonthlyTrend(t *testing.T) {
	rows := MonthlyTrend(sampleDonations(), sampleCosts())

	if len(rows) != 3 {
		t.Fatalf("got %d months, expected 3", len(rows))
	}
	wantMonths := []string{"2025-01", "2025-02", "2025-03"}
	for i, want := range wantMonths {
		if rows[i].Month != want {
			t.Errorf("month %d = %q, expected %q (chronological)", i, rows[i].Month, want)
		}
	}

	// January: 100 + 500 raised, 300 + 400 costs.
	jan := rows[0]
	if jan.Raised != 600.0 || jan.Costs != 700.0 || jan.Net != -100.0 {
		t.Errorf("january = %+v, expected raised 600, costs 700, net -100", jan)
	}

	// March has donations but no costs.
	mar := rows[2]
	if mar.Raised != 150.0 || mar.Costs != 0.0 {
		t.Errorf("march = %+v, expected raised 150, costs 0", mar)
	}
}
