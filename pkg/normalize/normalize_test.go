package normalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/fundroi/fundraising-forecast/pkg/constants"
)

func TestResolvePrecedenceOrder(t *testing.T) {
	// Aliases resolve in mapping order, not header order: "amount" beats
	// "total" even when "total" appears first in the file.
	header := []string{"Total", "Amount", "GiftDate"}
	idx, err := DonationMapping().Resolve(constants.FieldAmount, header)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if idx != 1 {
		t.Errorf("Resolve() = %d, expected index 1 for the higher-precedence alias", idx)
	}
}

func TestResolveCaseAndWhitespace(t *testing.T) {
	header := []string{"  Date Received ", "AMOUNT", "VANID"}
	idx, err := DonationMapping().Resolve(constants.FieldDate, header)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if idx != 0 {
		t.Errorf("Resolve() = %d, expected 0", idx)
	}
}

func TestResolveFailureIsTyped(t *testing.T) {
	header := []string{"Foo", "Bar"}
	_, err := DonationMapping().Resolve(constants.FieldDonorID, header)
	if !errors.Is(err, ErrColumnNotResolved) {
		t.Errorf("Resolve() error = %v, expected ErrColumnNotResolved", err)
	}
}

func TestParseDonationsAliases(t *testing.T) {
	csv := strings.Join([]string{
		"Date Received,ContributionAmount,VANID,Source Code,Payment Method",
		"2025-01-10,\"$1,500.00\",V100,SPRING25,Credit Card",
		"2025-02-15,250,V101,,",
	}, "\n")

	donations, err := ParseDonations(strings.NewReader(csv), DonationMapping())
	if err != nil {
		t.Fatalf("ParseDonations() error = %v", err)
	}
	if len(donations) != 2 {
		t.Fatalf("got %d donations, expected 2", len(donations))
	}

	d := donations[0]
	if d.Amount != 1500.0 {
		t.Errorf("amount = %.2f, expected currency-formatted 1500 to parse", d.Amount)
	}
	if d.DonorID != "V100" {
		t.Errorf("donorId = %q, expected V100", d.DonorID)
	}
	if d.CampaignCode != "SPRING25" {
		t.Errorf("campaignCode = %q, expected SPRING25 via Source Code alias", d.CampaignCode)
	}
	// Payment Method doubles as channel when no channel column exists.
	if d.Channel != "Credit Card" {
		t.Errorf("channel = %q, expected payment method fallback", d.Channel)
	}

	// Blank campaign and channel default to UNMAPPED.
	if donations[1].CampaignCode != constants.UnmappedLabel || donations[1].Channel != constants.UnmappedLabel {
		t.Errorf("blank dimensions = %q/%q, expected UNMAPPED", donations[1].CampaignCode, donations[1].Channel)
	}
}

func TestParseDonationsSkipsBadDates(t *testing.T) {
	csv := strings.Join([]string{
		"date,amount,donor_id",
		"not-a-date,100,D1",
		"2025-01-10,200,D2",
	}, "\n")

	donations, err := ParseDonations(strings.NewReader(csv), DonationMapping())
	if err != nil {
		t.Fatalf("ParseDonations() error = %v", err)
	}
	if len(donations) != 1 {
		t.Fatalf("got %d donations, expected unparseable-date row to be skipped", len(donations))
	}
	if donations[0].DonorID != "D2" {
		t.Errorf("kept donor = %q, expected D2", donations[0].DonorID)
	}
}

func TestParseDonationsInvalidAmount(t *testing.T) {
	csv := strings.Join([]string{
		"date,amount,donor_id",
		"2025-01-10,one hundred,D1",
	}, "\n")

	_, err := ParseDonations(strings.NewReader(csv), DonationMapping())
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseDonations() error = %v, expected ErrInvalidInput", err)
	}
}

func TestParseDonationsMissingRequiredColumn(t *testing.T) {
	csv := "date,amount\n2025-01-10,100\n"
	_, err := ParseDonations(strings.NewReader(csv), DonationMapping())
	if !errors.Is(err, ErrColumnNotResolved) {
		t.Errorf("ParseDonations() error = %v, expected ErrColumnNotResolved for donor id", err)
	}
}

func TestParseCostsDefaults(t *testing.T) {
	csv := strings.Join([]string{
		"ExpenseDate,Cost,Campaign",
		"2025-01-05,300,SPRING25",
	}, "\n")

	costs, err := ParseCosts(strings.NewReader(csv), CostMapping())
	if err != nil {
		t.Fatalf("ParseCosts() error = %v", err)
	}
	if len(costs) != 1 {
		t.Fatalf("got %d costs, expected 1", len(costs))
	}
	c := costs[0]
	if c.CostType != "Direct" {
		t.Errorf("costType = %q, expected default Direct", c.CostType)
	}
	if c.Channel != constants.UnmappedLabel {
		t.Errorf("channel = %q, expected UNMAPPED", c.Channel)
	}
}

func TestParseBudget(t *testing.T) {
	csv := strings.Join([]string{
		"Year,Budget Revenue,Budget Cost",
		"Year 1,250000,180000",
		" Year 2 ,150000,190000",
		",0,0",
	}, "\n")

	budget, err := ParseBudget(strings.NewReader(csv), BudgetMapping())
	if err != nil {
		t.Fatalf("ParseBudget() error = %v", err)
	}
	if len(budget) != 2 {
		t.Fatalf("got %d budget rows, expected empty-year row dropped", len(budget))
	}
	if budget[1].Year != "Year 2" {
		t.Errorf("year = %q, expected trimmed Year 2", budget[1].Year)
	}
	if budget[0].Revenue != 250000.0 || budget[0].Cost != 180000.0 {
		t.Errorf("budget row 1 = %+v, expected 250000/180000", budget[0])
	}
}
