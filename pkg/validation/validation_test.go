package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv", "json"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) error = %v", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(xml) expected error")
	}
}

func TestAssumptionWarningsInRange(t *testing.T) {
	a := AssumptionRanges{
		TotalRaisedY1: 250000.0,
		BaseCostY1:    150000.0,
		Retention:     0.60,
		RevenueMethod: "prior",
		RevenueShock:  -0.10,
		Margin:        0.20,
		CostGrowth:    0.05,
		CostShock:     0.05,
	}
	if warnings := AssumptionWarnings(a); len(warnings) != 0 {
		t.Errorf("in-range assumptions produced warnings: %v", warnings)
	}
}

func TestAssumptionWarningsOutOfRange(t *testing.T) {
	a := AssumptionRanges{
		TotalRaisedY1: -1.0,
		BaseCostY1:    -1.0,
		Retention:     1.5,
		RevenueMethod: "linear",
		RevenueShock:  -0.5,
		Margin:        -0.1,
		CostGrowth:    1.2,
		CostShock:     0.4,
	}
	warnings := AssumptionWarnings(a)
	if len(warnings) != 8 {
		t.Fatalf("got %d warnings, expected one per out-of-range field: %v", len(warnings), warnings)
	}

	joined := strings.Join(warnings, "\n")
	for _, want := range []string{
		"totalRaisedY1", "baseCostY1", "retention", "revenueMethod",
		"revenueShock", "margin", "costGrowth", "costShock",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("warnings missing %q:\n%s", want, joined)
		}
	}
}

func TestAssumptionWarningsEmptyMethodAccepted(t *testing.T) {
	warnings := AssumptionWarnings(AssumptionRanges{Retention: 0.5})
	if len(warnings) != 0 {
		t.Errorf("empty revenueMethod should not warn, got %v", warnings)
	}
}
