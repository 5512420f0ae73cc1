// Package normalize maps raw CSV uploads onto the canonical record schema.
// Column resolution uses an explicit mapping table (canonical field to an
// ordered list of accepted aliases) so the accepted headers can evolve
// without touching the engines that consume the records.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fundroi/fundraising-forecast/pkg/constants"
)

// ErrColumnNotResolved reports that no alias for a canonical field appeared
// in the upload's header. It is distinct from a resolved column holding an
// empty value on some row.
var ErrColumnNotResolved = errors.New("column not resolved")

// ErrInvalidInput reports a malformed cell value (e.g. a non-numeric amount).
// This is a precondition violation, not part of normal operation.
var ErrInvalidInput = errors.New("invalid input")

// Mapping is an ordered alias table: canonical field name to the accepted
// header spellings, highest precedence first. Header comparison is
// case-insensitive on trimmed values.
type Mapping map[string][]string

// Resolve returns the index in header of the first alias (in precedence
// order) for the canonical field, or ErrColumnNotResolved when no alias
// matches.
func (m Mapping) Resolve(field string, header []string) (int, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}
	for _, alias := range m[field] {
		want := normalizeHeader(alias)
		for i, h := range normalized {
			if h == want {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("field %s: %w", field, ErrColumnNotResolved)
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// DonationMapping is the default alias table for donation uploads, covering
// common CRM export spellings.
func DonationMapping() Mapping {
	return Mapping{
		constants.FieldDate: {
			"date", "giftdate", "contributiondate", "transactiondate",
			"receiveddate", "date received",
		},
		constants.FieldAmount: {
			"amount", "contributionamount", "giftamount", "total",
		},
		constants.FieldDonorID: {
			"donor_id", "vanid", "personid", "donorid", "contactid", "id",
		},
		constants.FieldCampaignCode: {
			"campaign_code", "appealcode", "campaign", "sourcecode",
			"fundraisingcode", "appeal", "source code",
		},
		// Payment method doubles as channel when that's all the export has.
		constants.FieldChannel: {
			"channel", "source", "medium", "fundraisingsource", "payment method",
		},
	}
}

// CostMapping is the default alias table for cost uploads.
func CostMapping() Mapping {
	return Mapping{
		constants.FieldDate: {
			"date", "expensedate", "paiddate", "transactiondate",
		},
		constants.FieldCostAmount: {
			"cost_amount", "amount", "expense", "cost", "total",
		},
		constants.FieldCampaignCode: {
			"campaign_code", "appealcode", "campaign", "sourcecode",
			"fundraisingcode", "appeal",
		},
		constants.FieldChannel: {
			"channel", "source", "medium",
		},
		constants.FieldCostType: {
			"cost_type", "type", "category",
		},
		constants.FieldNotes: {
			"notes", "memo", "description",
		},
	}
}

// BudgetMapping is the default alias table for budget comparison uploads.
func BudgetMapping() Mapping {
	return Mapping{
		constants.FieldBudgetYear: {
			"year", "period", "forecast year",
		},
		constants.FieldBudgetRevenue: {
			"budget revenue", "revenue", "budget_revenue", "budgeted revenue",
		},
		constants.FieldBudgetCost: {
			"budget cost", "cost", "budget_cost", "budgeted cost",
		},
	}
}
