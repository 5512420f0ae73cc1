package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fundroi/fundraising-forecast/internal/forecast"
	"github.com/fundroi/fundraising-forecast/internal/metrics"
	"github.com/fundroi/fundraising-forecast/pkg/constants"
	"github.com/fundroi/fundraising-forecast/pkg/datetime"
)

// ParseDonations reads a donation CSV into normalized records. Rows with an
// unparseable date are skipped; a malformed amount fails fast with
// ErrInvalidInput. Missing campaign or channel values default to UNMAPPED.
func ParseDonations(r io.Reader, mapping Mapping) ([]metrics.Donation, error) {
	header, rows, err := readAll(r)
	if err != nil {
		return nil, err
	}

	dateIdx, err := mapping.Resolve(constants.FieldDate, header)
	if err != nil {
		return nil, err
	}
	amountIdx, err := mapping.Resolve(constants.FieldAmount, header)
	if err != nil {
		return nil, err
	}
	donorIdx, err := mapping.Resolve(constants.FieldDonorID, header)
	if err != nil {
		return nil, err
	}
	campaignIdx, _ := mapping.Resolve(constants.FieldCampaignCode, header)
	channelIdx, _ := mapping.Resolve(constants.FieldChannel, header)

	donations := make([]metrics.Donation, 0, len(rows))
	for i, row := range rows {
		date, err := datetime.ParseTransactionDate(cell(row, dateIdx))
		if err != nil {
			continue
		}
		amount, err := parseAmount(cell(row, amountIdx))
		if err != nil {
			return nil, fmt.Errorf("donation row %d: %w", i+2, err)
		}
		donations = append(donations, metrics.Donation{
			Date:         date,
			Amount:       amount,
			DonorID:      strings.TrimSpace(cell(row, donorIdx)),
			CampaignCode: orUnmapped(cell(row, campaignIdx)),
			Channel:      orUnmapped(cell(row, channelIdx)),
		})
	}
	return donations, nil
}

// ParseCosts reads a cost CSV into normalized records. The cost type
// defaults to Direct when the upload omits it.
func ParseCosts(r io.Reader, mapping Mapping) ([]metrics.CostRecord, error) {
	header, rows, err := readAll(r)
	if err != nil {
		return nil, err
	}

	dateIdx, err := mapping.Resolve(constants.FieldDate, header)
	if err != nil {
		return nil, err
	}
	amountIdx, err := mapping.Resolve(constants.FieldCostAmount, header)
	if err != nil {
		return nil, err
	}
	campaignIdx, _ := mapping.Resolve(constants.FieldCampaignCode, header)
	channelIdx, _ := mapping.Resolve(constants.FieldChannel, header)
	typeIdx, _ := mapping.Resolve(constants.FieldCostType, header)
	notesIdx, _ := mapping.Resolve(constants.FieldNotes, header)

	costs := make([]metrics.CostRecord, 0, len(rows))
	for i, row := range rows {
		date, err := datetime.ParseTransactionDate(cell(row, dateIdx))
		if err != nil {
			continue
		}
		amount, err := parseAmount(cell(row, amountIdx))
		if err != nil {
			return nil, fmt.Errorf("cost row %d: %w", i+2, err)
		}
		costType := strings.TrimSpace(cell(row, typeIdx))
		if costType == "" {
			costType = "Direct"
		}
		costs = append(costs, metrics.CostRecord{
			Date:         date,
			Amount:       amount,
			CampaignCode: orUnmapped(cell(row, campaignIdx)),
			Channel:      orUnmapped(cell(row, channelIdx)),
			CostType:     costType,
			Notes:        strings.TrimSpace(cell(row, notesIdx)),
		})
	}
	return costs, nil
}

// ParseBudget reads a budget comparison CSV into budget rows for the
// forecast reconciler. Year labels are trimmed here; the reconciler matches
// them exactly.
func ParseBudget(r io.Reader, mapping Mapping) ([]forecast.BudgetRow, error) {
	header, rows, err := readAll(r)
	if err != nil {
		return nil, err
	}

	yearIdx, err := mapping.Resolve(constants.FieldBudgetYear, header)
	if err != nil {
		return nil, err
	}
	revenueIdx, err := mapping.Resolve(constants.FieldBudgetRevenue, header)
	if err != nil {
		return nil, err
	}
	costIdx, err := mapping.Resolve(constants.FieldBudgetCost, header)
	if err != nil {
		return nil, err
	}

	budget := make([]forecast.BudgetRow, 0, len(rows))
	for i, row := range rows {
		year := strings.TrimSpace(cell(row, yearIdx))
		if year == "" {
			continue
		}
		revenue, err := parseAmount(cell(row, revenueIdx))
		if err != nil {
			return nil, fmt.Errorf("budget row %d: %w", i+2, err)
		}
		cost, err := parseAmount(cell(row, costIdx))
		if err != nil {
			return nil, fmt.Errorf("budget row %d: %w", i+2, err)
		}
		budget = append(budget, forecast.BudgetRow{Year: year, Revenue: revenue, Cost: cost})
	}
	return budget, nil
}

func readAll(r io.Reader) (header []string, rows [][]string, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv has no header row")
	}
	return records[0], records[1:], nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseAmount accepts plain numbers plus common currency formatting
// ($ sign, thousands separators).
func parseAmount(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not numeric", ErrInvalidInput, value)
	}
	return amount, nil
}

func orUnmapped(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.UnmappedLabel
	}
	return trimmed
}
