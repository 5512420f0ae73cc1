// Package constants provides shared constants for the fundraising-forecast application.
package constants

// ForecastYears is the fixed strategic planning horizon.
const ForecastYears = 3

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Recommendation thresholds. These are defaults; the config file may override
// the retention and cost growth cutoffs.
const (
	// BreakevenROIMultiple separates negative-return from positive-return strategies
	BreakevenROIMultiple = 1.0

	// StrongROIMultiple separates moderate from strong 3-year returns
	StrongROIMultiple = 2.0

	// DefaultLowRetentionThreshold flags scenarios with weak donor retention
	DefaultLowRetentionThreshold = 0.55

	// DefaultHighCostGrowthThreshold flags scenarios with aggressive cost growth
	DefaultHighCostGrowthThreshold = 0.10
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for CSV files (4 MB)
	DefaultMaxUploadSizeBytes int64 = 4 * 1024 * 1024
)

// Canonical field names for normalized transaction records.
const (
	FieldDate         = "date"
	FieldAmount       = "amount"
	FieldCostAmount   = "cost_amount"
	FieldDonorID      = "donor_id"
	FieldCampaignCode = "campaign_code"
	FieldChannel      = "channel"
	FieldCostType     = "cost_type"
	FieldNotes        = "notes"

	FieldBudgetYear    = "year"
	FieldBudgetRevenue = "budget_revenue"
	FieldBudgetCost    = "budget_cost"
)

// UnmappedLabel is assigned to campaign and channel values that the upload
// did not provide.
const UnmappedLabel = "UNMAPPED"

// Donor segment labels.
const (
	SegmentNew       = "New"
	SegmentReturning = "Returning"
)
