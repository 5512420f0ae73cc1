// Package config defines the data structures related to configuration and
// includes functions for loading and normalizing the config.
package config

import (
	"fmt"

	"github.com/fundroi/fundraising-forecast/pkg/constants"
	"github.com/fundroi/fundraising-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for fundraising-forecast.
type Configuration struct {
	Scenarios  []Scenario
	Budget     []BudgetRow      `yaml:"budget,omitempty"`
	Thresholds ThresholdsConfig `yaml:"thresholds,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Report     ReportConfig     `yaml:"report,omitempty"`
}

// Scenario holds one named set of macro assumptions. Presets such as Base,
// Conservative, and Optimistic are plain scenarios in the config file; the
// engine treats them all identically.
type Scenario struct {
	Name   string
	Active bool

	TotalRaisedY1 float64 `mapstructure:"totalRaisedY1"`
	BaseCostY1    float64 `mapstructure:"baseCostY1"`
	Retention     float64
	RevenueMethod string  `mapstructure:"revenueMethod"` // prior, remaining; empty means prior
	RevenueShock  float64 `mapstructure:"revenueShock"`
	Margin        float64
	CostGrowth    float64 `mapstructure:"costGrowth"`
	CostShock     float64 `mapstructure:"costShock"`

	// nil means the canonical default (true).
	AcquisitionCostYear1Only *bool `mapstructure:"acquisitionCostYear1Only"`
}

// BudgetRow is one year of the optional budget comparison table.
type BudgetRow struct {
	Year    string
	Revenue float64
	Cost    float64
}

// ThresholdsConfig overrides the advisory rule cutoffs. Zero values fall
// back to the defaults in pkg/constants.
type ThresholdsConfig struct {
	LowRetention   float64 `mapstructure:"lowRetention"`
	HighCostGrowth float64 `mapstructure:"highCostGrowth"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ReportConfig gates which derived sections accompany the forecast table.
// These are explicit per-run options, replacing what used to be a
// process-wide export toggle in the legacy dashboard.
type ReportConfig struct {
	// nil means enabled.
	Recommendations *bool `mapstructure:"recommendations"`
	Interpretation  *bool `mapstructure:"interpretation"`
}

// IncludeRecommendations reports whether advisory text should be rendered.
func (r ReportConfig) IncludeRecommendations() bool {
	return r.Recommendations == nil || *r.Recommendations
}

// IncludeInterpretation reports whether the narrative summary should be rendered.
func (r ReportConfig) IncludeInterpretation() bool {
	return r.Interpretation == nil || *r.Interpretation
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Out-of-range assumptions are never fatal; the engine
// deliberately passes them through unchanged.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "no scenarios defined; nothing to forecast")
	}

	anyActive := false
	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			continue
		}
		anyActive = true
		for _, w := range validation.AssumptionWarnings(validation.AssumptionRanges{
			TotalRaisedY1: scenario.TotalRaisedY1,
			BaseCostY1:    scenario.BaseCostY1,
			Retention:     scenario.Retention,
			RevenueMethod: scenario.RevenueMethod,
			RevenueShock:  scenario.RevenueShock,
			Margin:        scenario.Margin,
			CostGrowth:    scenario.CostGrowth,
			CostShock:     scenario.CostShock,
		}) {
			warnings = append(warnings, fmt.Sprintf("scenario %s: %s", scenario.Name, w))
		}
	}
	if len(c.Scenarios) > 0 && !anyActive {
		warnings = append(warnings, "all scenarios are inactive; nothing to forecast")
	}

	for i, row := range c.Budget {
		if row.Year == "" {
			warnings = append(warnings, fmt.Sprintf("budget row %d has an empty year label and will never match a forecast year", i+1))
		}
	}

	if c.Thresholds.LowRetention < 0 || c.Thresholds.LowRetention > 1 {
		warnings = append(warnings, fmt.Sprintf("thresholds.lowRetention %.2f is outside [0, 1]; default %.2f will apply where zero",
			c.Thresholds.LowRetention, constants.DefaultLowRetentionThreshold))
	}

	return warnings
}
