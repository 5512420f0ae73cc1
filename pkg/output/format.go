// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fundroi/fundraising-forecast/internal/forecast"
)

// Options gates the derived sections accompanying the forecast table. These
// are explicit per-run settings sourced from the report config section.
type Options struct {
	Recommendations bool
	Interpretation  bool
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []forecast.Forecast, opts Options) {
	FprettyFormat(os.Stdout, results, opts)
}

// FprettyFormat writes the pretty format to the given writer.
func FprettyFormat(w io.Writer, results []forecast.Forecast, opts Options) {
	p := message.NewPrinter(language.English)
	for n, result := range results {
		fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)
		fmt.Fprintf(w, "Year    | Revenue       | Cost          | Net           | ROI\n")
		fmt.Fprintf(w, "____    | _______       | ____          | ___           | ___\n")
		for _, row := range result.Rows {
			_, _ = p.Fprintf(w, "%s | $%.2f | $%.2f | $%.2f | %.2fx\n",
				row.Year, row.Revenue, row.Cost, row.Net, row.ROIMultiple)
		}
		_, _ = p.Fprintf(w, "3-year totals: revenue $%.2f, cost $%.2f, net $%.2f, ROI %.2fx, cost per $1 $%.2f\n",
			result.Summary.TotalRevenue, result.Summary.TotalCost, result.Summary.TotalNet,
			result.Summary.ROIMultiple, result.Summary.CostPerDollar)

		if len(result.Variance) > 0 {
			fmt.Fprintf(w, "Variance vs budget (Forecast - Budget):\n")
			for _, v := range result.Variance {
				_, _ = p.Fprintf(w, "%s | revenue $%.2f | cost $%.2f | net $%.2f\n",
					v.Year, v.RevenueVar, v.CostVar, v.NetVar)
			}
		} else {
			fmt.Fprintf(w, "No budget comparison available.\n")
		}

		if opts.Interpretation && len(result.Interpretation) > 0 {
			fmt.Fprintf(w, "Interpretation:\n")
			for _, line := range result.Interpretation {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
		if opts.Recommendations && len(result.Recommendations) > 0 {
			fmt.Fprintf(w, "Recommendations:\n")
			for _, rec := range result.Recommendations {
				fmt.Fprintf(w, "  - %s\n", rec)
			}
		}
		if n < len(results)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []forecast.Forecast) {
	FcsvFormat(os.Stdout, results)
}

// FcsvFormat writes the CSV format to the given writer. All scenarios share
// the same fixed 3-year timeline, so scenarios become column groups.
func FcsvFormat(w io.Writer, results []forecast.Forecast) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, `"year"`)
	for _, result := range results {
		fmt.Fprintf(w, `,"revenue (%s)","cost (%s)","net (%s)","roi multiple (%s)"`,
			result.Name, result.Name, result.Name, result.Name)
	}
	fmt.Fprintf(w, "\n")
	for i := range results[0].Rows {
		fmt.Fprintf(w, `"%s"`, results[0].Rows[i].Year)
		for _, result := range results {
			row := result.Rows[i]
			fmt.Fprintf(w, `,"%.2f","%.2f","%.2f","%.2f"`, row.Revenue, row.Cost, row.Net, row.ROIMultiple)
		}
		fmt.Fprintf(w, "\n")
	}
}

// JSONFormat outputs the full result set as indented JSON.
func JSONFormat(results []forecast.Forecast, opts Options) error {
	return FjsonFormat(os.Stdout, results, opts)
}

// FjsonFormat writes indented JSON to the given writer, honoring the report
// section toggles.
func FjsonFormat(w io.Writer, results []forecast.Forecast, opts Options) error {
	trimmed := make([]forecast.Forecast, len(results))
	for i, result := range results {
		if !opts.Recommendations {
			result.Recommendations = nil
		}
		if !opts.Interpretation {
			result.Interpretation = nil
		}
		trimmed[i] = result
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(trimmed); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}
