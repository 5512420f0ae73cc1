// Package datetime provides date parsing and bucketing utilities for
// transaction records.
package datetime

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical transaction date format.
const DateLayout = "2006-01-02"

// MonthLayout is the format used for monthly trend buckets.
const MonthLayout = "2006-01"

// transactionLayouts lists the accepted input formats in precedence order.
// Uploads commonly carry US-style dates alongside ISO ones.
var transactionLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
}

// ParseTransactionDate parses a transaction date string, trying each accepted
// layout in precedence order.
func ParseTransactionDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range transactionLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}

// MonthFloor buckets a timestamp into its calendar month, e.g. "2025-06".
func MonthFloor(t time.Time) string {
	return t.Format(MonthLayout)
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
