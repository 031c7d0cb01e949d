package tabular

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Explicit date layouts tried first, in order. Bank reports are wildly
// inconsistent; DD/MM is tried before MM/DD on purpose.
var dateLayouts = []string{
	"02-Jan-06",
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"01/02/2006",
}

// Best-effort fallbacks when none of the explicit layouts match.
var fallbackDateLayouts = []string{
	"2006-01-02 15:04:05",
	"02-Jan-2006",
	"2-Jan-06",
	"2006/01/02",
	"02.01.2006",
	time.RFC3339,
}

// ParseDate parses a date cell tolerantly. Empty, whitespace-only and
// unparseable inputs yield nil (a missing date); ParseDate never errors.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseRef parses an order/reference number. Empty or non-numeric input
// coerces to zero, never an error.
func ParseRef(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseAmount parses a money cell. Parse failures yield an invalid (missing)
// amount rather than aborting the row.
func ParseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
