package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the locale date format used across every planning table.
const DateLayout = "02/01/2006"

var dateLayouts = []string{DateLayout, "2/1/2006", "02-01-2006", "2-1-2006"}

// IsPresent reports whether a raw cell holds a value. Whitespace-only
// strings count as empty; this is the sole emptiness test used by the
// classifiers.
func IsPresent(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ParseDate parses a DD/MM/YYYY cell. Empty or unparseable input returns
// ok=false rather than an error; callers treat that as "absent".
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// ParseQuantity parses an order quantity cell. Thousands separators are
// stripped first; absent or unparseable input yields 0.
func ParseQuantity(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.IntPart()
}

// ParseMinutes parses a minute or headcount cell from the machine, HR and
// time-standard tables, where "," is the decimal separator. Absent or
// unparseable input yields zero.
func ParseMinutes(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
