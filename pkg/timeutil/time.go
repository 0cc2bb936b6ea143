package timeutil

import "time"

// Layouts the banking network uses for transaction timestamps. The compact
// layout has no separator between the date and time parts.
const (
	LayoutTransaction        = "2006-01-02 15:04:05"
	LayoutTransactionCompact = "2006-01-0215:04:05"
)

// Now returns the current time in UTC
// Always use this instead of time.Now() to ensure timezone consistency
func Now() time.Time {
	return time.Now().UTC()
}

// ParseTransactionTime parses a gateway transaction timestamp. Both the
// spaced and the compact layout are accepted, with or without fractional
// seconds. Returns nil for absent or unparsable values: timestamps are
// display fields and degrade to null rather than failing the mapping.
func ParseTransactionTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	layouts := []string{
		LayoutTransaction + ".999999",
		LayoutTransaction,
		LayoutTransactionCompact + ".999999",
		LayoutTransactionCompact,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
