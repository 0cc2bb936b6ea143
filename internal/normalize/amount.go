package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountFromMinorUnits converts a minor-unit integer string with an implied
// 2-decimal scale to a major-unit amount: "5696" becomes 56.96. Absent or
// unparsable values yield nil, never zero.
func AmountFromMinorUnits(raw *string) *decimal.Decimal {
	if raw == nil {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil
	}
	major := d.Shift(-2)
	return &major
}

// AmountFromLocaleString converts a locale-formatted decimal string using
// "," as the decimal separator to a major-unit amount: "1,16" becomes 1.16.
// Absent or unparsable values yield nil.
func AmountFromLocaleString(raw *string) *decimal.Decimal {
	if raw == nil {
		return nil
	}
	s := strings.ReplaceAll(strings.TrimSpace(*raw), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// LegacyAmount converts a legacy-generation amount, which arrives either as
// a zero-padded minor-unit integer or as a locale decimal string.
func LegacyAmount(raw *string) *decimal.Decimal {
	if raw == nil {
		return nil
	}
	if strings.Contains(*raw, ",") {
		return AmountFromLocaleString(raw)
	}
	return AmountFromMinorUnits(raw)
}
