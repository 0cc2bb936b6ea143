// Package normalize contains the field extractors shared by both gateway
// generations: raw map access with null semantics, amount denormalization,
// installment handling and the 3D-secure merge state machine.
package normalize

import (
	"strconv"

	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
)

// StringField extracts a string field from a raw payload. Keys are
// case-sensitive. Absent keys, empty strings and non-scalar values yield
// nil so canonical records never carry empty-string sentinels. Numeric
// values are formatted, since JSON payloads deliver codes as numbers.
func StringField(raw map[string]any, key string) *string {
	if raw == nil {
		return nil
	}
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

// NestedMap extracts a nested mapping, or nil when the key is absent or not
// a mapping.
func NestedMap(raw map[string]any, key string) map[string]any {
	if raw == nil {
		return nil
	}
	if m, ok := raw[key].(map[string]any); ok {
		return m
	}
	return nil
}

// NestedList extracts a list of mappings. Gateways deliver single-element
// lists as either a bare mapping or a slice; both shapes are accepted.
func NestedList(raw map[string]any, key string) []map[string]any {
	if raw == nil {
		return nil
	}
	switch v := raw[key].(type) {
	case map[string]any:
		return []map[string]any{v}
	case []any:
		var out []map[string]any
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case []map[string]any:
		return v
	default:
		return nil
	}
}

// Deref returns the value of a nullable string, or empty when nil
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// InstallmentFrom resolves the canonical installment count. A raw value of
// "0"/"00" or an absent field on a classified response means confirmed
// single payment; when the overall resolver could not classify the response
// the count stays unknown, not confirmed-zero.
func InstallmentFrom(raw *string, classified bool) models.Installment {
	if !classified {
		return models.UnknownInstallment()
	}
	if raw == nil {
		return models.ConfirmedInstallment(0)
	}
	n, err := strconv.Atoi(*raw)
	if err != nil || n < 0 {
		return models.UnknownInstallment()
	}
	if n == 1 {
		// A single installment is the same thing as a single payment.
		n = 0
	}
	return models.ConfirmedInstallment(n)
}
