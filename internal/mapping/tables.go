// Package mapping holds the static lookup tables shared by both gateway
// generations. Tables are constructed once at load time and never mutated,
// so lookups are safe for concurrent use without locking.
package mapping

import (
	"strings"

	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	pkgerrors "github.com/kevin07696/gateway-normalizer/pkg/errors"
)

// Gateway currency codes to ISO 4217. Both generations use the same
// two-letter scheme.
var currencies = map[string]string{
	"TL": "TRY",
	"US": "USD",
	"EU": "EUR",
	"GB": "GBP",
	"JP": "JPY",
	"RU": "RUB",
	"SF": "CHF",
}

// CurrencyFor maps a gateway currency code to its ISO equivalent. The code
// is mandatory context here (amount scaling depends on it), so unknown codes
// surface an UnmappedCodeError instead of defaulting.
func CurrencyFor(code string) (string, error) {
	if iso, ok := currencies[strings.ToUpper(code)]; ok {
		return iso, nil
	}
	return "", pkgerrors.NewUnmappedCodeError("currency", code)
}

// CurrencyForOptional maps a gateway currency code where absence is
// legitimate. Empty or unknown codes yield nil.
func CurrencyForOptional(code string) *string {
	if iso, ok := currencies[strings.ToUpper(code)]; ok {
		return &iso
	}
	return nil
}

// Gateway transaction-state words to canonical transaction types. The
// inquiry endpoints report these per transaction.
var txTypes = map[string]models.TransactionType{
	"sale":      models.TypePay,
	"auth":      models.TypePreAuth,
	"capt":      models.TypePostAuth,
	"capture":   models.TypePostAuth,
	"reverse":   models.TypeCancel,
	"return":    models.TypeRefund,
	"agreement": models.TypeStatus,
}

// TxTypeFor maps a gateway transaction-state word, case-insensitively.
// Unknown words yield nil: the calling contexts treat the type as
// legitimately absent.
func TxTypeFor(code string) *models.TransactionType {
	if t, ok := txTypes[strings.ToLower(code)]; ok {
		return &t
	}
	return nil
}

// MD status codes to 3D-secure security levels. 1 is full cryptographic
// authentication; 2, 3 and 4 are the half-secure band where the issuer or
// cardholder is not enrolled; 9 is the MPI fallback path.
var securityLevels = map[string]models.SecurityLevel{
	"1": models.SecurityFull3D,
	"2": models.SecurityHalf3D,
	"3": models.SecurityHalf3D,
	"4": models.SecurityHalf3D,
	"9": models.SecurityMPIFallback,
}

// SecurityLevelFor maps an MD status code to its security classification.
// Empty or unknown codes yield nil.
func SecurityLevelFor(mdStatus string) *models.SecurityLevel {
	if level, ok := securityLevels[mdStatus]; ok {
		return &level
	}
	return nil
}
