package ports

import (
	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	pkgerrors "github.com/kevin07696/gateway-normalizer/pkg/errors"
	"github.com/shopspring/decimal"
)

// Generation identifies which wire-format generation of the banking network
// produced a raw response.
type Generation string

const (
	GenerationPosnet   Generation = "posnet"
	GenerationPosnetV1 Generation = "posnetv1"
)

// Order carries the contextual order metadata the legacy generation needs:
// its raw responses omit the merchant order id, currency and amount, so the
// caller supplies them alongside the payload.
type Order struct {
	ID          string
	Currency    string // ISO 4217, e.g. "TRY"
	Amount      decimal.Decimal
	Installment int

	// TxType is an optional hint for operations whose raw response does not
	// identify the transaction type. Nil defaults to pay.
	TxType *models.TransactionType
}

// ResponseMapper normalizes raw gateway responses into canonical records.
// Implementations are pure: no I/O, no shared mutable state, safe for
// concurrent use.
type ResponseMapper interface {
	// MapPaymentResponse maps an authorization/sale response. The order
	// context is required for the legacy generation and optional otherwise.
	MapPaymentResponse(raw map[string]any, order *Order) (*models.TransactionResult, error)

	// Map3DPaymentResponse merges an authentication-stage response with an
	// optional authorization-stage response. paymentRaw may be nil when the
	// authorization stage never ran.
	Map3DPaymentResponse(authRaw, paymentRaw map[string]any, order *Order) (*models.ThreeDPaymentResult, error)

	// MapStatusResponse maps a transaction-inquiry response.
	MapStatusResponse(raw map[string]any) (*models.StatusResult, error)

	// MapCancelResponse maps a cancellation (reverse) response.
	MapCancelResponse(raw map[string]any) (*models.TransactionResult, error)

	// MapRefundResponse maps a refund (return) response.
	MapRefundResponse(raw map[string]any) (*models.TransactionResult, error)

	// DeclineError resolves a non-approved result's return code against the
	// generation's response-code table and builds a structured error from it.
	// Nil when the result is approved or its code is not in the table.
	DeclineError(result *models.TransactionResult) *pkgerrors.GatewayError
}
