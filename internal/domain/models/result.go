package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the coarse outcome of a normalized gateway response
type Status string

const (
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
	// StatusError means the raw payload could not be classified at all,
	// distinct from a confirmed decline.
	StatusError Status = "error"
)

// StatusDetail represents the fine-grained outcome. Nil means the gateway
// gave no recognizable detail code.
type StatusDetail string

const (
	DetailApproved StatusDetail = "approved"
	DetailDeclined StatusDetail = "declined"
	DetailReject   StatusDetail = "reject"
	DetailError    StatusDetail = "error"
)

// TransactionType represents the canonical type of transaction
type TransactionType string

const (
	TypePay      TransactionType = "pay"
	TypePreAuth  TransactionType = "pre_auth"
	TypePostAuth TransactionType = "post_auth"
	TypeCancel   TransactionType = "cancel"
	TypeRefund   TransactionType = "refund"
	TypeStatus   TransactionType = "status"
)

// PaymentModel represents how the transaction was authenticated
type PaymentModel string

const (
	ModelRegular PaymentModel = "regular"
	Model3D      PaymentModel = "3d"
	Model3DPay   PaymentModel = "3d_pay"
)

// SecurityLevel classifies the strength of a 3D-secure authentication
type SecurityLevel string

const (
	SecurityFull3D      SecurityLevel = "Full 3D Secure"
	SecurityHalf3D      SecurityLevel = "Half 3D Secure"
	SecurityMPIFallback SecurityLevel = "MPI fallback"
)

// Installment distinguishes a confirmed installment count from an unknown
// one. Count 0 with Known true means confirmed single payment; the zero
// value means the count could not be established.
type Installment struct {
	Count int
	Known bool
}

// ConfirmedInstallment returns a known installment count
func ConfirmedInstallment(count int) Installment {
	return Installment{Count: count, Known: true}
}

// UnknownInstallment returns the unknown sentinel
func UnknownInstallment() Installment {
	return Installment{}
}

// TransactionResult is the canonical, gateway-agnostic record produced for
// payment, cancel and refund responses. Fields absent from the raw payload
// are nil, never empty strings or zeroes, so callers can distinguish
// "unknown" from "zero/empty".
type TransactionResult struct {
	OrderID         *string
	TransactionID   *string
	TransactionType *TransactionType
	Installment     Installment
	Currency        *string
	Amount          *decimal.Decimal
	PaymentModel    PaymentModel
	AuthCode        *string
	RefRetNum       *string

	// ProcReturnCode preserves the raw gateway return code verbatim for
	// audit, independent of how Status was derived.
	ProcReturnCode *string

	Status       Status
	StatusDetail *StatusDetail

	// ErrorCode is nil on approval. ErrorMessage may carry an informational
	// code or text from the gateway even on approval.
	ErrorCode    *string
	ErrorMessage *string

	// Raw retains the untouched original payload for debugging. Excluded
	// from the equality comparisons tests perform.
	Raw map[string]any
}

// ThreeDPaymentResult extends the canonical record with the
// authentication-stage fields of a 3D-secure flow.
type ThreeDPaymentResult struct {
	TransactionResult

	TransactionSecurity *SecurityLevel
	MDStatus            *string
	MDErrorMessage      *string

	// RemoteOrderID is the gateway's own order id, distinct from the
	// merchant order id.
	RemoteOrderID *string
}

// StatusResult extends the canonical record with status-inquiry fields.
type StatusResult struct {
	TransactionResult

	TransTime     *time.Time
	Capture       *bool
	CaptureAmount *decimal.Decimal
	CaptureTime   *time.Time
	FirstAmount   *decimal.Decimal
	MaskedNumber  *string
	OrderStatus   *string
}
