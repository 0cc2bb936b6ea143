// Package posnet normalizes raw responses of the legacy wire-format
// generation. Payloads are flat key-value maps with lower-camel keys; the
// payment response omits order id, currency and amount, so assemblers
// require the caller-supplied order context.
package posnet

import (
	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	"github.com/kevin07696/gateway-normalizer/internal/domain/ports"
	"github.com/kevin07696/gateway-normalizer/internal/mapping"
	"github.com/kevin07696/gateway-normalizer/internal/normalize"
	pkgerrors "github.com/kevin07696/gateway-normalizer/pkg/errors"
	"github.com/kevin07696/gateway-normalizer/pkg/timeutil"
)

// ResponseMapper implements the ports.ResponseMapper port for the legacy
// generation. Stateless and safe for concurrent use.
type ResponseMapper struct{}

// NewResponseMapper creates a legacy-generation response mapper
func NewResponseMapper() *ResponseMapper {
	return &ResponseMapper{}
}

// resolution is the outcome of the status resolver for one raw payload.
// classified is false only when the payload matched no known response shape.
type resolution struct {
	status     models.Status
	detail     *models.StatusDetail
	classified bool
}

// resolveStatus decides the canonical status from the legacy approval flag.
// approved=="1" is the only success spelling; any other present value is a
// confirmed decline; a bare respCode with no flag is a decline with no
// detail; anything else cannot be classified and yields status error, never
// a guessed decline.
func resolveStatus(raw map[string]any) resolution {
	approved := normalize.StringField(raw, "approved")
	respCode := normalize.StringField(raw, "respCode")

	switch {
	case approved != nil && *approved == "1":
		detail := models.DetailApproved
		return resolution{status: models.StatusApproved, detail: &detail, classified: true}
	case approved != nil:
		return resolution{status: models.StatusDeclined, detail: statusDetailFor(respCode), classified: true}
	case respCode != nil:
		return resolution{status: models.StatusDeclined, classified: true}
	default:
		return resolution{status: models.StatusError}
	}
}

// procReturnCode copies the raw return code verbatim from whichever field
// holds it. Approvals carry the code in respText.
func procReturnCode(raw map[string]any) *string {
	if code := normalize.StringField(raw, "respCode"); code != nil {
		return code
	}
	return normalize.StringField(raw, "respText")
}

// MapPaymentResponse maps a legacy authorization/sale response. The raw
// payload carries only the outcome fields, so the order context is required.
func (m *ResponseMapper) MapPaymentResponse(raw map[string]any, order *ports.Order) (*models.TransactionResult, error) {
	if order == nil {
		return nil, pkgerrors.NewValidationError("order", "order context is required for legacy payment responses")
	}

	res := resolveStatus(raw)
	result := &models.TransactionResult{
		OrderID:         orderID(order),
		TransactionType: txTypeOrDefault(order, models.TypePay),
		Installment:     orderInstallment(order, res.classified),
		PaymentModel:    models.ModelRegular,
		AuthCode:        normalize.StringField(raw, "authCode"),
		RefRetNum:       normalize.StringField(raw, "hostlogkey"),
		ProcReturnCode:  procReturnCode(raw),
		Status:          res.status,
		StatusDetail:    res.detail,
		ErrorMessage:    normalize.StringField(raw, "respText"),
		Raw:             raw,
	}
	// The context fields describe the order the caller believes this
	// response belongs to; they are only trusted once the response itself
	// has been classified.
	if res.classified {
		amount := order.Amount
		result.Amount = &amount
		result.Currency = orderCurrency(order)
	}
	if res.status != models.StatusApproved {
		result.ErrorCode = result.ProcReturnCode
	}
	return result, nil
}

// Map3DPaymentResponse merges a legacy 3D authentication-stage response with
// an optional authorization-stage response. The authentication payload is
// authoritative for amount/currency display; the authorization payload for
// auth_code, ref_ret_num and the final status.
func (m *ResponseMapper) Map3DPaymentResponse(authRaw, paymentRaw map[string]any, order *ports.Order) (*models.ThreeDPaymentResult, error) {
	if order == nil {
		return nil, pkgerrors.NewValidationError("order", "order context is required for legacy 3D payment responses")
	}

	raw := map[string]any{"3d": authRaw}
	if paymentRaw != nil {
		raw["payment"] = paymentRaw
	}

	mdStatus := normalize.StringField(authRaw, "mdStatus")
	remoteOrderID := normalize.StringField(authRaw, "xid")
	authAmount := normalize.StringField(authRaw, "amount")

	// The authentication stage failed before an mdStatus could be produced:
	// the payload carries only a return code. Synthesize the record from
	// that code alone.
	if mdStatus == nil && remoteOrderID == nil && authAmount == nil {
		res := resolveStatus(authRaw)
		result := &models.ThreeDPaymentResult{
			TransactionResult: models.TransactionResult{
				OrderID:         orderID(order),
				TransactionType: txTypeOrDefault(order, models.TypePay),
				PaymentModel:    models.Model3D,
				ProcReturnCode:  procReturnCode(authRaw),
				Status:          res.status,
				StatusDetail:    res.detail,
				ErrorMessage:    normalize.StringField(authRaw, "respText"),
				Raw:             raw,
			},
		}
		if res.status != models.StatusApproved {
			result.ErrorCode = result.ProcReturnCode
		}
		return result, nil
	}

	security := mapping.SecurityLevelFor(normalize.Deref(mdStatus))

	var stage *normalize.PaymentStage
	if paymentRaw != nil {
		pres := resolveStatus(paymentRaw)
		stage = &normalize.PaymentStage{Status: pres.status, Detail: pres.detail}
	}
	decision := normalize.ResolveThreeD(security, stage)

	amount := normalize.LegacyAmount(authAmount)
	currency, err := resolveCurrency(authRaw, "currency", order)
	if err != nil {
		return nil, err
	}
	if amount == nil {
		a := order.Amount
		amount = &a
	}

	result := &models.ThreeDPaymentResult{
		TransactionResult: models.TransactionResult{
			OrderID:         orderID(order),
			TransactionType: txTypeOrDefault(order, models.TypePay),
			Installment:     orderInstallment(order, decision.Status != models.StatusError),
			Currency:        currency,
			Amount:          amount,
			PaymentModel:    models.Model3D,
			Status:          decision.Status,
			StatusDetail:    decision.StatusDetail,
			Raw:             raw,
		},
		TransactionSecurity: decision.Security,
		MDStatus:            mdStatus,
		MDErrorMessage:      normalize.StringField(authRaw, "mdErrorMessage"),
		RemoteOrderID:       remoteOrderID,
	}

	if decision.TrustPayment {
		result.AuthCode = normalize.StringField(paymentRaw, "authCode")
		result.RefRetNum = normalize.StringField(paymentRaw, "hostlogkey")
		result.ProcReturnCode = procReturnCode(paymentRaw)
		result.ErrorMessage = normalize.StringField(paymentRaw, "respText")
	}
	if result.Status != models.StatusApproved {
		result.ErrorCode = result.ProcReturnCode
	}
	return result, nil
}

// MapStatusResponse maps a legacy transaction-inquiry (agreement) response.
// Transaction details live in a nested transactions block with locale
// amounts and spaced timestamps.
func (m *ResponseMapper) MapStatusResponse(raw map[string]any) (*models.StatusResult, error) {
	res := resolveStatus(raw)

	statusType := models.TypeStatus
	result := &models.StatusResult{
		TransactionResult: models.TransactionResult{
			TransactionType: &statusType,
			PaymentModel:    models.ModelRegular,
			ProcReturnCode:  procReturnCode(raw),
			Status:          res.status,
			StatusDetail:    res.detail,
			ErrorMessage:    normalize.StringField(raw, "respText"),
			Raw:             raw,
		},
	}
	if res.status != models.StatusApproved {
		result.ErrorCode = result.ProcReturnCode
	}

	txns := normalize.NestedList(normalize.NestedMap(raw, "transactions"), "transaction")
	if len(txns) == 0 {
		return result, nil
	}
	txn := txns[0]

	amount := normalize.LegacyAmount(normalize.StringField(txn, "amount"))
	result.Amount = amount
	result.FirstAmount = amount
	result.Currency = mapping.CurrencyForOptional(normalize.Deref(normalize.StringField(txn, "currencyCode")))
	result.AuthCode = normalize.StringField(txn, "authCode")
	result.RefRetNum = normalize.StringField(txn, "hostlogkey")
	result.MaskedNumber = normalize.StringField(txn, "ccno")
	result.TransTime = timeutil.ParseTransactionTime(normalize.Deref(normalize.StringField(txn, "tranDate")))
	result.Installment = normalize.InstallmentFrom(normalize.StringField(txn, "installment"), res.classified)

	if state := normalize.StringField(txn, "state"); state != nil {
		result.OrderStatus = state
		if txType := mapping.TxTypeFor(*state); txType != nil {
			result.TransactionType = txType
		}
	}
	return result, nil
}

// MapCancelResponse maps a legacy cancellation (reverse) response
func (m *ResponseMapper) MapCancelResponse(raw map[string]any) (*models.TransactionResult, error) {
	return m.mapReversal(raw, models.TypeCancel), nil
}

// MapRefundResponse maps a legacy refund (return) response
func (m *ResponseMapper) MapRefundResponse(raw map[string]any) (*models.TransactionResult, error) {
	return m.mapReversal(raw, models.TypeRefund), nil
}

// mapReversal handles cancel and refund, which share one response layout.
// Installment stays unknown: it is not applicable to reversals.
func (m *ResponseMapper) mapReversal(raw map[string]any, txType models.TransactionType) *models.TransactionResult {
	res := resolveStatus(raw)
	result := &models.TransactionResult{
		OrderID:         normalize.StringField(raw, "orderId"),
		TransactionType: &txType,
		PaymentModel:    models.ModelRegular,
		AuthCode:        normalize.StringField(raw, "authCode"),
		RefRetNum:       normalize.StringField(raw, "hostlogkey"),
		ProcReturnCode:  procReturnCode(raw),
		Status:          res.status,
		StatusDetail:    res.detail,
		ErrorMessage:    normalize.StringField(raw, "respText"),
		Raw:             raw,
	}
	if res.status != models.StatusApproved {
		result.ErrorCode = result.ProcReturnCode
	}
	return result
}

// DeclineError builds a structured error for a non-approved legacy result
// whose return code is present in the response-code table.
func (m *ResponseMapper) DeclineError(result *models.TransactionResult) *pkgerrors.GatewayError {
	if result == nil || result.Status == models.StatusApproved || result.ProcReturnCode == nil {
		return nil
	}
	info, ok := GetResponseCode(*result.ProcReturnCode)
	if !ok {
		return nil
	}
	return info.ToGatewayError(normalize.Deref(result.ErrorMessage))
}

// resolveCurrency maps a gateway currency code from the payload, falling
// back to the order context when the payload omits it. A present but
// unmapped code is surfaced: the currency scales the amount and must never
// be guessed.
func resolveCurrency(raw map[string]any, key string, order *ports.Order) (*string, error) {
	if code := normalize.StringField(raw, key); code != nil {
		iso, err := mapping.CurrencyFor(*code)
		if err != nil {
			return nil, err
		}
		return &iso, nil
	}
	if order != nil && order.Currency != "" {
		currency := order.Currency
		return &currency, nil
	}
	return nil, nil
}

func orderID(order *ports.Order) *string {
	if order.ID == "" {
		return nil
	}
	id := order.ID
	return &id
}

func orderCurrency(order *ports.Order) *string {
	if order.Currency == "" {
		return nil
	}
	currency := order.Currency
	return &currency
}

func orderInstallment(order *ports.Order, classified bool) models.Installment {
	if !classified {
		return models.UnknownInstallment()
	}
	return models.ConfirmedInstallment(order.Installment)
}

func txTypeOrDefault(order *ports.Order, fallback models.TransactionType) *models.TransactionType {
	if order != nil && order.TxType != nil {
		t := *order.TxType
		return &t
	}
	return &fallback
}
