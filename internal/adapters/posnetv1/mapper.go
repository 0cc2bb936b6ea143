// Package posnetv1 normalizes raw responses of the newer wire-format
// generation: JSON payloads with Pascal-case keys and a nested
// ServiceResponseData envelope holding the return code.
package posnetv1

import (
	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	"github.com/kevin07696/gateway-normalizer/internal/domain/ports"
	"github.com/kevin07696/gateway-normalizer/internal/mapping"
	"github.com/kevin07696/gateway-normalizer/internal/normalize"
	pkgerrors "github.com/kevin07696/gateway-normalizer/pkg/errors"
	"github.com/shopspring/decimal"
)

// ResponseMapper implements the ports.ResponseMapper port for the v1
// generation. Stateless and safe for concurrent use.
type ResponseMapper struct{}

// NewResponseMapper creates a v1-generation response mapper
func NewResponseMapper() *ResponseMapper {
	return &ResponseMapper{}
}

type resolution struct {
	status     models.Status
	detail     *models.StatusDetail
	code       *string
	message    *string
	classified bool
}

// resolveStatus decides the canonical status from the ServiceResponseData
// envelope. A missing envelope or code means the payload matched no known
// response shape: status error, not a guessed decline.
func resolveStatus(raw map[string]any, success string) resolution {
	envelope := normalize.NestedMap(raw, "ServiceResponseData")
	code := normalize.StringField(envelope, "ResponseCode")
	message := normalize.StringField(envelope, "ResponseDescription")

	if code == nil {
		return resolution{status: models.StatusError, message: message}
	}
	if *code == success {
		detail := models.DetailApproved
		return resolution{status: models.StatusApproved, detail: &detail, code: code, message: message, classified: true}
	}
	return resolution{status: models.StatusDeclined, detail: statusDetailFor(code), code: code, message: message, classified: true}
}

// MapPaymentResponse maps a v1 authorization/sale response. The payload
// carries its own order id, amount and currency; the order context only
// fills gaps.
func (m *ResponseMapper) MapPaymentResponse(raw map[string]any, order *ports.Order) (*models.TransactionResult, error) {
	res := resolveStatus(raw, successCode)

	currency, err := resolveCurrency(raw, order)
	if err != nil {
		return nil, err
	}

	result := &models.TransactionResult{
		OrderID:         fallbackOrderID(normalize.StringField(raw, "OrderId"), order),
		TransactionID:   normalize.StringField(raw, "TransactionId"),
		TransactionType: txTypeOrDefault(order, models.TypePay),
		Installment:     normalize.InstallmentFrom(normalize.StringField(raw, "InstallmentCount"), res.classified),
		Currency:        currency,
		Amount:          fallbackAmount(normalize.AmountFromMinorUnits(normalize.StringField(raw, "Amount")), order, res.classified),
		PaymentModel:    models.ModelRegular,
		AuthCode:        normalize.StringField(raw, "AuthCode"),
		RefRetNum:       normalize.StringField(raw, "HostLogKey"),
		ProcReturnCode:  res.code,
		Status:          res.status,
		StatusDetail:    res.detail,
		ErrorMessage:    res.message,
		Raw:             raw,
	}
	if res.status != models.StatusApproved {
		result.ErrorCode = res.code
	}
	return result, nil
}

// Map3DPaymentResponse merges a v1 3D authentication-stage response with an
// optional authorization-stage response.
func (m *ResponseMapper) Map3DPaymentResponse(authRaw, paymentRaw map[string]any, order *ports.Order) (*models.ThreeDPaymentResult, error) {
	raw := map[string]any{"3d": authRaw}
	if paymentRaw != nil {
		raw["payment"] = paymentRaw
	}

	mdStatus := normalize.StringField(authRaw, "MdStatus")
	remoteOrderID := normalize.StringField(authRaw, "SecureTransactionId")
	authAmount := normalize.StringField(authRaw, "Amount")

	// Authentication failed before an mdStatus was produced: only the
	// envelope code is available. Synthesize the record from it.
	if mdStatus == nil && remoteOrderID == nil && authAmount == nil {
		res := resolveStatus(authRaw, successCode)
		result := &models.ThreeDPaymentResult{
			TransactionResult: models.TransactionResult{
				OrderID:         fallbackOrderID(normalize.StringField(authRaw, "OrderId"), order),
				TransactionType: txTypeOrDefault(order, models.TypePay),
				PaymentModel:    models.Model3D,
				ProcReturnCode:  res.code,
				Status:          res.status,
				StatusDetail:    res.detail,
				ErrorMessage:    res.message,
				Raw:             raw,
			},
		}
		if res.status != models.StatusApproved {
			result.ErrorCode = res.code
		}
		return result, nil
	}

	security := mapping.SecurityLevelFor(normalize.Deref(mdStatus))

	var stage *normalize.PaymentStage
	if paymentRaw != nil {
		pres := resolveStatus(paymentRaw, successCode)
		stage = &normalize.PaymentStage{Status: pres.status, Detail: pres.detail}
	}
	decision := normalize.ResolveThreeD(security, stage)

	currency, err := resolveCurrency(authRaw, order)
	if err != nil {
		return nil, err
	}

	result := &models.ThreeDPaymentResult{
		TransactionResult: models.TransactionResult{
			OrderID:         fallbackOrderID(normalize.StringField(authRaw, "OrderId"), order),
			TransactionType: txTypeOrDefault(order, models.TypePay),
			Installment:     installmentFromOrder(order, decision.Status != models.StatusError),
			Currency:        currency,
			Amount:          fallbackAmount(normalize.AmountFromMinorUnits(authAmount), order, true),
			PaymentModel:    models.Model3D,
			Status:          decision.Status,
			StatusDetail:    decision.StatusDetail,
			Raw:             raw,
		},
		TransactionSecurity: decision.Security,
		MDStatus:            mdStatus,
		MDErrorMessage:      normalize.StringField(authRaw, "MdErrorMessage"),
		RemoteOrderID:       remoteOrderID,
	}

	if decision.TrustPayment {
		pres := resolveStatus(paymentRaw, successCode)
		result.AuthCode = normalize.StringField(paymentRaw, "AuthCode")
		result.RefRetNum = normalize.StringField(paymentRaw, "HostLogKey")
		result.TransactionID = normalize.StringField(paymentRaw, "TransactionId")
		result.ProcReturnCode = pres.code
		result.ErrorMessage = pres.message
	}
	if result.Status != models.StatusApproved {
		result.ErrorCode = result.ProcReturnCode
	}
	return result, nil
}

// MapStatusResponse maps a v1 transaction-inquiry response. This endpoint
// uses the "0000" success sentinel and reports transactions in a nested
// list; the shape carries no transaction id, group id or date, so those
// canonical fields stay nil.
func (m *ResponseMapper) MapStatusResponse(raw map[string]any) (*models.StatusResult, error) {
	res := resolveStatus(raw, successCodeInquiry)

	statusType := models.TypeStatus
	result := &models.StatusResult{
		TransactionResult: models.TransactionResult{
			TransactionType: &statusType,
			PaymentModel:    models.ModelRegular,
			ProcReturnCode:  res.code,
			Status:          res.status,
			StatusDetail:    res.detail,
			ErrorMessage:    res.message,
			Raw:             raw,
		},
	}
	if res.status != models.StatusApproved {
		result.ErrorCode = res.code
	}

	txns := normalize.NestedList(raw, "TransactionList")
	if len(txns) == 0 {
		return result, nil
	}
	txn := txns[0]

	amount := normalize.AmountFromMinorUnits(normalize.StringField(txn, "Amount"))
	result.Amount = amount
	result.FirstAmount = amount
	result.Currency = mapping.CurrencyForOptional(normalize.Deref(normalize.StringField(txn, "CurrencyCode")))
	result.MaskedNumber = normalize.StringField(txn, "MaskedCardNumber")
	result.OrderStatus = normalize.StringField(txn, "TransactionStatus")
	return result, nil
}

// MapCancelResponse maps a v1 cancellation (reverse) response
func (m *ResponseMapper) MapCancelResponse(raw map[string]any) (*models.TransactionResult, error) {
	return m.mapReversal(raw, models.TypeCancel), nil
}

// MapRefundResponse maps a v1 refund (return) response
func (m *ResponseMapper) MapRefundResponse(raw map[string]any) (*models.TransactionResult, error) {
	return m.mapReversal(raw, models.TypeRefund), nil
}

func (m *ResponseMapper) mapReversal(raw map[string]any, txType models.TransactionType) *models.TransactionResult {
	res := resolveStatus(raw, successCode)
	result := &models.TransactionResult{
		OrderID:         normalize.StringField(raw, "OrderId"),
		TransactionID:   normalize.StringField(raw, "TransactionId"),
		TransactionType: &txType,
		PaymentModel:    models.ModelRegular,
		AuthCode:        normalize.StringField(raw, "AuthCode"),
		RefRetNum:       normalize.StringField(raw, "HostLogKey"),
		ProcReturnCode:  res.code,
		Status:          res.status,
		StatusDetail:    res.detail,
		ErrorMessage:    res.message,
		Raw:             raw,
	}
	if res.status != models.StatusApproved {
		result.ErrorCode = res.code
	}
	return result
}

// DeclineError builds a structured error for a non-approved v1 result whose
// return code is present in the response-code table.
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

// resolveCurrency maps the payload currency code, falling back to the order
// context. A present but unmapped code is surfaced, never defaulted.
func resolveCurrency(raw map[string]any, order *ports.Order) (*string, error) {
	if code := normalize.StringField(raw, "CurrencyCode"); code != nil {
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

func fallbackOrderID(fromRaw *string, order *ports.Order) *string {
	if fromRaw != nil {
		return fromRaw
	}
	if order != nil && order.ID != "" {
		id := order.ID
		return &id
	}
	return nil
}

func fallbackAmount(fromRaw *decimal.Decimal, order *ports.Order, classified bool) *decimal.Decimal {
	if fromRaw != nil {
		return fromRaw
	}
	if classified && order != nil {
		amount := order.Amount
		return &amount
	}
	return nil
}

func installmentFromOrder(order *ports.Order, classified bool) models.Installment {
	if !classified {
		return models.UnknownInstallment()
	}
	if order == nil {
		return models.ConfirmedInstallment(0)
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
