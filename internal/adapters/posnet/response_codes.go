package posnet

import (
	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	pkgerrors "github.com/kevin07696/gateway-normalizer/pkg/errors"
)

// ResponseCodeInfo contains detailed information about a legacy response code
type ResponseCodeInfo struct {
	Code        string
	Description string
	Detail      models.StatusDetail
	Category    pkgerrors.ErrorCategory
}

// Response code map for the legacy generation. respCode values observed on
// declined and errored responses; approvals usually omit respCode entirely.
var responseCodes = map[string]ResponseCodeInfo{
	"00": {
		Code:        "00",
		Description: "Transaction approved",
		Detail:      models.DetailApproved,
		Category:    pkgerrors.CategoryApproved,
	},
	"0001": {
		Code:        "0001",
		Description: "Refer to card issuer",
		Detail:      models.DetailDeclined,
		Category:    pkgerrors.CategoryDeclined,
	},
	"0005": {
		Code:        "0005",
		Description: "Do not honor",
		Detail:      models.DetailDeclined,
		Category:    pkgerrors.CategoryDeclined,
	},
	"0012": {
		Code:        "0012",
		Description: "Invalid transaction",
		Detail:      models.DetailReject,
		Category:    pkgerrors.CategoryInvalidRequest,
	},
	"0051": {
		Code:        "0051",
		Description: "Insufficient funds",
		Detail:      models.DetailDeclined,
		Category:    pkgerrors.CategoryDeclined,
	},
	"0054": {
		Code:        "0054",
		Description: "Expired card",
		Detail:      models.DetailDeclined,
		Category:    pkgerrors.CategoryDeclined,
	},
	"0057": {
		Code:        "0057",
		Description: "Transaction not permitted to cardholder",
		Detail:      models.DetailReject,
		Category:    pkgerrors.CategoryReject,
	},
	"0127": {
		Code:        "0127",
		Description: "Order id already used",
		Detail:      models.DetailDeclined,
		Category:    pkgerrors.CategoryInvalidRequest,
	},
	"0148": {
		Code:        "0148",
		Description: "Invalid merchant or terminal",
		Detail:      models.DetailReject,
		Category:    pkgerrors.CategoryReject,
	},
	"0150": {
		Code:        "0150",
		Description: "System malfunction",
		Detail:      models.DetailError,
		Category:    pkgerrors.CategorySystemError,
	},
}

// GetResponseCode retrieves response code information for the legacy
// generation. The second return reports whether the code is known.
func GetResponseCode(code string) (ResponseCodeInfo, bool) {
	info, ok := responseCodes[code]
	return info, ok
}

// ToGatewayError converts response code information to a GatewayError,
// carrying the gateway's own message text alongside the curated description.
func (r ResponseCodeInfo) ToGatewayError(gatewayMessage string) *pkgerrors.GatewayError {
	err := pkgerrors.NewGatewayError(r.Code, r.Description, r.Category)
	err.GatewayMessage = gatewayMessage
	err.Details["detail"] = string(r.Detail)
	return err
}

// statusDetailFor maps a raw return code to a canonical status detail.
// Unknown or absent codes yield nil, never a guessed detail.
func statusDetailFor(code *string) *models.StatusDetail {
	if code == nil {
		return nil
	}
	if info, ok := responseCodes[*code]; ok {
		detail := info.Detail
		return &detail
	}
	return nil
}
