package posnetv1

import (
	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	pkgerrors "github.com/kevin07696/gateway-normalizer/pkg/errors"
)

// Success sentinels differ per endpoint: financial operations return "00",
// the transaction-inquiry endpoint returns "0000".
const (
	successCode        = "00"
	successCodeInquiry = "0000"
)

// ResponseCodeInfo contains detailed information about a v1 response code
type ResponseCodeInfo struct {
	Code        string
	Description string
	Detail      models.StatusDetail
	Category    pkgerrors.ErrorCategory
}

var responseCodes = map[string]ResponseCodeInfo{
	"00": {
		Code:        "00",
		Description: "Transaction approved",
		Detail:      models.DetailApproved,
		Category:    pkgerrors.CategoryApproved,
	},
	"0000": {
		Code:        "0000",
		Description: "Inquiry successful",
		Detail:      models.DetailApproved,
		Category:    pkgerrors.CategoryApproved,
	},
	"0005": {
		Code:        "0005",
		Description: "Do not honor",
		Detail:      models.DetailDeclined,
		Category:    pkgerrors.CategoryDeclined,
	},
	"0051": {
		Code:        "0051",
		Description: "Insufficient funds",
		Detail:      models.DetailDeclined,
		Category:    pkgerrors.CategoryDeclined,
	},
	"0057": {
		Code:        "0057",
		Description: "Transaction not permitted to cardholder",
		Detail:      models.DetailReject,
		Category:    pkgerrors.CategoryReject,
	},
	"0125": {
		Code:        "0125",
		Description: "Invalid transaction parameters",
		Detail:      models.DetailReject,
		Category:    pkgerrors.CategoryInvalidRequest,
	},
	"0127": {
		Code:        "0127",
		Description: "Order id already used",
		Detail:      models.DetailDeclined,
		Category:    pkgerrors.CategoryInvalidRequest,
	},
	"0150": {
		Code:        "0150",
		Description: "System malfunction",
		Detail:      models.DetailError,
		Category:    pkgerrors.CategorySystemError,
	},
}

// GetResponseCode retrieves response code information for the v1 generation
func GetResponseCode(code string) (ResponseCodeInfo, bool) {
	info, ok := responseCodes[code]
	return info, ok
}

// ToGatewayError converts response code information to a GatewayError
func (r ResponseCodeInfo) ToGatewayError(gatewayMessage string) *pkgerrors.GatewayError {
	err := pkgerrors.NewGatewayError(r.Code, r.Description, r.Category)
	err.GatewayMessage = gatewayMessage
	err.Details["detail"] = string(r.Detail)
	return err
}

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
