package normalize

import (
	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
)

// MergeState identifies which stages of a 3D-secure flow are available for
// the final merge.
type MergeState int

const (
	// StateNoAuthData: no usable authentication outcome. Hard stop.
	StateNoAuthData MergeState = iota
	// StateAuthOnly: authentication succeeded but no authorization-stage
	// response exists, so the charge is not confirmed.
	StateAuthOnly
	// StateAuthAndPayment: both stages present; the authorization stage
	// decides the final outcome.
	StateAuthAndPayment
)

// PaymentStage is the resolved outcome of the authorization-stage response,
// when one was supplied.
type PaymentStage struct {
	Status models.Status
	Detail *models.StatusDetail
}

// ThreeDDecision is the outcome of merging the authentication and
// authorization stages of a 3D-secure flow.
type ThreeDDecision struct {
	State        MergeState
	Security     *models.SecurityLevel
	Status       models.Status
	StatusDetail *models.StatusDetail

	// TrustPayment reports whether auth_code, ref_ret_num and the final
	// status may be taken from the authorization-stage response.
	TrustPayment bool
}

// ResolveThreeD merges the two stages of a 3D-secure flow. Authentication
// success alone never implies the charge succeeded: the final status always
// follows the authorization stage when one is present, while the security
// classification always reflects the authentication stage.
func ResolveThreeD(security *models.SecurityLevel, payment *PaymentStage) ThreeDDecision {
	if security == nil {
		// Authentication could not be established. Hard stop, not a retry
		// candidate.
		return ThreeDDecision{
			State:  StateNoAuthData,
			Status: models.StatusDeclined,
		}
	}

	if payment == nil {
		return ThreeDDecision{
			State:    StateAuthOnly,
			Security: security,
			Status:   models.StatusDeclined,
		}
	}

	return ThreeDDecision{
		State:        StateAuthAndPayment,
		Security:     security,
		Status:       payment.Status,
		StatusDetail: payment.Detail,
		TrustPayment: true,
	}
}
