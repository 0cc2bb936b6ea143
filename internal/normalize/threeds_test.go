package normalize

import (
	"testing"

	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secp(level models.SecurityLevel) *models.SecurityLevel { return &level }

func detp(detail models.StatusDetail) *models.StatusDetail { return &detail }

func TestResolveThreeD(t *testing.T) {
	tests := []struct {
		name         string
		security     *models.SecurityLevel
		payment      *PaymentStage
		wantState    MergeState
		wantStatus   models.Status
		wantDetail   *models.StatusDetail
		wantTrust    bool
		wantSecurity *models.SecurityLevel
	}{
		{
			name:         "full authentication and approved payment",
			security:     secp(models.SecurityFull3D),
			payment:      &PaymentStage{Status: models.StatusApproved, Detail: detp(models.DetailApproved)},
			wantState:    StateAuthAndPayment,
			wantStatus:   models.StatusApproved,
			wantDetail:   detp(models.DetailApproved),
			wantTrust:    true,
			wantSecurity: secp(models.SecurityFull3D),
		},
		{
			name:         "full authentication but declined payment",
			security:     secp(models.SecurityFull3D),
			payment:      &PaymentStage{Status: models.StatusDeclined, Detail: detp(models.DetailDeclined)},
			wantState:    StateAuthAndPayment,
			wantStatus:   models.StatusDeclined,
			wantDetail:   detp(models.DetailDeclined),
			wantTrust:    true,
			wantSecurity: secp(models.SecurityFull3D),
		},
		{
			name:         "mpi fallback follows the same merge rule",
			security:     secp(models.SecurityMPIFallback),
			payment:      &PaymentStage{Status: models.StatusApproved, Detail: detp(models.DetailApproved)},
			wantState:    StateAuthAndPayment,
			wantStatus:   models.StatusApproved,
			wantDetail:   detp(models.DetailApproved),
			wantTrust:    true,
			wantSecurity: secp(models.SecurityMPIFallback),
		},
		{
			name:         "authentication success without authorization stage",
			security:     secp(models.SecurityFull3D),
			payment:      nil,
			wantState:    StateAuthOnly,
			wantStatus:   models.StatusDeclined,
			wantSecurity: secp(models.SecurityFull3D),
		},
		{
			name:       "no authentication outcome is a hard stop",
			security:   nil,
			payment:    &PaymentStage{Status: models.StatusApproved, Detail: detp(models.DetailApproved)},
			wantState:  StateNoAuthData,
			wantStatus: models.StatusDeclined,
		},
		{
			name:       "no authentication outcome and no payment stage",
			security:   nil,
			payment:    nil,
			wantState:  StateNoAuthData,
			wantStatus: models.StatusDeclined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := ResolveThreeD(tt.security, tt.payment)

			assert.Equal(t, tt.wantState, decision.State)
			assert.Equal(t, tt.wantStatus, decision.Status)
			assert.Equal(t, tt.wantTrust, decision.TrustPayment)

			if tt.wantDetail == nil {
				assert.Nil(t, decision.StatusDetail)
			} else {
				require.NotNil(t, decision.StatusDetail)
				assert.Equal(t, *tt.wantDetail, *decision.StatusDetail)
			}

			if tt.wantSecurity == nil {
				assert.Nil(t, decision.Security)
			} else {
				require.NotNil(t, decision.Security)
				assert.Equal(t, *tt.wantSecurity, *decision.Security)
			}
		})
	}
}

func TestResolveThreeD_Deterministic(t *testing.T) {
	security := secp(models.SecurityFull3D)
	payment := &PaymentStage{Status: models.StatusApproved, Detail: detp(models.DetailApproved)}

	first := ResolveThreeD(security, payment)
	second := ResolveThreeD(security, payment)

	assert.Equal(t, first, second)
}
