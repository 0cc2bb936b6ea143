package posnet

import (
	"testing"

	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	pkgerrors "github.com/kevin07696/gateway-normalizer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResponseCode(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		wantDetail   models.StatusDetail
		wantCategory pkgerrors.ErrorCategory
	}{
		{name: "approval", code: "00", wantDetail: models.DetailApproved, wantCategory: pkgerrors.CategoryApproved},
		{name: "do not honor", code: "0005", wantDetail: models.DetailDeclined, wantCategory: pkgerrors.CategoryDeclined},
		{name: "insufficient funds", code: "0051", wantDetail: models.DetailDeclined, wantCategory: pkgerrors.CategoryDeclined},
		{name: "not permitted", code: "0057", wantDetail: models.DetailReject, wantCategory: pkgerrors.CategoryReject},
		{name: "order id reused", code: "0127", wantDetail: models.DetailDeclined, wantCategory: pkgerrors.CategoryInvalidRequest},
		{name: "system malfunction", code: "0150", wantDetail: models.DetailError, wantCategory: pkgerrors.CategorySystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := GetResponseCode(tt.code)

			require.True(t, ok)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.wantDetail, info.Detail)
			assert.Equal(t, tt.wantCategory, info.Category)
			assert.NotEmpty(t, info.Description)
		})
	}
}

func TestGetResponseCode_Unknown(t *testing.T) {
	_, ok := GetResponseCode("9999")

	assert.False(t, ok)
}

func TestResponseCodeInfo_ToGatewayError(t *testing.T) {
	info, ok := GetResponseCode("0051")
	require.True(t, ok)

	err := info.ToGatewayError("YETERSIZ BAKIYE")

	assert.Equal(t, "0051", err.Code)
	assert.Equal(t, info.Description, err.Message)
	assert.Equal(t, "YETERSIZ BAKIYE", err.GatewayMessage)
	assert.Equal(t, pkgerrors.CategoryDeclined, err.Category)
	assert.Equal(t, "declined", err.Details["detail"])
	assert.Contains(t, err.Error(), "YETERSIZ BAKIYE")
}

func TestStatusDetailFor_UnknownYieldsNil(t *testing.T) {
	unknown := "9999"

	assert.Nil(t, statusDetailFor(&unknown))
	assert.Nil(t, statusDetailFor(nil))
}
