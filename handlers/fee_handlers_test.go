package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/contaflow/backoffice/client/feeschedule"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/types/business"
)

func TestFeeHandler_ResolveMonthlyFee(t *testing.T) {
	f := newHandlerFixture(t)
	activityID := uuid.New()
	regimeID := uuid.New()

	f.querier.EXPECT().GetActivityType(gomock.Any(), activityID).Return(db.ActivityType{
		ID: activityID, Code: "comercio", Name: "Comércio", AppliesToLegalEntity: true, Active: true,
	}, nil)
	f.feeClient.EXPECT().LookupMonthlyFee(gomock.Any(), gomock.Any()).Return(feeschedule.LookupResult{
		Status:      feeschedule.StatusOK,
		AmountCents: 85000,
	})

	w := f.do(t, http.MethodPost, "/monthly-fees/resolve", ResolveMonthlyFeeRequest{
		ActivityTypeID: activityID,
		RegimeID:       regimeID,
	})
	requireStatus(t, w, http.StatusOK)

	fee := decodeJSON[business.FeeResolution](t, w)
	assert.False(t, fee.ToBeNegotiated)
	assert.Equal(t, int64(85000), fee.AmountCents)
}

func TestFeeHandler_ResolveMonthlyFeeIndividualOnly(t *testing.T) {
	f := newHandlerFixture(t)
	activityID := uuid.New()

	// Individual-only activities skip the lookup entirely.
	f.querier.EXPECT().GetActivityType(gomock.Any(), activityID).Return(db.ActivityType{
		ID: activityID, Code: "autonomo", Name: "Autônomo", AppliesToIndividual: true, Active: true,
	}, nil)

	w := f.do(t, http.MethodPost, "/monthly-fees/resolve", ResolveMonthlyFeeRequest{
		ActivityTypeID: activityID,
		RegimeID:       uuid.New(),
	})
	requireStatus(t, w, http.StatusOK)

	fee := decodeJSON[business.FeeResolution](t, w)
	assert.True(t, fee.ToBeNegotiated)
	assert.Equal(t, business.FeeReasonIndividualPricing, fee.Reason)
}

func TestFeeHandler_ResolveMonthlyFeeDegradesOnServiceError(t *testing.T) {
	f := newHandlerFixture(t)
	activityID := uuid.New()

	f.querier.EXPECT().GetActivityType(gomock.Any(), activityID).Return(db.ActivityType{
		ID: activityID, Code: "comercio", Name: "Comércio", AppliesToLegalEntity: true, Active: true,
	}, nil)
	f.feeClient.EXPECT().LookupMonthlyFee(gomock.Any(), gomock.Any()).Return(feeschedule.LookupResult{
		Status: feeschedule.StatusServiceError,
		Reason: "fee service unreachable",
	})

	w := f.do(t, http.MethodPost, "/monthly-fees/resolve", ResolveMonthlyFeeRequest{
		ActivityTypeID: activityID,
		RegimeID:       uuid.New(),
	})
	requireStatus(t, w, http.StatusOK)

	fee := decodeJSON[business.FeeResolution](t, w)
	assert.True(t, fee.ToBeNegotiated)
	assert.Equal(t, business.FeeReasonServiceError, fee.Reason)
}

func TestFeeHandler_ResolveMonthlyFeeInvalidBody(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(t, http.MethodPost, "/monthly-fees/resolve", map[string]string{
		"activity_type_id": "not-a-uuid",
	})
	requireStatus(t, w, http.StatusBadRequest)
}
