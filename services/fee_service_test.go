package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/contaflow/backoffice/client/feeschedule"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/mocks"
	"github.com/contaflow/backoffice/services"
	"github.com/contaflow/backoffice/types/business"
)

func TestFeeService_IndividualOnlyShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityID := uuid.New()
	regimeID := uuid.New()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetActivityType(gomock.Any(), activityID).Return(db.ActivityType{
		ID: activityID, AppliesToIndividual: true, AppliesToLegalEntity: false,
	}, nil)
	// No lookup expectation: individual-only pricing never calls out.
	mockClient := mocks.NewMockFeeLookupClient(ctrl)

	service := services.NewFeeService(mockQuerier, mockClient)
	fee := service.Resolve(context.Background(), activityID, regimeID, nil)

	assert.True(t, fee.ToBeNegotiated)
	assert.Equal(t, business.FeeReasonIndividualPricing, fee.Reason)
	assert.Equal(t, int64(0), fee.BillableCents())
}

func TestFeeService_ResolveOutcomes(t *testing.T) {
	activityID := uuid.New()
	regimeID := uuid.New()
	bracketID := uuid.New()

	legalEntityActivity := db.ActivityType{
		ID: activityID, AppliesToIndividual: false, AppliesToLegalEntity: true,
	}

	tests := []struct {
		name           string
		lookup         feeschedule.LookupResult
		wantNegotiated bool
		wantReason     business.FeeReasonCode
		wantAmount     int64
	}{
		{
			name:       "configured fee resolves to an amount",
			lookup:     feeschedule.LookupResult{Status: feeschedule.StatusOK, AmountCents: 85000},
			wantAmount: 85000,
		},
		{
			name:       "zero fee is a resolved amount, not a sentinel",
			lookup:     feeschedule.LookupResult{Status: feeschedule.StatusOK, AmountCents: 0},
			wantAmount: 0,
		},
		{
			name:           "combination above the highest tier",
			lookup:         feeschedule.LookupResult{Status: feeschedule.StatusOK, ToBeNegotiated: true},
			wantNegotiated: true,
			wantReason:     business.FeeReasonExceedsRange,
		},
		{
			name:           "missing configuration",
			lookup:         feeschedule.LookupResult{Status: feeschedule.StatusNotConfigured, Reason: "configuration missing"},
			wantNegotiated: true,
			wantReason:     business.FeeReasonNotConfigured,
		},
		{
			name:           "lookup service failure",
			lookup:         feeschedule.LookupResult{Status: feeschedule.StatusServiceError, Reason: "fee service unreachable"},
			wantNegotiated: true,
			wantReason:     business.FeeReasonServiceError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			mockQuerier.EXPECT().GetActivityType(gomock.Any(), activityID).Return(legalEntityActivity, nil)

			mockClient := mocks.NewMockFeeLookupClient(ctrl)
			mockClient.EXPECT().LookupMonthlyFee(gomock.Any(), feeschedule.LookupParams{
				ActivityTypeID: activityID,
				RegimeID:       regimeID,
				BracketID:      &bracketID,
			}).Return(tt.lookup)

			service := services.NewFeeService(mockQuerier, mockClient)
			fee := service.Resolve(context.Background(), activityID, regimeID, &bracketID)

			assert.Equal(t, tt.wantNegotiated, fee.ToBeNegotiated)
			assert.Equal(t, tt.wantReason, fee.Reason)
			if !tt.wantNegotiated {
				assert.Equal(t, tt.wantAmount, fee.AmountCents)
			}
			assert.False(t, fee.ResolvedAt.IsZero())
		})
	}
}

func TestFeeService_ActivityLoadFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetActivityType(gomock.Any(), activityID).
		Return(db.ActivityType{}, errors.New("connection refused"))
	mockClient := mocks.NewMockFeeLookupClient(ctrl)

	service := services.NewFeeService(mockQuerier, mockClient)
	fee := service.Resolve(context.Background(), activityID, uuid.New(), nil)

	// Even infrastructure failures terminate in a usable sentinel.
	assert.True(t, fee.ToBeNegotiated)
	assert.Equal(t, business.FeeReasonServiceError, fee.Reason)
}
