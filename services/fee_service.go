package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/client/feeschedule"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/types/business"
)

// FeeLookupClient is the fee-schedule lookup consumed by the fee service.
// Satisfied by *feeschedule.Client.
type FeeLookupClient interface {
	LookupMonthlyFee(ctx context.Context, params feeschedule.LookupParams) feeschedule.LookupResult
}

// FeeService resolves the automatic monthly fee for a tax configuration.
// Resolution always terminates in a usable state: either a concrete amount
// or the to-be-negotiated sentinel with a reason. It never returns an error
// to its callers.
type FeeService struct {
	queries   db.Querier
	feeClient FeeLookupClient
	logger    *zap.Logger
}

// NewFeeService creates a new fee service
func NewFeeService(queries db.Querier, feeClient FeeLookupClient) *FeeService {
	return &FeeService{
		queries:   queries,
		feeClient: feeClient,
		logger:    logger.Log,
	}
}

// Resolve runs the fallback chain for the given combination:
//
//  1. individual-only activity: priced manually, no lookup attempted;
//  2. fee-schedule lookup by (activity, regime, bracket);
//  3. missing or out-of-range configuration: to be negotiated, with the
//     original distinction preserved;
//  4. lookup failure: to be negotiated, tagged as a service error.
func (s *FeeService) Resolve(ctx context.Context, activityTypeID, regimeID uuid.UUID, bracketID *uuid.UUID) business.FeeResolution {
	activityRow, err := s.queries.GetActivityType(ctx, activityTypeID)
	if err != nil {
		s.logger.Error("Failed to load activity type for fee resolution",
			zap.String("activity_type_id", activityTypeID.String()),
			zap.Error(err))
		return business.NegotiatedFee(business.FeeReasonServiceError,
			"activity type could not be loaded")
	}

	if activityRow.AppliesToIndividual && !activityRow.AppliesToLegalEntity {
		return business.NegotiatedFee(business.FeeReasonIndividualPricing,
			"individuals are priced manually")
	}

	result := s.feeClient.LookupMonthlyFee(ctx, feeschedule.LookupParams{
		ActivityTypeID: activityTypeID,
		RegimeID:       regimeID,
		BracketID:      bracketID,
	})

	switch result.Status {
	case feeschedule.StatusOK:
		if result.ToBeNegotiated {
			// The combination exists but sits above the highest
			// configured tier.
			return business.NegotiatedFee(business.FeeReasonExceedsRange,
				"value exceeds configured range")
		}
		return business.ResolvedFee(result.AmountCents)

	case feeschedule.StatusNotConfigured:
		return business.NegotiatedFee(business.FeeReasonNotConfigured, result.Reason)

	default:
		s.logger.Warn("Monthly fee lookup degraded to manual pricing",
			zap.String("activity_type_id", activityTypeID.String()),
			zap.String("regime_id", regimeID.String()),
			zap.String("reason", result.Reason))
		return business.NegotiatedFee(business.FeeReasonServiceError, result.Reason)
	}
}
