package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/helpers"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/types/business"
)

// CompatibilityService resolves which tax regimes are selectable for an
// activity type. Compatibility is pure flag intersection on person type; an
// empty result is a valid outcome, not an error.
type CompatibilityService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewCompatibilityService creates a new compatibility service
func NewCompatibilityService(queries db.Querier) *CompatibilityService {
	return &CompatibilityService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CompatibleRegimes returns the active regimes whose applicability flags
// intersect the activity's flags. The order of the underlying regime list is
// preserved.
func (s *CompatibilityService) CompatibleRegimes(ctx context.Context, activityTypeID uuid.UUID) ([]business.TaxRegime, error) {
	activityRow, err := s.queries.GetActivityType(ctx, activityTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity type: %w", err)
	}
	activity := helpers.ToActivityType(activityRow)

	regimeRows, err := s.queries.ListTaxRegimes(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax regimes: %w", err)
	}

	compatible := make([]business.TaxRegime, 0, len(regimeRows))
	for _, row := range regimeRows {
		regime := helpers.ToTaxRegime(row)
		if activity.CompatibleWith(regime) {
			compatible = append(compatible, regime)
		}
	}

	if len(compatible) == 0 {
		s.logger.Info("No compatible tax regimes for activity type",
			zap.String("activity_type_id", activityTypeID.String()),
			zap.String("activity_code", activity.Code))
	}

	return compatible, nil
}
