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

// BracketService resolves the revenue brackets of a tax regime. A regime with
// no brackets has no bracket-based pricing and the wizard skips the bracket
// choice entirely.
type BracketService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewBracketService creates a new bracket service
func NewBracketService(queries db.Querier) *BracketService {
	return &BracketService{
		queries: queries,
		logger:  logger.Log,
	}
}

// BracketsForRegime returns the regime's brackets ordered by lower bound
// ascending. An empty slice is a first-class result.
func (s *BracketService) BracketsForRegime(ctx context.Context, regimeID uuid.UUID) ([]business.RevenueBracket, error) {
	rows, err := s.queries.ListRevenueBrackets(ctx, regimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue brackets: %w", err)
	}

	brackets := make([]business.RevenueBracket, 0, len(rows))
	for _, row := range rows {
		brackets = append(brackets, helpers.ToRevenueBracket(row))
	}

	s.logger.Debug("Resolved revenue brackets",
		zap.String("regime_id", regimeID.String()),
		zap.Int("count", len(brackets)))

	return brackets, nil
}
