package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/mocks"
	"github.com/contaflow/backoffice/services"
)

func TestBracketService_BracketsForRegime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regimeID := uuid.New()
	rows := []db.RevenueBracket{
		{ID: uuid.New(), RegimeID: regimeID, LowerBoundCents: 0, UpperBoundCents: pgtype.Int8{Int64: 18000000, Valid: true}, RatePercent: 4.0, Active: true},
		{ID: uuid.New(), RegimeID: regimeID, LowerBoundCents: 18000001, UpperBoundCents: pgtype.Int8{Int64: 36000000, Valid: true}, RatePercent: 7.3, Active: true},
		{ID: uuid.New(), RegimeID: regimeID, LowerBoundCents: 36000001, RatePercent: 9.5, Active: true},
	}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListRevenueBrackets(gomock.Any(), regimeID).Return(rows, nil)

	service := services.NewBracketService(mockQuerier)
	brackets, err := service.BracketsForRegime(context.Background(), regimeID)
	require.NoError(t, err)
	require.Len(t, brackets, 3)

	assert.Equal(t, int64(0), brackets[0].LowerBoundCents)
	require.NotNil(t, brackets[0].UpperBoundCents)
	assert.Equal(t, int64(18000000), *brackets[0].UpperBoundCents)
	assert.False(t, brackets[0].OpenEnded())

	// The top tier carries no upper bound.
	assert.Nil(t, brackets[2].UpperBoundCents)
	assert.True(t, brackets[2].OpenEnded())
}

func TestBracketService_NoBracketsIsFirstClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regimeID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListRevenueBrackets(gomock.Any(), regimeID).Return([]db.RevenueBracket{}, nil)

	service := services.NewBracketService(mockQuerier)
	brackets, err := service.BracketsForRegime(context.Background(), regimeID)
	require.NoError(t, err)
	assert.NotNil(t, brackets)
	assert.Empty(t, brackets)
}

func TestBracketService_QueryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regimeID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListRevenueBrackets(gomock.Any(), regimeID).
		Return(nil, errors.New("connection refused"))

	service := services.NewBracketService(mockQuerier)
	_, err := service.BracketsForRegime(context.Background(), regimeID)
	assert.ErrorContains(t, err, "failed to list revenue brackets")
}
