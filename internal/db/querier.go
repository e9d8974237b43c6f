package db

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the storage interface consumed by services and handlers.
// A gomock implementation lives in the mocks package.
type Querier interface {
	ListActivityTypes(ctx context.Context, activeOnly bool) ([]ActivityType, error)
	GetActivityType(ctx context.Context, id uuid.UUID) (ActivityType, error)

	ListTaxRegimes(ctx context.Context, activeOnly bool) ([]TaxRegime, error)
	GetTaxRegime(ctx context.Context, id uuid.UUID) (TaxRegime, error)

	ListRevenueBrackets(ctx context.Context, regimeID uuid.UUID) ([]RevenueBracket, error)
	GetRevenueBracket(ctx context.Context, id uuid.UUID) (RevenueBracket, error)

	GetClient(ctx context.Context, id uuid.UUID) (Client, error)
	ListClientLegalEntities(ctx context.Context, clientID uuid.UUID) ([]LegalEntity, error)

	ListCatalogServices(ctx context.Context, activeOnly bool) ([]CatalogService, error)
	GetCatalogService(ctx context.Context, id uuid.UUID) (CatalogService, error)

	GetOpeningFee(ctx context.Context, regimeID uuid.UUID) (OpeningFee, error)

	GetNextProposalNumber(ctx context.Context) (int32, error)
	CreateProposal(ctx context.Context, arg CreateProposalParams) (Proposal, error)
	CreateProposalItem(ctx context.Context, arg CreateProposalItemParams) (ProposalItem, error)
	GetProposal(ctx context.Context, id uuid.UUID) (Proposal, error)
	ListProposalItems(ctx context.Context, proposalID uuid.UUID) ([]ProposalItem, error)
	MarkProposalPDFGenerated(ctx context.Context, id uuid.UUID) error

	UpsertDraftSnapshot(ctx context.Context, arg UpsertDraftSnapshotParams) error
	GetDraftSnapshot(ctx context.Context, draftID uuid.UUID) (DraftSnapshot, error)
	DeleteDraftSnapshot(ctx context.Context, draftID uuid.UUID) error
}

// CreateProposalParams carries the draft-derived fields persisted on finalize.
type CreateProposalParams struct {
	ID                   uuid.UUID
	Number               string
	ClientID             uuid.UUID
	ActivityTypeID       uuid.UUID
	RegimeID             uuid.UUID
	BracketID            *uuid.UUID
	Status               string
	DiscountPercent      float64
	DiscountAmountCents  int64
	MonthlyFeeCents      int64
	MonthlyFeeNegotiated bool
	OpeningFeeCents      int64
	TotalCents           int64
	RequiresApproval     bool
	Notes                string
	ValidUntil           pgtype.Timestamptz
}

// CreateProposalItemParams is one service line of a finalized proposal.
type CreateProposalItemParams struct {
	ID             uuid.UUID
	ProposalID     uuid.UUID
	ServiceID      uuid.UUID
	ServiceName    string
	Category       string
	Quantity       int32
	UnitPriceCents int64
	SubtotalCents  int64
}

// UpsertDraftSnapshotParams is the remote autosave payload.
type UpsertDraftSnapshotParams struct {
	DraftID uuid.UUID
	Step    string
	Payload json.RawMessage
}

var _ Querier = (*Queries)(nil)
