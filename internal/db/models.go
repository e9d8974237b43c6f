package db

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ActivityType is a row of the activity_types reference table.
type ActivityType struct {
	ID                   uuid.UUID          `json:"id"`
	Code                 string             `json:"code"`
	Name                 string             `json:"name"`
	AppliesToIndividual  bool               `json:"applies_to_individual"`
	AppliesToLegalEntity bool               `json:"applies_to_legal_entity"`
	Active               bool               `json:"active"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
}

// TaxRegime is a row of the tax_regimes reference table.
type TaxRegime struct {
	ID                   uuid.UUID          `json:"id"`
	Code                 string             `json:"code"`
	Name                 string             `json:"name"`
	Description          pgtype.Text        `json:"description"`
	AppliesToIndividual  bool               `json:"applies_to_individual"`
	AppliesToLegalEntity bool               `json:"applies_to_legal_entity"`
	Active               bool               `json:"active"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
}

// RevenueBracket is a row of revenue_brackets; UpperBoundCents is null for
// the open-ended top tier.
type RevenueBracket struct {
	ID              uuid.UUID   `json:"id"`
	RegimeID        uuid.UUID   `json:"regime_id"`
	LowerBoundCents int64       `json:"lower_bound_cents"`
	UpperBoundCents pgtype.Int8 `json:"upper_bound_cents"`
	RatePercent     float64     `json:"rate_percent"`
	Active          bool        `json:"active"`
}

// Client is a row of the clients table.
type Client struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	PersonType       string             `json:"person_type"`
	OpeningNewEntity bool               `json:"opening_new_entity"`
	Active           bool               `json:"active"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
}

// LegalEntity is a row of legal_entities, owned by a client.
type LegalEntity struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	TaxID     string    `json:"tax_id"`
	LegalName string    `json:"legal_name"`
	Active    bool      `json:"active"`
}

// CatalogService is a row of the services catalog.
type CatalogService struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Active         bool      `json:"active"`
}

// OpeningFee is a row of opening_fees: the company-opening fee charged under
// a given regime.
type OpeningFee struct {
	RegimeID    uuid.UUID `json:"regime_id"`
	AmountCents int64     `json:"amount_cents"`
	Label       string    `json:"label"`
}

// Proposal is a finalized proposal row.
type Proposal struct {
	ID                  uuid.UUID          `json:"id"`
	Number              string             `json:"number"`
	ClientID            pgtype.UUID        `json:"client_id"`
	ActivityTypeID      pgtype.UUID        `json:"activity_type_id"`
	RegimeID            pgtype.UUID        `json:"regime_id"`
	BracketID           pgtype.UUID        `json:"bracket_id"`
	Status              string             `json:"status"`
	DiscountPercent     float64            `json:"discount_percent"`
	DiscountAmountCents int64              `json:"discount_amount_cents"`
	MonthlyFeeCents     int64              `json:"monthly_fee_cents"`
	MonthlyFeeNegotiated bool              `json:"monthly_fee_negotiated"`
	OpeningFeeCents     int64              `json:"opening_fee_cents"`
	TotalCents          int64              `json:"total_cents"`
	RequiresApproval    bool               `json:"requires_approval"`
	Notes               pgtype.Text        `json:"notes"`
	ValidUntil          pgtype.Timestamptz `json:"valid_until"`
	PDFGenerated        bool               `json:"pdf_generated"`
	PDFGeneratedAt      pgtype.Timestamptz `json:"pdf_generated_at"`
	CreatedAt           pgtype.Timestamptz `json:"created_at"`
	UpdatedAt           pgtype.Timestamptz `json:"updated_at"`
}

// ProposalItem is one service line of a finalized proposal.
type ProposalItem struct {
	ID             uuid.UUID `json:"id"`
	ProposalID     uuid.UUID `json:"proposal_id"`
	ServiceID      uuid.UUID `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	Category       string    `json:"category"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}

// DraftSnapshot is the remote autosave record of an in-progress draft.
type DraftSnapshot struct {
	DraftID   uuid.UUID          `json:"draft_id"`
	Step      string             `json:"step"`
	Payload   json.RawMessage    `json:"payload"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
