package db

import (
	"context"

	"github.com/google/uuid"
)

const listActivityTypes = `
SELECT id, code, name, applies_to_individual, applies_to_legal_entity, active, created_at
FROM activity_types
WHERE active = true OR $1 = false
ORDER BY name
`

func (q *Queries) ListActivityTypes(ctx context.Context, activeOnly bool) ([]ActivityType, error) {
	rows, err := q.db.Query(ctx, listActivityTypes, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ActivityType
	for rows.Next() {
		var i ActivityType
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.Name,
			&i.AppliesToIndividual,
			&i.AppliesToLegalEntity,
			&i.Active,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getActivityType = `
SELECT id, code, name, applies_to_individual, applies_to_legal_entity, active, created_at
FROM activity_types
WHERE id = $1
`

func (q *Queries) GetActivityType(ctx context.Context, id uuid.UUID) (ActivityType, error) {
	row := q.db.QueryRow(ctx, getActivityType, id)
	var i ActivityType
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.AppliesToIndividual,
		&i.AppliesToLegalEntity,
		&i.Active,
		&i.CreatedAt,
	)
	return i, err
}

const listTaxRegimes = `
SELECT id, code, name, description, applies_to_individual, applies_to_legal_entity, active, created_at
FROM tax_regimes
WHERE active = true OR $1 = false
ORDER BY name
`

func (q *Queries) ListTaxRegimes(ctx context.Context, activeOnly bool) ([]TaxRegime, error) {
	rows, err := q.db.Query(ctx, listTaxRegimes, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TaxRegime
	for rows.Next() {
		var i TaxRegime
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.Name,
			&i.Description,
			&i.AppliesToIndividual,
			&i.AppliesToLegalEntity,
			&i.Active,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getTaxRegime = `
SELECT id, code, name, description, applies_to_individual, applies_to_legal_entity, active, created_at
FROM tax_regimes
WHERE id = $1
`

func (q *Queries) GetTaxRegime(ctx context.Context, id uuid.UUID) (TaxRegime, error) {
	row := q.db.QueryRow(ctx, getTaxRegime, id)
	var i TaxRegime
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.Description,
		&i.AppliesToIndividual,
		&i.AppliesToLegalEntity,
		&i.Active,
		&i.CreatedAt,
	)
	return i, err
}

const listRevenueBrackets = `
SELECT id, regime_id, lower_bound_cents, upper_bound_cents, rate_percent, active
FROM revenue_brackets
WHERE regime_id = $1 AND active = true
ORDER BY lower_bound_cents
`

func (q *Queries) ListRevenueBrackets(ctx context.Context, regimeID uuid.UUID) ([]RevenueBracket, error) {
	rows, err := q.db.Query(ctx, listRevenueBrackets, regimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RevenueBracket
	for rows.Next() {
		var i RevenueBracket
		if err := rows.Scan(
			&i.ID,
			&i.RegimeID,
			&i.LowerBoundCents,
			&i.UpperBoundCents,
			&i.RatePercent,
			&i.Active,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getRevenueBracket = `
SELECT id, regime_id, lower_bound_cents, upper_bound_cents, rate_percent, active
FROM revenue_brackets
WHERE id = $1
`

func (q *Queries) GetRevenueBracket(ctx context.Context, id uuid.UUID) (RevenueBracket, error) {
	row := q.db.QueryRow(ctx, getRevenueBracket, id)
	var i RevenueBracket
	err := row.Scan(
		&i.ID,
		&i.RegimeID,
		&i.LowerBoundCents,
		&i.UpperBoundCents,
		&i.RatePercent,
		&i.Active,
	)
	return i, err
}

const getClient = `
SELECT id, name, person_type, opening_new_entity, active, created_at
FROM clients
WHERE id = $1
`

func (q *Queries) GetClient(ctx context.Context, id uuid.UUID) (Client, error) {
	row := q.db.QueryRow(ctx, getClient, id)
	var i Client
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.PersonType,
		&i.OpeningNewEntity,
		&i.Active,
		&i.CreatedAt,
	)
	return i, err
}

const listClientLegalEntities = `
SELECT id, client_id, tax_id, legal_name, active
FROM legal_entities
WHERE client_id = $1 AND active = true
ORDER BY legal_name
`

func (q *Queries) ListClientLegalEntities(ctx context.Context, clientID uuid.UUID) ([]LegalEntity, error) {
	rows, err := q.db.Query(ctx, listClientLegalEntities, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LegalEntity
	for rows.Next() {
		var i LegalEntity
		if err := rows.Scan(&i.ID, &i.ClientID, &i.TaxID, &i.LegalName, &i.Active); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listCatalogServices = `
SELECT id, name, category, unit_price_cents, active
FROM services
WHERE active = true OR $1 = false
ORDER BY category, name
`

func (q *Queries) ListCatalogServices(ctx context.Context, activeOnly bool) ([]CatalogService, error) {
	rows, err := q.db.Query(ctx, listCatalogServices, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CatalogService
	for rows.Next() {
		var i CatalogService
		if err := rows.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPriceCents, &i.Active); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getCatalogService = `
SELECT id, name, category, unit_price_cents, active
FROM services
WHERE id = $1
`

func (q *Queries) GetCatalogService(ctx context.Context, id uuid.UUID) (CatalogService, error) {
	row := q.db.QueryRow(ctx, getCatalogService, id)
	var i CatalogService
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.UnitPriceCents, &i.Active)
	return i, err
}

const getOpeningFee = `
SELECT regime_id, amount_cents, label
FROM opening_fees
WHERE regime_id = $1
`

func (q *Queries) GetOpeningFee(ctx context.Context, regimeID uuid.UUID) (OpeningFee, error) {
	row := q.db.QueryRow(ctx, getOpeningFee, regimeID)
	var i OpeningFee
	err := row.Scan(&i.RegimeID, &i.AmountCents, &i.Label)
	return i, err
}

const getNextProposalNumber = `
SELECT nextval('proposal_number_seq')::int
`

func (q *Queries) GetNextProposalNumber(ctx context.Context) (int32, error) {
	row := q.db.QueryRow(ctx, getNextProposalNumber)
	var n int32
	err := row.Scan(&n)
	return n, err
}

const createProposal = `
INSERT INTO proposals (
	id, number, client_id, activity_type_id, regime_id, bracket_id,
	status, discount_percent, discount_amount_cents,
	monthly_fee_cents, monthly_fee_negotiated, opening_fee_cents,
	total_cents, requires_approval, notes, valid_until, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now()
)
RETURNING id, number, client_id, activity_type_id, regime_id, bracket_id,
	status, discount_percent, discount_amount_cents,
	monthly_fee_cents, monthly_fee_negotiated, opening_fee_cents,
	total_cents, requires_approval, notes, valid_until,
	pdf_generated, pdf_generated_at, created_at, updated_at
`

func (q *Queries) CreateProposal(ctx context.Context, arg CreateProposalParams) (Proposal, error) {
	row := q.db.QueryRow(ctx, createProposal,
		arg.ID,
		arg.Number,
		arg.ClientID,
		arg.ActivityTypeID,
		arg.RegimeID,
		arg.BracketID,
		arg.Status,
		arg.DiscountPercent,
		arg.DiscountAmountCents,
		arg.MonthlyFeeCents,
		arg.MonthlyFeeNegotiated,
		arg.OpeningFeeCents,
		arg.TotalCents,
		arg.RequiresApproval,
		arg.Notes,
		arg.ValidUntil,
	)
	return scanProposal(row)
}

const createProposalItem = `
INSERT INTO proposal_items (
	id, proposal_id, service_id, service_name, category,
	quantity, unit_price_cents, subtotal_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, proposal_id, service_id, service_name, category,
	quantity, unit_price_cents, subtotal_cents
`

func (q *Queries) CreateProposalItem(ctx context.Context, arg CreateProposalItemParams) (ProposalItem, error) {
	row := q.db.QueryRow(ctx, createProposalItem,
		arg.ID,
		arg.ProposalID,
		arg.ServiceID,
		arg.ServiceName,
		arg.Category,
		arg.Quantity,
		arg.UnitPriceCents,
		arg.SubtotalCents,
	)
	var i ProposalItem
	err := row.Scan(
		&i.ID,
		&i.ProposalID,
		&i.ServiceID,
		&i.ServiceName,
		&i.Category,
		&i.Quantity,
		&i.UnitPriceCents,
		&i.SubtotalCents,
	)
	return i, err
}

const getProposal = `
SELECT id, number, client_id, activity_type_id, regime_id, bracket_id,
	status, discount_percent, discount_amount_cents,
	monthly_fee_cents, monthly_fee_negotiated, opening_fee_cents,
	total_cents, requires_approval, notes, valid_until,
	pdf_generated, pdf_generated_at, created_at, updated_at
FROM proposals
WHERE id = $1
`

func (q *Queries) GetProposal(ctx context.Context, id uuid.UUID) (Proposal, error) {
	return scanProposal(q.db.QueryRow(ctx, getProposal, id))
}

const listProposalItems = `
SELECT id, proposal_id, service_id, service_name, category,
	quantity, unit_price_cents, subtotal_cents
FROM proposal_items
WHERE proposal_id = $1
ORDER BY category, service_name
`

func (q *Queries) ListProposalItems(ctx context.Context, proposalID uuid.UUID) ([]ProposalItem, error) {
	rows, err := q.db.Query(ctx, listProposalItems, proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProposalItem
	for rows.Next() {
		var i ProposalItem
		if err := rows.Scan(
			&i.ID,
			&i.ProposalID,
			&i.ServiceID,
			&i.ServiceName,
			&i.Category,
			&i.Quantity,
			&i.UnitPriceCents,
			&i.SubtotalCents,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const markProposalPDFGenerated = `
UPDATE proposals
SET pdf_generated = true, pdf_generated_at = now(), updated_at = now()
WHERE id = $1
`

func (q *Queries) MarkProposalPDFGenerated(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, markProposalPDFGenerated, id)
	return err
}

const upsertDraftSnapshot = `
INSERT INTO proposal_draft_snapshots (draft_id, step, payload, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (draft_id)
DO UPDATE SET step = EXCLUDED.step, payload = EXCLUDED.payload, updated_at = now()
`

func (q *Queries) UpsertDraftSnapshot(ctx context.Context, arg UpsertDraftSnapshotParams) error {
	_, err := q.db.Exec(ctx, upsertDraftSnapshot, arg.DraftID, arg.Step, arg.Payload)
	return err
}

const getDraftSnapshot = `
SELECT draft_id, step, payload, updated_at
FROM proposal_draft_snapshots
WHERE draft_id = $1
`

func (q *Queries) GetDraftSnapshot(ctx context.Context, draftID uuid.UUID) (DraftSnapshot, error) {
	row := q.db.QueryRow(ctx, getDraftSnapshot, draftID)
	var i DraftSnapshot
	err := row.Scan(&i.DraftID, &i.Step, &i.Payload, &i.UpdatedAt)
	return i, err
}

const deleteDraftSnapshot = `
DELETE FROM proposal_draft_snapshots
WHERE draft_id = $1
`

func (q *Queries) DeleteDraftSnapshot(ctx context.Context, draftID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteDraftSnapshot, draftID)
	return err
}

type proposalRow interface {
	Scan(dest ...interface{}) error
}

func scanProposal(row proposalRow) (Proposal, error) {
	var i Proposal
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.ClientID,
		&i.ActivityTypeID,
		&i.RegimeID,
		&i.BracketID,
		&i.Status,
		&i.DiscountPercent,
		&i.DiscountAmountCents,
		&i.MonthlyFeeCents,
		&i.MonthlyFeeNegotiated,
		&i.OpeningFeeCents,
		&i.TotalCents,
		&i.RequiresApproval,
		&i.Notes,
		&i.ValidUntil,
		&i.PDFGenerated,
		&i.PDFGeneratedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
