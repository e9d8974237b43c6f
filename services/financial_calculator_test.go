package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflow/backoffice/services"
	"github.com/contaflow/backoffice/types/business"
)

func buildCatalog(entries ...business.CatalogService) map[uuid.UUID]business.CatalogService {
	catalog := make(map[uuid.UUID]business.CatalogService, len(entries))
	for _, entry := range entries {
		catalog[entry.ID] = entry
	}
	return catalog
}

func TestFinancialCalculator_GroupsByCategory(t *testing.T) {
	calc := services.NewFinancialCalculator()

	contabil := business.CatalogService{ID: uuid.New(), Name: "Escrituração", Category: "contabil", UnitPriceCents: 30000}
	fiscal := business.CatalogService{ID: uuid.New(), Name: "Apuração fiscal", Category: "fiscal", UnitPriceCents: 20000}
	folha := business.CatalogService{ID: uuid.New(), Name: "Folha de pagamento", Category: "pessoal", UnitPriceCents: 1500}

	fee := business.ResolvedFee(50000)
	draft := &business.ProposalDraft{
		Client:     &business.Client{ID: uuid.New(), PersonType: business.PersonLegalEntity},
		MonthlyFee: &fee,
		Services: []business.SelectedService{
			{ServiceID: contabil.ID, Quantity: 1, UnitPriceCents: 30000},
			{ServiceID: fiscal.ID, Quantity: 2, UnitPriceCents: 20000},
			{ServiceID: folha.ID, Quantity: 10, UnitPriceCents: 1500},
		},
	}

	summary := calc.Summarize(draft, buildCatalog(contabil, fiscal, folha), 0)

	assert.Equal(t, int64(30000), summary.CategorySubtotalsCents["contabil"])
	assert.Equal(t, int64(40000), summary.CategorySubtotalsCents["fiscal"])
	assert.Equal(t, int64(15000), summary.CategorySubtotalsCents["pessoal"])
	assert.Equal(t, int64(85000), summary.TotalServicesCents)
	assert.Equal(t, int64(50000), summary.MonthlyFeeCents)
	assert.Equal(t, int64(135000), summary.PreDiscountSubtotalCents)
	assert.Equal(t, int64(135000), summary.FinalTotalCents)
	assert.False(t, summary.RequiresApproval)
}

func TestFinancialCalculator_OpeningFeeOnlyWhenOpening(t *testing.T) {
	calc := services.NewFinancialCalculator()
	fee := business.ResolvedFee(40000)

	draft := &business.ProposalDraft{
		Client:     &business.Client{ID: uuid.New(), PersonType: business.PersonLegalEntity},
		MonthlyFee: &fee,
	}

	summary := calc.Summarize(draft, nil, 120000)
	assert.Equal(t, int64(0), summary.CompanyOpeningFeeCents)
	assert.Equal(t, int64(40000), summary.PreDiscountSubtotalCents)

	draft.Client.OpeningNewEntity = true
	summary = calc.Summarize(draft, nil, 120000)
	assert.Equal(t, int64(120000), summary.CompanyOpeningFeeCents)
	assert.Equal(t, int64(160000), summary.PreDiscountSubtotalCents)
}

func TestFinancialCalculator_NegotiatedFeeContributesZero(t *testing.T) {
	calc := services.NewFinancialCalculator()
	fee := business.NegotiatedFee(business.FeeReasonNotConfigured, "configuration missing")

	entry := business.CatalogService{ID: uuid.New(), Category: "contabil", UnitPriceCents: 30000}
	draft := &business.ProposalDraft{
		Client:     &business.Client{ID: uuid.New()},
		MonthlyFee: &fee,
		Services: []business.SelectedService{
			{ServiceID: entry.ID, Quantity: 1, UnitPriceCents: 30000},
		},
	}

	summary := calc.Summarize(draft, buildCatalog(entry), 0)
	assert.Equal(t, int64(0), summary.MonthlyFeeCents)
	assert.True(t, summary.MonthlyFeeNegotiated)
	assert.Equal(t, int64(30000), summary.PreDiscountSubtotalCents)
}

func TestFinancialCalculator_DiscountRoundsHalfUp(t *testing.T) {
	calc := services.NewFinancialCalculator()
	fee := business.ResolvedFee(0)

	entry := business.CatalogService{ID: uuid.New(), Category: "contabil", UnitPriceCents: 10001}
	draft := &business.ProposalDraft{
		Client:          &business.Client{ID: uuid.New()},
		MonthlyFee:      &fee,
		DiscountPercent: 5,
		Services: []business.SelectedService{
			{ServiceID: entry.ID, Quantity: 1, UnitPriceCents: 10001},
		},
	}

	// 5% of 10001 = 500.05, rounds down to 500.
	summary := calc.Summarize(draft, buildCatalog(entry), 0)
	assert.Equal(t, int64(500), summary.DiscountAmountCents)
	assert.Equal(t, int64(9501), summary.FinalTotalCents)

	// 5% of 10010 = 500.50, rounds half up to 501.
	draft.Services[0].UnitPriceCents = 10010
	entry.UnitPriceCents = 10010
	summary = calc.Summarize(draft, buildCatalog(entry), 0)
	assert.Equal(t, int64(501), summary.DiscountAmountCents)
	assert.Equal(t, int64(9509), summary.FinalTotalCents)
}

func TestFinancialCalculator_ApprovalThreshold(t *testing.T) {
	calc := services.NewFinancialCalculator()
	fee := business.ResolvedFee(100000)

	draft := &business.ProposalDraft{
		Client:     &business.Client{ID: uuid.New()},
		MonthlyFee: &fee,
	}

	// Exactly at the threshold does not require approval.
	draft.DiscountPercent = 20
	assert.False(t, calc.Summarize(draft, nil, 0).RequiresApproval)

	draft.DiscountPercent = 20.01
	assert.True(t, calc.Summarize(draft, nil, 0).RequiresApproval)
}

func TestFinancialCalculator_EmptyServicesStillPrices(t *testing.T) {
	calc := services.NewFinancialCalculator()
	fee := business.ResolvedFee(45000)

	draft := &business.ProposalDraft{
		Client:     &business.Client{ID: uuid.New()},
		MonthlyFee: &fee,
	}

	summary := calc.Summarize(draft, nil, 0)
	assert.Empty(t, summary.CategorySubtotalsCents)
	assert.Equal(t, int64(0), summary.TotalServicesCents)
	assert.Equal(t, int64(45000), summary.FinalTotalCents)
}

func TestFinancialCalculator_IsPure(t *testing.T) {
	calc := services.NewFinancialCalculator()
	fee := business.ResolvedFee(50000)

	entry := business.CatalogService{ID: uuid.New(), Category: "contabil", UnitPriceCents: 30000}
	draft := &business.ProposalDraft{
		Client:          &business.Client{ID: uuid.New()},
		MonthlyFee:      &fee,
		DiscountPercent: 10,
		Services: []business.SelectedService{
			{ServiceID: entry.ID, Quantity: 2, UnitPriceCents: 30000},
		},
	}
	catalog := buildCatalog(entry)

	first := calc.Summarize(draft, catalog, 0)
	second := calc.Summarize(draft, catalog, 0)
	require.Equal(t, first, second)

	// Inputs are untouched.
	assert.Equal(t, 10.0, draft.DiscountPercent)
	assert.Len(t, draft.Services, 1)
}
