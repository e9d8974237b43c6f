package services

import (
	"math"

	"github.com/google/uuid"

	"github.com/contaflow/backoffice/types/business"
)

// FinancialCalculator derives the financial summary of a draft. It is pure:
// no storage, no clock, no mutation of its inputs. The same draft and catalog
// always produce the same summary.
type FinancialCalculator struct{}

// NewFinancialCalculator creates a new financial calculator
func NewFinancialCalculator() *FinancialCalculator {
	return &FinancialCalculator{}
}

// Summarize prices the draft. catalog maps service IDs to their catalog
// entries (for category grouping); openingFeeCents is the company-opening fee
// configured for the chosen regime, applied only when the client is opening a
// new legal entity.
//
// Discount percent is taken as-is: range validation is a boundary concern of
// the wizard and handlers, not of the calculator.
func (c *FinancialCalculator) Summarize(draft *business.ProposalDraft, catalog map[uuid.UUID]business.CatalogService, openingFeeCents int64) business.FinancialSummary {
	summary := business.FinancialSummary{
		CategorySubtotalsCents: make(map[string]int64),
		DiscountPercent:        draft.DiscountPercent,
	}

	for _, selected := range draft.Services {
		subtotal := selected.SubtotalCents()
		summary.TotalServicesCents += subtotal

		category := "other"
		if entry, ok := catalog[selected.ServiceID]; ok && entry.Category != "" {
			category = entry.Category
		}
		summary.CategorySubtotalsCents[category] += subtotal
	}

	if draft.Client != nil && draft.Client.OpeningNewEntity {
		summary.CompanyOpeningFeeCents = openingFeeCents
	}

	if draft.MonthlyFee != nil {
		summary.MonthlyFeeCents = draft.MonthlyFee.BillableCents()
		summary.MonthlyFeeNegotiated = draft.MonthlyFee.ToBeNegotiated
	}

	summary.PreDiscountSubtotalCents = summary.TotalServicesCents +
		summary.CompanyOpeningFeeCents +
		summary.MonthlyFeeCents

	summary.DiscountAmountCents = roundHalfUpCents(
		float64(summary.PreDiscountSubtotalCents) * draft.DiscountPercent / 100)
	summary.FinalTotalCents = summary.PreDiscountSubtotalCents - summary.DiscountAmountCents

	summary.RequiresApproval = draft.DiscountPercent > business.ApprovalThresholdPercent

	return summary
}

// roundHalfUpCents rounds a fractional cent amount half away from zero.
func roundHalfUpCents(amount float64) int64 {
	return int64(math.Round(amount))
}
