package business

// FinancialSummary is the priced outcome of a completed draft. Values are
// integer cents; CategorySubtotalsCents keys are catalog categories.
type FinancialSummary struct {
	CategorySubtotalsCents   map[string]int64 `json:"category_subtotals_cents"`
	TotalServicesCents       int64            `json:"total_services_cents"`
	CompanyOpeningFeeCents   int64            `json:"company_opening_fee_cents"`
	MonthlyFeeCents          int64            `json:"monthly_fee_cents"`
	MonthlyFeeNegotiated     bool             `json:"monthly_fee_negotiated"`
	PreDiscountSubtotalCents int64            `json:"pre_discount_subtotal_cents"`
	DiscountPercent          float64          `json:"discount_percent"`
	DiscountAmountCents      int64            `json:"discount_amount_cents"`
	FinalTotalCents          int64            `json:"final_total_cents"`
	RequiresApproval         bool             `json:"requires_approval"`
}
