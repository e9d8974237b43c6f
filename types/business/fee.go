package business

import "time"

// FeeReasonCode explains why a monthly fee came back as "to be negotiated".
// The distinction between NotConfigured and ServiceError is surfaced to the
// user; pricing never blocks on either.
type FeeReasonCode string

const (
	// FeeReasonIndividualPricing: individual-only activities are always
	// priced manually, no lookup is attempted.
	FeeReasonIndividualPricing FeeReasonCode = "individual_pricing"
	// FeeReasonNotConfigured: no fee row exists for the combination.
	FeeReasonNotConfigured FeeReasonCode = "not_configured"
	// FeeReasonExceedsRange: the revenue bracket is above the highest
	// configured tier.
	FeeReasonExceedsRange FeeReasonCode = "exceeds_configured_range"
	// FeeReasonServiceError: the fee-schedule lookup itself failed.
	FeeReasonServiceError FeeReasonCode = "service_error"
)

// FeeResolution is the outcome of a monthly-fee lookup. Exactly one of the
// two shapes holds: a concrete amount (ToBeNegotiated false), or a
// to-be-negotiated sentinel with a reason. A legitimately zero fee is
// represented as ToBeNegotiated false with AmountCents zero, which keeps it
// distinct from an unresolved fee.
type FeeResolution struct {
	AmountCents    int64         `json:"amount_cents"`
	ToBeNegotiated bool          `json:"to_be_negotiated"`
	Reason         FeeReasonCode `json:"reason,omitempty"`
	Detail         string        `json:"detail,omitempty"`
	ResolvedAt     time.Time     `json:"resolved_at"`
}

// ResolvedFee builds a resolution carrying a concrete amount.
func ResolvedFee(amountCents int64) FeeResolution {
	return FeeResolution{
		AmountCents: amountCents,
		ResolvedAt:  time.Now().UTC(),
	}
}

// NegotiatedFee builds a to-be-negotiated resolution with the given reason.
func NegotiatedFee(reason FeeReasonCode, detail string) FeeResolution {
	return FeeResolution{
		ToBeNegotiated: true,
		Reason:         reason,
		Detail:         detail,
		ResolvedAt:     time.Now().UTC(),
	}
}

// BillableCents is the amount carried into financial totals: zero while the
// fee is still to be negotiated.
func (f FeeResolution) BillableCents() int64 {
	if f.ToBeNegotiated {
		return 0
	}
	return f.AmountCents
}
