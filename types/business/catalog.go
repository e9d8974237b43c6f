package business

import (
	"github.com/google/uuid"
)

// ActivityType classifies the client's business activity. Reference data,
// immutable from the wizard's point of view.
type ActivityType struct {
	ID                   uuid.UUID `json:"id"`
	Code                 string    `json:"code"`
	Name                 string    `json:"name"`
	AppliesToIndividual  bool      `json:"applies_to_individual"`
	AppliesToLegalEntity bool      `json:"applies_to_legal_entity"`
	Active               bool      `json:"active"`
}

// IndividualOnly reports whether the activity is restricted to individuals.
// Individual-only activities are always priced manually.
func (a ActivityType) IndividualOnly() bool {
	return a.AppliesToIndividual && !a.AppliesToLegalEntity
}

// CompatibleWith reports whether the regime's applicability flags intersect
// the activity's flags on at least one person type.
func (a ActivityType) CompatibleWith(r TaxRegime) bool {
	return (r.AppliesToIndividual && a.AppliesToIndividual) ||
		(r.AppliesToLegalEntity && a.AppliesToLegalEntity)
}

// TaxRegime is a legal taxation framework with its own fee and bracket rules.
type TaxRegime struct {
	ID                   uuid.UUID `json:"id"`
	Code                 string    `json:"code"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	AppliesToIndividual  bool      `json:"applies_to_individual"`
	AppliesToLegalEntity bool      `json:"applies_to_legal_entity"`
	Active               bool      `json:"active"`
}

// RevenueBracket is a tiered revenue range within a tax regime. An absent
// upper bound means the bracket is open-ended. Brackets are ordered by lower
// bound ascending and are assumed non-overlapping upstream.
type RevenueBracket struct {
	ID              uuid.UUID `json:"id"`
	RegimeID        uuid.UUID `json:"regime_id"`
	LowerBoundCents int64     `json:"lower_bound_cents"`
	UpperBoundCents *int64    `json:"upper_bound_cents,omitempty"`
	RatePercent     float64   `json:"rate_percent"`
	Active          bool      `json:"active"`
}

// OpenEnded reports whether the bracket has no upper bound.
func (b RevenueBracket) OpenEnded() bool {
	return b.UpperBoundCents == nil
}

// CatalogService is an entry of the firm's service catalog. Selected services
// are grouped by Category for financial reporting.
type CatalogService struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Active         bool      `json:"active"`
}
