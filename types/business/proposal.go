package business

import (
	"time"

	"github.com/google/uuid"
)

// WizardStep identifies a step of the proposal wizard, in order.
type WizardStep int

const (
	StepSelectClient WizardStep = iota
	StepConfigureTax
	StepSelectServices
	StepReviewAndDiscount
	StepFinalize
)

var stepNames = map[WizardStep]string{
	StepSelectClient:      "select_client",
	StepConfigureTax:      "configure_tax",
	StepSelectServices:    "select_services",
	StepReviewAndDiscount: "review_and_discount",
	StepFinalize:          "finalize",
}

func (s WizardStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseWizardStep maps a step identifier back to its WizardStep.
func ParseWizardStep(name string) (WizardStep, bool) {
	for step, n := range stepNames {
		if n == name {
			return step, true
		}
	}
	return 0, false
}

// SelectedService is one catalog service added to the proposal.
type SelectedService struct {
	ServiceID      uuid.UUID `json:"service_id"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

// SubtotalCents is quantity times unit price.
func (s SelectedService) SubtotalCents() int64 {
	return int64(s.Quantity) * s.UnitPriceCents
}

// ProposalDraft is the single mutable aggregate threaded through the wizard.
// It is owned by the wizard service; steps receive read access and mutate it
// only through the service.
type ProposalDraft struct {
	ID             uuid.UUID       `json:"id"`
	Step           WizardStep      `json:"step"`
	Client         *Client         `json:"client,omitempty"`
	ActivityType   *ActivityType   `json:"activity_type,omitempty"`
	TaxRegime      *TaxRegime      `json:"tax_regime,omitempty"`
	RevenueBracket *RevenueBracket `json:"revenue_bracket,omitempty"`
	MonthlyFee     *FeeResolution  `json:"monthly_fee,omitempty"`

	Services        []SelectedService `json:"services,omitempty"`
	DiscountPercent float64           `json:"discount_percent"`
	Notes           string            `json:"notes,omitempty"`

	// ConfigRevision is the generation token for fee resolution: it is
	// bumped on every change to the (activity, regime, bracket) triple,
	// and a resolution carrying a stale revision is discarded.
	ConfigRevision uint64 `json:"config_revision"`

	// SaveWarning carries the last autosave failure; it never blocks
	// the wizard.
	SaveWarning string `json:"save_warning,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTaxConfiguration reports whether activity type and regime are chosen.
func (d *ProposalDraft) HasTaxConfiguration() bool {
	return d.ActivityType != nil && d.TaxRegime != nil
}

// Proposal statuses after finalization.
const (
	ProposalStatusDraft           = "draft"
	ProposalStatusPendingApproval = "pending_approval"
	ProposalStatusApproved        = "approved"
	ProposalStatusRejected        = "rejected"
	ProposalStatusExpired         = "expired"
)

// ApprovalThresholdPercent is the discount above which a proposal requires
// managerial sign-off, with mandatory notes.
const ApprovalThresholdPercent = 20.0
