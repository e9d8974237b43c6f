package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/helpers"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/types/business"
)

// DefaultValidityDays is the proposal validity applied when finalization
// does not specify one.
const DefaultValidityDays = 30

// ServiceSelection is one requested service line of the wizard.
type ServiceSelection struct {
	ServiceID uuid.UUID `json:"service_id"`
	Quantity  int32     `json:"quantity"`
}

// WizardService owns the proposal wizard: one authoritative draft per
// session, mutated only through this service. Steps are ordered; forward
// transitions check their preconditions, backward navigation is always
// allowed and never clears data. Resolver and persistence failures degrade
// into draft-level status and never block a transition.
type WizardService struct {
	queries  db.Querier
	compat   *CompatibilityService
	brackets *BracketService
	fees     *FeeService
	calc     *FinancialCalculator
	guard    *AutosaveGuard
	notifier ApprovalNotifier
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*wizardSession
}

type wizardSession struct {
	mu    sync.Mutex
	draft *business.ProposalDraft

	// bracketRequired caches whether the chosen regime has brackets;
	// when true, SelectServices insists on a bracket choice.
	bracketRequired bool
}

// NewWizardService creates a new wizard service. notifier may be nil when
// approval notifications are not configured.
func NewWizardService(queries db.Querier, compat *CompatibilityService, brackets *BracketService, fees *FeeService, calc *FinancialCalculator, guard *AutosaveGuard, notifier ApprovalNotifier) *WizardService {
	s := &WizardService{
		queries:  queries,
		compat:   compat,
		brackets: brackets,
		fees:     fees,
		calc:     calc,
		guard:    guard,
		notifier: notifier,
		logger:   logger.Log,
		sessions: make(map[uuid.UUID]*wizardSession),
	}
	guard.SetNotify(s.recordSaveResult)
	return s
}

// StartDraft opens a wizard session. With a resume ID it recovers the most
// recent saved state of that draft (local backup first, then the remote
// snapshot); without one it creates a fresh draft at the first step. The
// bool reports whether the returned draft was recovered.
func (s *WizardService) StartDraft(ctx context.Context, resumeID *uuid.UUID) (*business.ProposalDraft, bool, error) {
	if resumeID != nil {
		if session := s.session(*resumeID); session != nil {
			session.mu.Lock()
			defer session.mu.Unlock()
			return cloneDraft(session.draft), false, nil
		}

		draft, err := s.guard.Recover(ctx, *resumeID)
		if err != nil {
			if errors.Is(err, ErrNoBackup) {
				return nil, false, ErrDraftNotFound
			}
			return nil, false, err
		}

		session := &wizardSession{
			draft:           draft,
			bracketRequired: s.bracketRequired(ctx, draft),
		}
		s.register(session)

		s.logger.Info("Recovered proposal draft",
			zap.String("draft_id", draft.ID.String()),
			zap.String("step", draft.Step.String()))
		return cloneDraft(draft), true, nil
	}

	now := time.Now().UTC()
	draft := &business.ProposalDraft{
		ID:        uuid.New(),
		Step:      business.StepSelectClient,
		CreatedAt: now,
		UpdatedAt: now,
	}
	session := &wizardSession{draft: draft}
	s.register(session)

	if err := s.guard.DraftChanged(ctx, draft); err != nil {
		s.logger.Warn("Initial draft save failed",
			zap.String("draft_id", draft.ID.String()),
			zap.Error(err))
	}
	return cloneDraft(draft), false, nil
}

// GetDraft returns the current state of a live draft.
func (s *WizardService) GetDraft(ctx context.Context, draftID uuid.UUID) (*business.ProposalDraft, error) {
	session := s.session(draftID)
	if session == nil {
		return nil, ErrDraftNotFound
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return cloneDraft(session.draft), nil
}

// SelectClient attaches the chosen client to the draft and moves past the
// first step. The client's person-type invariant is enforced here.
func (s *WizardService) SelectClient(ctx context.Context, draftID, clientID uuid.UUID) (*business.ProposalDraft, error) {
	session := s.session(draftID)
	if session == nil {
		return nil, ErrDraftNotFound
	}

	clientRow, err := s.queries.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	entityRows, err := s.queries.ListClientLegalEntities(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client legal entities: %w", err)
	}

	client := helpers.ToClient(clientRow, entityRows)
	if err := client.Validate(); err != nil {
		return nil, NewValidationError("client_id", err.Error())
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.draft.Client = &client
	if session.draft.Step < business.StepConfigureTax {
		session.draft.Step = business.StepConfigureTax
	}
	s.touch(ctx, session.draft)
	return cloneDraft(session.draft), nil
}

// ConfigureTax sets the (activity, regime, bracket) triple. Any change to
// the triple bumps the config revision and re-runs fee resolution; a
// resolution finishing for an older revision is discarded.
func (s *WizardService) ConfigureTax(ctx context.Context, draftID, activityTypeID, regimeID uuid.UUID, bracketID *uuid.UUID) (*business.ProposalDraft, error) {
	session := s.session(draftID)
	if session == nil {
		return nil, ErrDraftNotFound
	}

	activityRow, err := s.queries.GetActivityType(ctx, activityTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity type: %w", err)
	}
	activity := helpers.ToActivityType(activityRow)

	compatible, err := s.compat.CompatibleRegimes(ctx, activityTypeID)
	if err != nil {
		return nil, err
	}
	var regime *business.TaxRegime
	for i := range compatible {
		if compatible[i].ID == regimeID {
			regime = &compatible[i]
			break
		}
	}
	if regime == nil {
		return nil, NewValidationError("regime_id", "tax regime is not compatible with the activity type")
	}

	bracketList, err := s.brackets.BracketsForRegime(ctx, regimeID)
	if err != nil {
		return nil, err
	}
	bracketRequired := len(bracketList) > 0

	var bracket *business.RevenueBracket
	if bracketRequired {
		if bracketID == nil {
			return nil, NewValidationError("bracket_id", "a revenue bracket is required for this regime")
		}
		for i := range bracketList {
			if bracketList[i].ID == *bracketID {
				bracket = &bracketList[i]
				break
			}
		}
		if bracket == nil {
			return nil, NewValidationError("bracket_id", "revenue bracket does not belong to the regime")
		}
	}

	session.mu.Lock()
	draft := session.draft
	if draft.Client == nil {
		session.mu.Unlock()
		return nil, NewValidationError("client_id", "a client must be selected first")
	}

	if configChanged(draft, activityTypeID, regimeID, bracket) {
		draft.ConfigRevision++
		draft.MonthlyFee = nil
	}
	draft.ActivityType = &activity
	draft.TaxRegime = regime
	draft.RevenueBracket = bracket
	session.bracketRequired = bracketRequired
	if draft.Step < business.StepSelectServices {
		draft.Step = business.StepSelectServices
	}
	revision := draft.ConfigRevision
	pending := draft.MonthlyFee == nil
	s.touch(ctx, draft)
	session.mu.Unlock()

	if pending {
		// The lookup runs outside the session lock; the revision check
		// below discards it if the configuration moved on meanwhile.
		var lookupBracketID *uuid.UUID
		if bracket != nil {
			id := bracket.ID
			lookupBracketID = &id
		}
		fee := s.fees.Resolve(ctx, activityTypeID, regimeID, lookupBracketID)

		session.mu.Lock()
		if session.draft.ConfigRevision == revision {
			session.draft.MonthlyFee = &fee
			s.touch(ctx, session.draft)
		} else {
			s.logger.Debug("Discarded stale fee resolution",
				zap.String("draft_id", draftID.String()),
				zap.Uint64("revision", revision))
		}
		session.mu.Unlock()
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return cloneDraft(session.draft), nil
}

// SelectServices replaces the draft's service selection. Prices are taken
// from the catalog, never from the caller. An empty selection is valid.
func (s *WizardService) SelectServices(ctx context.Context, draftID uuid.UUID, selections []ServiceSelection) (*business.ProposalDraft, error) {
	session := s.session(draftID)
	if session == nil {
		return nil, ErrDraftNotFound
	}

	selected := make([]business.SelectedService, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity < 1 {
			return nil, NewValidationError("quantity", "service quantity must be at least 1")
		}
		row, err := s.queries.GetCatalogService(ctx, sel.ServiceID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, NewValidationError("service_id", "unknown service")
			}
			return nil, fmt.Errorf("failed to get catalog service: %w", err)
		}
		if !row.Active {
			return nil, NewValidationError("service_id", "service is no longer offered")
		}
		selected = append(selected, business.SelectedService{
			ServiceID:      row.ID,
			Quantity:       sel.Quantity,
			UnitPriceCents: row.UnitPriceCents,
		})
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	draft := session.draft

	if !draft.HasTaxConfiguration() {
		return nil, NewValidationError("step", "tax configuration must be completed first")
	}
	if session.bracketRequired && draft.RevenueBracket == nil {
		return nil, NewValidationError("bracket_id", "a revenue bracket must be chosen first")
	}

	draft.Services = selected
	if draft.Step < business.StepReviewAndDiscount {
		draft.Step = business.StepReviewAndDiscount
	}
	s.touch(ctx, draft)
	return cloneDraft(draft), nil
}

// Review records the discount and notes. The percent must already be within
// [0, 100]; the handler clamps user input before calling.
func (s *WizardService) Review(ctx context.Context, draftID uuid.UUID, discountPercent float64, notes string) (*business.ProposalDraft, error) {
	session := s.session(draftID)
	if session == nil {
		return nil, ErrDraftNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	draft := session.draft

	if !draft.HasTaxConfiguration() || draft.MonthlyFee == nil {
		return nil, NewValidationError("step", "tax configuration is incomplete")
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, NewValidationError("discount_percent", "discount must be between 0 and 100")
	}

	draft.DiscountPercent = discountPercent
	draft.Notes = notes
	if draft.Step < business.StepFinalize {
		draft.Step = business.StepFinalize
	}
	s.touch(ctx, draft)
	return cloneDraft(draft), nil
}

// GoToStep navigates backward. Forward jumps are rejected; forward progress
// only happens through the step setters and their preconditions. Backward
// navigation never clears data.
func (s *WizardService) GoToStep(ctx context.Context, draftID uuid.UUID, step business.WizardStep) (*business.ProposalDraft, error) {
	session := s.session(draftID)
	if session == nil {
		return nil, ErrDraftNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if step > session.draft.Step {
		return nil, NewValidationError("step", "cannot skip ahead of the current step")
	}
	session.draft.Step = step
	s.touch(ctx, session.draft)
	return cloneDraft(session.draft), nil
}

// Summary prices the draft in its current state.
func (s *WizardService) Summary(ctx context.Context, draftID uuid.UUID) (*business.FinancialSummary, error) {
	session := s.session(draftID)
	if session == nil {
		return nil, ErrDraftNotFound
	}

	session.mu.Lock()
	draft := cloneDraft(session.draft)
	session.mu.Unlock()

	return s.summarize(ctx, draft)
}

// ManualSave flushes the remote snapshot immediately. Failure is reported
// as a warning on the draft, never as a blocking error.
func (s *WizardService) ManualSave(ctx context.Context, draftID uuid.UUID) (*business.ProposalDraft, error) {
	session := s.session(draftID)
	if session == nil {
		return nil, ErrDraftNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := s.guard.Flush(ctx, session.draft); err != nil {
		session.draft.SaveWarning = "remote save failed; changes are kept locally and will be retried"
	} else {
		session.draft.SaveWarning = ""
	}
	return cloneDraft(session.draft), nil
}

// Finalize closes the wizard: the approval gate is checked, the proposal is
// numbered and persisted with its items, saved draft state is discarded, and
// the manager is notified when sign-off is needed.
func (s *WizardService) Finalize(ctx context.Context, draftID uuid.UUID, validUntil *time.Time) (db.Proposal, error) {
	session := s.session(draftID)
	if session == nil {
		return db.Proposal{}, ErrDraftNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	draft := session.draft

	if draft.Step < business.StepFinalize {
		return db.Proposal{}, NewValidationError("step", "review must be completed before finalizing")
	}
	if draft.DiscountPercent > business.ApprovalThresholdPercent && strings.TrimSpace(draft.Notes) == "" {
		return db.Proposal{}, NewValidationError("notes", "notes are required for discounts above the approval threshold")
	}

	summary, err := s.summarize(ctx, draft)
	if err != nil {
		return db.Proposal{}, err
	}

	seq, err := s.queries.GetNextProposalNumber(ctx)
	if err != nil {
		return db.Proposal{}, fmt.Errorf("failed to get proposal number: %w", err)
	}
	number := fmt.Sprintf("PROP-%d-%04d", time.Now().Year(), seq)

	status := business.ProposalStatusApproved
	if summary.RequiresApproval {
		status = business.ProposalStatusPendingApproval
	}

	validity := time.Now().UTC().AddDate(0, 0, DefaultValidityDays)
	if validUntil != nil {
		validity = validUntil.UTC()
	}

	var bracketID *uuid.UUID
	if draft.RevenueBracket != nil {
		id := draft.RevenueBracket.ID
		bracketID = &id
	}

	proposal, err := s.queries.CreateProposal(ctx, db.CreateProposalParams{
		ID:                   uuid.New(),
		Number:               number,
		ClientID:             draft.Client.ID,
		ActivityTypeID:       draft.ActivityType.ID,
		RegimeID:             draft.TaxRegime.ID,
		BracketID:            bracketID,
		Status:               status,
		DiscountPercent:      draft.DiscountPercent,
		DiscountAmountCents:  summary.DiscountAmountCents,
		MonthlyFeeCents:      summary.MonthlyFeeCents,
		MonthlyFeeNegotiated: summary.MonthlyFeeNegotiated,
		OpeningFeeCents:      summary.CompanyOpeningFeeCents,
		TotalCents:           summary.FinalTotalCents,
		RequiresApproval:     summary.RequiresApproval,
		Notes:                draft.Notes,
		ValidUntil:           pgtype.Timestamptz{Time: validity, Valid: true},
	})
	if err != nil {
		return db.Proposal{}, fmt.Errorf("failed to create proposal: %w", err)
	}

	for _, selected := range draft.Services {
		entry, err := s.queries.GetCatalogService(ctx, selected.ServiceID)
		if err != nil {
			return db.Proposal{}, fmt.Errorf("failed to get catalog service: %w", err)
		}
		_, err = s.queries.CreateProposalItem(ctx, db.CreateProposalItemParams{
			ID:             uuid.New(),
			ProposalID:     proposal.ID,
			ServiceID:      selected.ServiceID,
			ServiceName:    entry.Name,
			Category:       entry.Category,
			Quantity:       selected.Quantity,
			UnitPriceCents: selected.UnitPriceCents,
			SubtotalCents:  selected.SubtotalCents(),
		})
		if err != nil {
			return db.Proposal{}, fmt.Errorf("failed to create proposal item: %w", err)
		}
	}

	s.guard.Discard(ctx, draftID)
	s.unregister(draftID)

	s.logger.Info("Proposal finalized",
		zap.String("proposal_id", proposal.ID.String()),
		zap.String("number", number),
		zap.String("status", status),
		zap.Bool("requires_approval", summary.RequiresApproval))

	if summary.RequiresApproval && s.notifier != nil {
		clientName := draft.Client.Name
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.notifier.NotifyApprovalNeeded(notifyCtx, proposal, clientName); err != nil {
				s.logger.Warn("Approval notification failed",
					zap.String("proposal_number", number),
					zap.Error(err))
			}
		}()
	}

	return proposal, nil
}

// CloseDraft drops a live session without finalizing, cancelling any pending
// autosave. Saved state stays recoverable.
func (s *WizardService) CloseDraft(draftID uuid.UUID) {
	s.guard.Cancel(draftID)
	s.unregister(draftID)
}

// DiscardDraft abandons a draft entirely: the session is dropped and local
// and remote saved state is removed, so the draft cannot be resumed.
func (s *WizardService) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	session := s.session(draftID)
	if session == nil {
		return ErrDraftNotFound
	}
	s.guard.Discard(ctx, draftID)
	s.unregister(draftID)
	return nil
}

func (s *WizardService) summarize(ctx context.Context, draft *business.ProposalDraft) (*business.FinancialSummary, error) {
	catalog := make(map[uuid.UUID]business.CatalogService, len(draft.Services))
	for _, selected := range draft.Services {
		row, err := s.queries.GetCatalogService(ctx, selected.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to get catalog service: %w", err)
		}
		catalog[row.ID] = helpers.ToCatalogService(row)
	}

	var openingFeeCents int64
	if draft.Client != nil && draft.Client.OpeningNewEntity && draft.TaxRegime != nil {
		fee, err := s.queries.GetOpeningFee(ctx, draft.TaxRegime.ID)
		switch {
		case err == nil:
			openingFeeCents = fee.AmountCents
		case errors.Is(err, pgx.ErrNoRows):
			// No opening fee configured for the regime.
		default:
			return nil, fmt.Errorf("failed to get opening fee: %w", err)
		}
	}

	summary := s.calc.Summarize(draft, catalog, openingFeeCents)
	return &summary, nil
}

// touch bumps the draft timestamp and hands it to the autosave guard.
// Callers hold the session lock.
func (s *WizardService) touch(ctx context.Context, draft *business.ProposalDraft) {
	draft.UpdatedAt = time.Now().UTC()
	if err := s.guard.DraftChanged(ctx, draft); err != nil {
		s.logger.Warn("Autosave scheduling failed",
			zap.String("draft_id", draft.ID.String()),
			zap.Error(err))
	}
}

func (s *WizardService) recordSaveResult(draftID uuid.UUID, saveErr error) {
	session := s.session(draftID)
	if session == nil {
		return
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if saveErr != nil {
		session.draft.SaveWarning = "remote save failed; changes are kept locally and will be retried"
	} else {
		session.draft.SaveWarning = ""
	}
}

func (s *WizardService) bracketRequired(ctx context.Context, draft *business.ProposalDraft) bool {
	if draft.TaxRegime == nil {
		return draft.RevenueBracket != nil
	}
	brackets, err := s.brackets.BracketsForRegime(ctx, draft.TaxRegime.ID)
	if err != nil {
		return draft.RevenueBracket != nil
	}
	return len(brackets) > 0
}

func (s *WizardService) session(draftID uuid.UUID) *wizardSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[draftID]
}

func (s *WizardService) register(session *wizardSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.draft.ID] = session
}

func (s *WizardService) unregister(draftID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, draftID)
}

func configChanged(draft *business.ProposalDraft, activityTypeID, regimeID uuid.UUID, bracket *business.RevenueBracket) bool {
	if draft.ActivityType == nil || draft.ActivityType.ID != activityTypeID {
		return true
	}
	if draft.TaxRegime == nil || draft.TaxRegime.ID != regimeID {
		return true
	}
	if (draft.RevenueBracket == nil) != (bracket == nil) {
		return true
	}
	if bracket != nil && draft.RevenueBracket.ID != bracket.ID {
		return true
	}
	return false
}

func cloneDraft(d *business.ProposalDraft) *business.ProposalDraft {
	out := *d
	if d.Client != nil {
		client := *d.Client
		client.LegalEntities = append([]business.LegalEntity(nil), d.Client.LegalEntities...)
		out.Client = &client
	}
	if d.ActivityType != nil {
		activity := *d.ActivityType
		out.ActivityType = &activity
	}
	if d.TaxRegime != nil {
		regime := *d.TaxRegime
		out.TaxRegime = &regime
	}
	if d.RevenueBracket != nil {
		bracket := *d.RevenueBracket
		out.RevenueBracket = &bracket
	}
	if d.MonthlyFee != nil {
		fee := *d.MonthlyFee
		out.MonthlyFee = &fee
	}
	out.Services = append([]business.SelectedService(nil), d.Services...)
	return &out
}
