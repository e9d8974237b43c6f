package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/services"
	"github.com/contaflow/backoffice/types/business"
)

// ProposalHandler drives the proposal wizard over HTTP. Each endpoint maps to
// one wizard transition; step preconditions live in the service layer.
type ProposalHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewProposalHandler creates a new proposal handler
func NewProposalHandler(common *CommonServices, logger *zap.Logger) *ProposalHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &ProposalHandler{common: common, logger: logger}
}

// StartDraftRequest optionally names a draft to resume.
type StartDraftRequest struct {
	ResumeID *uuid.UUID `json:"resume_id,omitempty"`
}

// StartDraftResponse wraps the draft with a recovery marker so the client can
// surface a "restored from backup" notice.
type StartDraftResponse struct {
	Draft     *business.ProposalDraft `json:"draft"`
	Recovered bool                    `json:"recovered"`
}

// StartDraft godoc
// @Summary Start a new proposal draft or resume a saved one
// @Description Without a resume_id a fresh draft is opened at the client step. With one, the most recent local backup (or remote snapshot) is restored.
// @Tags proposals
// @Accept json
// @Produce json
// @Param request body StartDraftRequest false "Optional draft to resume"
// @Success 201 {object} StartDraftResponse
// @Failure 404 {object} ErrorResponse
// @Router /proposal-drafts [post]
func (h *ProposalHandler) StartDraft(c *gin.Context) {
	var req StartDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	draft, recovered, err := h.common.WizardService.StartDraft(c.Request.Context(), req.ResumeID)
	if err != nil {
		handleServiceError(c, err, "Failed to start proposal draft")
		return
	}
	sendSuccess(c, http.StatusCreated, StartDraftResponse{Draft: draft, Recovered: recovered})
}

// GetDraft godoc
// @Summary Get a proposal draft
// @Tags proposals
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} business.ProposalDraft
// @Failure 404 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id} [get]
func (h *ProposalHandler) GetDraft(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	draft, err := h.common.WizardService.GetDraft(c.Request.Context(), draftID)
	if err != nil {
		handleServiceError(c, err, "Failed to get proposal draft")
		return
	}
	sendSuccess(c, http.StatusOK, draft)
}

// SelectClientRequest names the client the proposal is for.
type SelectClientRequest struct {
	ClientID uuid.UUID `json:"client_id" binding:"required"`
}

// SelectClient godoc
// @Summary Attach a client to the draft
// @Tags proposals
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body SelectClientRequest true "Client selection"
// @Success 200 {object} business.ProposalDraft
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id}/client [put]
func (h *ProposalHandler) SelectClient(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	var req SelectClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := h.common.WizardService.SelectClient(c.Request.Context(), draftID, req.ClientID)
	if err != nil {
		handleServiceError(c, err, "Failed to select client")
		return
	}
	sendSuccess(c, http.StatusOK, draft)
}

// ConfigureTaxRequest carries the tax configuration triple. The bracket is
// only required when the chosen regime has revenue tiers.
type ConfigureTaxRequest struct {
	ActivityTypeID uuid.UUID  `json:"activity_type_id" binding:"required"`
	RegimeID       uuid.UUID  `json:"regime_id" binding:"required"`
	BracketID      *uuid.UUID `json:"bracket_id,omitempty"`
}

// ConfigureTax godoc
// @Summary Set the draft's tax configuration
// @Description Validates regime compatibility and bracket membership, then resolves the monthly fee in the background.
// @Tags proposals
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body ConfigureTaxRequest true "Tax configuration"
// @Success 200 {object} business.ProposalDraft
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id}/tax-configuration [put]
func (h *ProposalHandler) ConfigureTax(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	var req ConfigureTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := h.common.WizardService.ConfigureTax(c.Request.Context(), draftID, req.ActivityTypeID, req.RegimeID, req.BracketID)
	if err != nil {
		handleServiceError(c, err, "Failed to configure taxes")
		return
	}
	sendSuccess(c, http.StatusOK, draft)
}

// SelectServicesRequest replaces the draft's service selection.
type SelectServicesRequest struct {
	Services []services.ServiceSelection `json:"services"`
}

// SelectServices godoc
// @Summary Replace the draft's selected services
// @Tags proposals
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body SelectServicesRequest true "Service selection"
// @Success 200 {object} business.ProposalDraft
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id}/services [put]
func (h *ProposalHandler) SelectServices(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	var req SelectServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := h.common.WizardService.SelectServices(c.Request.Context(), draftID, req.Services)
	if err != nil {
		handleServiceError(c, err, "Failed to select services")
		return
	}
	sendSuccess(c, http.StatusOK, draft)
}

// ReviewRequest carries the discount and internal notes.
type ReviewRequest struct {
	DiscountPercent float64 `json:"discount_percent"`
	Notes           string  `json:"notes"`
}

// Review godoc
// @Summary Apply a discount and notes to the draft
// @Description The discount slider is clamped to [0, 100] before it reaches the pricing engine.
// @Tags proposals
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body ReviewRequest true "Discount and notes"
// @Success 200 {object} business.ProposalDraft
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id}/review [put]
func (h *ProposalHandler) Review(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// UI sliders can overshoot; clamp rather than reject.
	if req.DiscountPercent < 0 {
		req.DiscountPercent = 0
	} else if req.DiscountPercent > 100 {
		req.DiscountPercent = 100
	}

	draft, err := h.common.WizardService.Review(c.Request.Context(), draftID, req.DiscountPercent, req.Notes)
	if err != nil {
		handleServiceError(c, err, "Failed to review draft")
		return
	}
	sendSuccess(c, http.StatusOK, draft)
}

// GoToStepRequest names the step to navigate back to.
type GoToStepRequest struct {
	Step string `json:"step" binding:"required"`
}

// GoToStep godoc
// @Summary Navigate the wizard backward
// @Description Only backward navigation is allowed; forward progress goes through the step endpoints.
// @Tags proposals
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body GoToStepRequest true "Target step"
// @Success 200 {object} business.ProposalDraft
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id}/step [put]
func (h *ProposalHandler) GoToStep(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	var req GoToStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	step, ok := business.ParseWizardStep(req.Step)
	if !ok {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Unknown wizard step: %s", req.Step), nil)
		return
	}

	draft, err := h.common.WizardService.GoToStep(c.Request.Context(), draftID, step)
	if err != nil {
		handleServiceError(c, err, "Failed to navigate wizard")
		return
	}
	sendSuccess(c, http.StatusOK, draft)
}

// GetSummary godoc
// @Summary Price the draft in its current state
// @Tags proposals
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} business.FinancialSummary
// @Failure 404 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id}/summary [get]
func (h *ProposalHandler) GetSummary(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	summary, err := h.common.WizardService.Summary(c.Request.Context(), draftID)
	if err != nil {
		handleServiceError(c, err, "Failed to summarize draft")
		return
	}
	sendSuccess(c, http.StatusOK, summary)
}

// ManualSave godoc
// @Summary Force an immediate remote save of the draft
// @Description A remote failure is reported through the draft's save_warning field, never as an error status.
// @Tags proposals
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} business.ProposalDraft
// @Failure 404 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id}/save [post]
func (h *ProposalHandler) ManualSave(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	draft, err := h.common.WizardService.ManualSave(c.Request.Context(), draftID)
	if err != nil {
		handleServiceError(c, err, "Failed to save draft")
		return
	}
	sendSuccess(c, http.StatusOK, draft)
}

// FinalizeRequest optionally overrides the proposal's validity date.
type FinalizeRequest struct {
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// Finalize godoc
// @Summary Finalize the draft into a numbered proposal
// @Description Deep discounts require non-empty justification notes and leave the proposal pending managerial approval.
// @Tags proposals
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body FinalizeRequest false "Finalization options"
// @Success 201 {object} db.Proposal
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id}/finalize [post]
func (h *ProposalHandler) Finalize(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	var req FinalizeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	proposal, err := h.common.WizardService.Finalize(c.Request.Context(), draftID, req.ValidUntil)
	if err != nil {
		handleServiceError(c, err, "Failed to finalize proposal")
		return
	}
	sendSuccess(c, http.StatusCreated, proposal)
}

// DiscardDraft godoc
// @Summary Discard a draft and its saved state
// @Tags proposals
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /proposal-drafts/{draft_id} [delete]
func (h *ProposalHandler) DiscardDraft(c *gin.Context) {
	draftID, ok := parseUUIDParam(c, "draft_id")
	if !ok {
		return
	}

	if err := h.common.WizardService.DiscardDraft(c.Request.Context(), draftID); err != nil {
		handleServiceError(c, err, "Failed to discard draft")
		return
	}
	sendSuccess(c, http.StatusOK, SuccessResponse{Message: "Draft discarded"})
}

// GetProposalPDF godoc
// @Summary Render a finalized proposal as PDF
// @Tags proposals
// @Produce application/pdf
// @Param proposal_id path string true "Proposal ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /proposals/{proposal_id}/pdf [get]
func (h *ProposalHandler) GetProposalPDF(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "proposal_id")
	if !ok {
		return
	}

	document, err := h.common.PDFService.RenderProposal(c.Request.Context(), proposalID)
	if err != nil {
		handleServiceError(c, err, "Failed to render proposal PDF")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=proposal-%s.pdf", proposalID))
	c.Data(http.StatusOK, "application/pdf", document)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name), err)
		return uuid.Nil, false
	}
	return id, true
}
