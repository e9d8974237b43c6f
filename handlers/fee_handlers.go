package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeeHandler exposes monthly-fee resolution outside the wizard flow.
type FeeHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(common *CommonServices, logger *zap.Logger) *FeeHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &FeeHandler{common: common, logger: logger}
}

// ResolveMonthlyFeeRequest keys a fee resolution.
type ResolveMonthlyFeeRequest struct {
	ActivityTypeID uuid.UUID  `json:"activity_type_id" binding:"required"`
	RegimeID       uuid.UUID  `json:"regime_id" binding:"required"`
	BracketID      *uuid.UUID `json:"bracket_id,omitempty"`
}

// ResolveMonthlyFee godoc
// @Summary Resolve the automatic monthly fee for a tax configuration
// @Description Runs the fee fallback chain; always answers 200 with either a concrete amount or a to-be-negotiated sentinel
// @Tags fees
// @Accept json
// @Produce json
// @Param request body ResolveMonthlyFeeRequest true "Fee resolution key"
// @Success 200 {object} business.FeeResolution
// @Failure 400 {object} ErrorResponse
// @Router /monthly-fees/resolve [post]
func (h *FeeHandler) ResolveMonthlyFee(c *gin.Context) {
	var req ResolveMonthlyFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fee := h.common.FeeService.Resolve(c.Request.Context(), req.ActivityTypeID, req.RegimeID, req.BracketID)
	sendSuccess(c, http.StatusOK, fee)
}
