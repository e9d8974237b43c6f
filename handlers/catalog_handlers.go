package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/helpers"
	"github.com/contaflow/backoffice/types/business"
)

// CatalogHandler serves the reference data the wizard steps read: activity
// types, compatible tax regimes, revenue brackets and the service catalog.
type CatalogHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(common *CommonServices, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &CatalogHandler{common: common, logger: logger}
}

// ListActivityTypes godoc
// @Summary List activity types
// @Description Returns the activity types selectable in the tax-configuration step
// @Tags catalog
// @Produce json
// @Param active query bool false "Only active activity types" default(true)
// @Success 200 {array} business.ActivityType
// @Failure 500 {object} ErrorResponse
// @Router /activity-types [get]
func (h *CatalogHandler) ListActivityTypes(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"

	rows, err := h.common.db.ListActivityTypes(c.Request.Context(), activeOnly)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list activity types", err)
		return
	}

	activityTypes := make([]business.ActivityType, 0, len(rows))
	for _, row := range rows {
		activityTypes = append(activityTypes, helpers.ToActivityType(row))
	}
	sendSuccess(c, http.StatusOK, activityTypes)
}

// ListTaxRegimes godoc
// @Summary List tax regimes
// @Description Returns tax regimes, filtered to those compatible with an activity type when activity_type_id is given
// @Tags catalog
// @Produce json
// @Param activity_type_id query string false "Activity type ID to filter by compatibility"
// @Success 200 {array} business.TaxRegime
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tax-regimes [get]
func (h *CatalogHandler) ListTaxRegimes(c *gin.Context) {
	if raw := c.Query("activity_type_id"); raw != "" {
		activityTypeID, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid activity type ID", err)
			return
		}

		regimes, err := h.common.CompatibilityService.CompatibleRegimes(c.Request.Context(), activityTypeID)
		if err != nil {
			handleServiceError(c, err, "Activity type not found")
			return
		}
		sendSuccess(c, http.StatusOK, regimes)
		return
	}

	rows, err := h.common.db.ListTaxRegimes(c.Request.Context(), true)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list tax regimes", err)
		return
	}
	regimes := make([]business.TaxRegime, 0, len(rows))
	for _, row := range rows {
		regimes = append(regimes, helpers.ToTaxRegime(row))
	}
	sendSuccess(c, http.StatusOK, regimes)
}

// ListRevenueBrackets godoc
// @Summary List revenue brackets of a tax regime
// @Description Returns the regime's brackets ordered by lower bound; an empty list means the regime has no bracket-based pricing
// @Tags catalog
// @Produce json
// @Param regime_id path string true "Tax regime ID"
// @Success 200 {array} business.RevenueBracket
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tax-regimes/{regime_id}/revenue-brackets [get]
func (h *CatalogHandler) ListRevenueBrackets(c *gin.Context) {
	regimeID, err := uuid.Parse(c.Param("regime_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid regime ID", err)
		return
	}

	brackets, err := h.common.BracketService.BracketsForRegime(c.Request.Context(), regimeID)
	if err != nil {
		handleServiceError(c, err, "Tax regime not found")
		return
	}
	sendSuccess(c, http.StatusOK, brackets)
}

// ListCatalogServices godoc
// @Summary List the service catalog
// @Tags catalog
// @Produce json
// @Param active query bool false "Only active services" default(true)
// @Success 200 {array} business.CatalogService
// @Failure 500 {object} ErrorResponse
// @Router /catalog-services [get]
func (h *CatalogHandler) ListCatalogServices(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"

	rows, err := h.common.db.ListCatalogServices(c.Request.Context(), activeOnly)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list services", err)
		return
	}
	catalog := make([]business.CatalogService, 0, len(rows))
	for _, row := range rows {
		catalog = append(catalog, helpers.ToCatalogService(row))
	}
	sendSuccess(c, http.StatusOK, catalog)
}
