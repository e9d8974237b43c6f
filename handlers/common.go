package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/services"
)

// CommonServices holds the dependencies shared across handlers.
type CommonServices struct {
	db     db.Querier
	logger *zap.Logger

	CompatibilityService *services.CompatibilityService
	BracketService       *services.BracketService
	FeeService           *services.FeeService
	WizardService        *services.WizardService
	PDFService           *services.PDFService
}

// CommonServicesConfig contains all dependencies needed to create CommonServices.
type CommonServicesConfig struct {
	DB                   db.Querier
	Logger               *zap.Logger
	CompatibilityService *services.CompatibilityService
	BracketService       *services.BracketService
	FeeService           *services.FeeService
	WizardService        *services.WizardService
	PDFService           *services.PDFService
}

// NewCommonServices creates a new instance of CommonServices.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		db:                   config.DB,
		logger:               config.Logger,
		CompatibilityService: config.CompatibilityService,
		BracketService:       config.BracketService,
		FeeService:           config.FeeService,
		WizardService:        config.WizardService,
		PDFService:           config.PDFService,
	}
}

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// SuccessResponse represents a standard success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}
	c.JSON(statusCode, response)
}

// handleServiceError maps service-layer errors onto HTTP statuses: validation
// failures become 422, missing drafts and rows 404, everything else 500.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	if ve, ok := services.IsValidationError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: ve.Message,
			Field: ve.Field,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrDraftNotFound):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
