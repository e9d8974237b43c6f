package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/backup"
	"github.com/contaflow/backoffice/client/feeschedule"
	"github.com/contaflow/backoffice/constants"
	"github.com/contaflow/backoffice/handlers"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/middleware"
	"github.com/contaflow/backoffice/services"
)

// Handler Definitions
var (
	catalogHandler  *handlers.CatalogHandler
	feeHandler      *handlers.FeeHandler
	proposalHandler *handlers.ProposalHandler
	healthHandler   *handlers.HealthHandler

	// Database
	dbQueries db.Querier

	// Services
	commonServices *handlers.CommonServices
	backupStore    *backup.Store
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !constants.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, constants.StageProd, constants.StageDev, constants.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Database Connection Setup ---
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	dbQueries = db.New(dbpool)

	// --- Fee-Schedule Client Configuration ---
	feeScheduleURL := os.Getenv("FEE_SCHEDULE_URL")
	if feeScheduleURL == "" {
		logger.Fatal("FEE_SCHEDULE_URL environment variable is required")
	}
	feeClient := feeschedule.NewClient(feeScheduleURL, logger.Log)

	// --- Local Backup Store ---
	backupPath := os.Getenv("BACKUP_DB_PATH")
	if backupPath == "" {
		backupPath = "backoffice-drafts.db"
	}
	backupStore, err = backup.Open(backupPath)
	if err != nil {
		logger.Fatal("Unable to open draft backup store", zap.Error(err), zap.String("path", backupPath))
	}

	// --- Approval Notifications (optional) ---
	var notifier services.ApprovalNotifier
	resendAPIKey := os.Getenv("RESEND_API_KEY")
	managerEmail := os.Getenv("MANAGER_EMAIL")
	if resendAPIKey == "" || managerEmail == "" {
		logger.Log.Warn("RESEND_API_KEY or MANAGER_EMAIL not set. Approval emails will be disabled.")
	} else {
		fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
		if fromEmail == "" {
			fromEmail = "propostas@contaflow.com.br"
		}
		fromName := os.Getenv("EMAIL_FROM_NAME")
		if fromName == "" {
			fromName = "ContaFlow"
		}
		notifier = services.NewEmailService(resendAPIKey, fromEmail, fromName, managerEmail, logger.Log)
		logger.Log.Info("Approval notifications enabled", zap.String("manager_email", managerEmail))
	}

	// --- Service Wiring ---
	compatibilityService := services.NewCompatibilityService(dbQueries)
	bracketService := services.NewBracketService(dbQueries)
	feeService := services.NewFeeService(dbQueries, feeClient)
	calculator := services.NewFinancialCalculator()
	autosaveGuard := services.NewAutosaveGuard(dbQueries, backupStore)
	wizardService := services.NewWizardService(
		dbQueries,
		compatibilityService,
		bracketService,
		feeService,
		calculator,
		autosaveGuard,
		notifier,
	)
	pdfService := services.NewPDFService(dbQueries)

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:                   dbQueries,
		Logger:               logger.Log,
		CompatibilityService: compatibilityService,
		BracketService:       bracketService,
		FeeService:           feeService,
		WizardService:        wizardService,
		PDFService:           pdfService,
	})

	// API Handler initialization
	catalogHandler = handlers.NewCatalogHandler(commonServices, logger.Log)
	feeHandler = handlers.NewFeeHandler(commonServices, logger.Log)
	proposalHandler = handlers.NewProposalHandler(commonServices, logger.Log)
	healthHandler = handlers.NewHealthHandler()
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Add basic request logging
	router.Use(middleware.RequestLoggingMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Catalog reference data
		v1.GET("/activity-types", catalogHandler.ListActivityTypes)
		v1.GET("/tax-regimes", catalogHandler.ListTaxRegimes)
		v1.GET("/tax-regimes/:regime_id/revenue-brackets", catalogHandler.ListRevenueBrackets)
		v1.GET("/catalog-services", catalogHandler.ListCatalogServices)

		// Fee resolution
		v1.POST("/monthly-fees/resolve", feeHandler.ResolveMonthlyFee)

		// Proposal wizard
		drafts := v1.Group("/proposal-drafts")
		{
			drafts.POST("", proposalHandler.StartDraft)
			drafts.GET("/:draft_id", proposalHandler.GetDraft)
			drafts.DELETE("/:draft_id", proposalHandler.DiscardDraft)
			drafts.PUT("/:draft_id/client", proposalHandler.SelectClient)
			drafts.PUT("/:draft_id/tax-configuration", proposalHandler.ConfigureTax)
			drafts.PUT("/:draft_id/services", proposalHandler.SelectServices)
			drafts.PUT("/:draft_id/review", proposalHandler.Review)
			drafts.PUT("/:draft_id/step", proposalHandler.GoToStep)
			drafts.GET("/:draft_id/summary", proposalHandler.GetSummary)
			drafts.POST("/:draft_id/save", proposalHandler.ManualSave)
			drafts.POST("/:draft_id/finalize", proposalHandler.Finalize)
		}

		// Finalized proposals
		v1.GET("/proposals/:proposal_id/pdf", proposalHandler.GetProposalPDF)
	}

	router.GET("/shutdown", func(c *gin.Context) {
		go func() {
			time.Sleep(1 * time.Second)
			Shutdown()
			logger.Info("Server is shutting down...")
			os.Exit(0)
		}()
		c.JSON(http.StatusOK, gin.H{"message": "Server is shutting down..."})
	})
}

// Shutdown releases process-wide resources held by the server.
func Shutdown() {
	if backupStore != nil {
		if err := backupStore.Close(); err != nil {
			logger.Warn("Failed to close draft backup store", zap.Error(err))
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
