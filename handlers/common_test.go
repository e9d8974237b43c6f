package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/backup"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/mocks"
	"github.com/contaflow/backoffice/services"
)

func init() {
	// Initialize logger for tests to avoid panic
	logger.Log = zap.NewNop()
}

// handlerFixture wires the real service layer onto mocked storage and fee
// lookup, with all routes registered the way the server registers them.
type handlerFixture struct {
	querier   *mocks.MockQuerier
	feeClient *mocks.MockFeeLookupClient
	common    *CommonServices
	router    *gin.Engine
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	querier := mocks.NewMockQuerier(ctrl)
	feeClient := mocks.NewMockFeeLookupClient(ctrl)

	store, err := backup.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	compat := services.NewCompatibilityService(querier)
	brackets := services.NewBracketService(querier)
	fees := services.NewFeeService(querier, feeClient)
	guard := services.NewAutosaveGuard(querier, store)
	wizard := services.NewWizardService(
		querier, compat, brackets, fees,
		services.NewFinancialCalculator(), guard, nil,
	)

	common := NewCommonServices(CommonServicesConfig{
		DB:                   querier,
		Logger:               zap.NewNop(),
		CompatibilityService: compat,
		BracketService:       brackets,
		FeeService:           fees,
		WizardService:        wizard,
		PDFService:           services.NewPDFService(querier),
	})

	catalogHandler := NewCatalogHandler(common, zap.NewNop())
	feeHandler := NewFeeHandler(common, zap.NewNop())
	proposalHandler := NewProposalHandler(common, zap.NewNop())

	router := gin.New()
	router.GET("/activity-types", catalogHandler.ListActivityTypes)
	router.GET("/tax-regimes", catalogHandler.ListTaxRegimes)
	router.GET("/tax-regimes/:regime_id/revenue-brackets", catalogHandler.ListRevenueBrackets)
	router.GET("/catalog-services", catalogHandler.ListCatalogServices)
	router.POST("/monthly-fees/resolve", feeHandler.ResolveMonthlyFee)
	router.POST("/proposal-drafts", proposalHandler.StartDraft)
	router.GET("/proposal-drafts/:draft_id", proposalHandler.GetDraft)
	router.DELETE("/proposal-drafts/:draft_id", proposalHandler.DiscardDraft)
	router.PUT("/proposal-drafts/:draft_id/client", proposalHandler.SelectClient)
	router.PUT("/proposal-drafts/:draft_id/tax-configuration", proposalHandler.ConfigureTax)
	router.PUT("/proposal-drafts/:draft_id/services", proposalHandler.SelectServices)
	router.PUT("/proposal-drafts/:draft_id/review", proposalHandler.Review)
	router.PUT("/proposal-drafts/:draft_id/step", proposalHandler.GoToStep)
	router.GET("/proposal-drafts/:draft_id/summary", proposalHandler.GetSummary)
	router.POST("/proposal-drafts/:draft_id/save", proposalHandler.ManualSave)
	router.POST("/proposal-drafts/:draft_id/finalize", proposalHandler.Finalize)
	router.GET("/proposals/:proposal_id/pdf", proposalHandler.GetProposalPDF)

	return &handlerFixture{
		querier:   querier,
		feeClient: feeClient,
		common:    common,
		router:    router,
	}
}

// do issues a request against the fixture router; a nil body sends an empty
// request.
func (f *handlerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "response body: %s", w.Body.String())
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
