package feeschedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, zap.NewNop())
}

func TestLookupMonthlyFee_Found(t *testing.T) {
	params := LookupParams{
		ActivityTypeID: uuid.New(),
		RegimeID:       uuid.New(),
	}

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/monthly-fees/lookup", r.URL.Path)

		var got LookupParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, params.ActivityTypeID, got.ActivityTypeID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"amount_cents":     85000,
			"to_be_negotiated": false,
		})
	})

	result := client.LookupMonthlyFee(context.Background(), params)
	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, int64(85000), result.AmountCents)
	assert.False(t, result.ToBeNegotiated)
}

func TestLookupMonthlyFee_AboveConfiguredRange(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"amount_cents":     0,
			"to_be_negotiated": true,
		})
	})

	result := client.LookupMonthlyFee(context.Background(), LookupParams{
		ActivityTypeID: uuid.New(), RegimeID: uuid.New(),
	})
	assert.Equal(t, StatusOK, result.Status)
	assert.True(t, result.ToBeNegotiated)
}

func TestLookupMonthlyFee_NotConfigured(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	result := client.LookupMonthlyFee(context.Background(), LookupParams{
		ActivityTypeID: uuid.New(), RegimeID: uuid.New(),
	})
	assert.Equal(t, StatusNotConfigured, result.Status)
	assert.Equal(t, "configuration missing", result.Reason)
}

func TestLookupMonthlyFee_ServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	result := client.LookupMonthlyFee(context.Background(), LookupParams{
		ActivityTypeID: uuid.New(), RegimeID: uuid.New(),
	})
	assert.Equal(t, StatusServiceError, result.Status)
	assert.Contains(t, result.Reason, "500")
}

func TestLookupMonthlyFee_TransportFailure(t *testing.T) {
	// Point at a server that is already gone.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, zap.NewNop())
	result := client.LookupMonthlyFee(context.Background(), LookupParams{
		ActivityTypeID: uuid.New(), RegimeID: uuid.New(),
	})
	assert.Equal(t, StatusServiceError, result.Status)
	assert.Equal(t, "fee service unreachable", result.Reason)
}
