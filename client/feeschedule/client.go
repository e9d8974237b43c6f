// Package feeschedule talks to the fee-schedule service that owns the
// automatic monthly-fee table. Lookups return a tagged result instead of an
// error: pricing must never block on this service, so every non-success is
// mapped to a status the resolver can degrade from.
package feeschedule

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	httpclient "github.com/contaflow/backoffice/client/http"
)

const defaultTimeout = 5 * time.Second

// LookupStatus tags the outcome of a monthly-fee lookup.
type LookupStatus int

const (
	// StatusOK: the service answered with a fee row.
	StatusOK LookupStatus = iota
	// StatusNotConfigured: no row exists for the combination (HTTP 404).
	StatusNotConfigured
	// StatusServiceError: the call itself failed (transport error or 5xx).
	StatusServiceError
)

// LookupParams keys a monthly-fee row.
type LookupParams struct {
	ActivityTypeID uuid.UUID  `json:"activity_type_id"`
	RegimeID       uuid.UUID  `json:"regime_id"`
	BracketID      *uuid.UUID `json:"bracket_id,omitempty"`
}

// LookupResult is the tagged outcome. AmountCents and ToBeNegotiated are
// meaningful only for StatusOK; Reason carries a human-readable explanation
// for the two failure statuses.
type LookupResult struct {
	Status         LookupStatus
	AmountCents    int64
	ToBeNegotiated bool
	Reason         string
}

type lookupResponse struct {
	AmountCents    int64 `json:"amount_cents"`
	ToBeNegotiated bool  `json:"to_be_negotiated"`
}

// Client is the fee-schedule API client.
type Client struct {
	http   *httpclient.HTTPClient
	logger *zap.Logger
}

// NewClient creates a fee-schedule client for the given base URL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(defaultTimeout),
		),
		logger: logger,
	}
}

// LookupMonthlyFee queries the fee table for the given combination. It never
// returns an error; outcomes are expressed through LookupResult.Status.
func (c *Client) LookupMonthlyFee(ctx context.Context, params LookupParams) LookupResult {
	var resp lookupResponse
	status, err := c.http.Post(ctx, "/monthly-fees/lookup", params, &resp)
	if err != nil {
		c.logger.Warn("fee-schedule lookup failed",
			zap.String("activity_type_id", params.ActivityTypeID.String()),
			zap.String("regime_id", params.RegimeID.String()),
			zap.Error(err))
		return LookupResult{
			Status: StatusServiceError,
			Reason: "fee service unreachable",
		}
	}

	switch {
	case status == stdhttp.StatusNotFound:
		return LookupResult{
			Status: StatusNotConfigured,
			Reason: "configuration missing",
		}
	case status >= 500:
		c.logger.Warn("fee-schedule service error",
			zap.Int("status", status),
			zap.String("regime_id", params.RegimeID.String()))
		return LookupResult{
			Status: StatusServiceError,
			Reason: fmt.Sprintf("fee service returned %d", status),
		}
	case status >= 400:
		// Anything else in the 4xx range means the combination cannot
		// be priced automatically.
		return LookupResult{
			Status: StatusNotConfigured,
			Reason: fmt.Sprintf("fee service rejected lookup (%d)", status),
		}
	}

	return LookupResult{
		Status:         StatusOK,
		AmountCents:    resp.AmountCents,
		ToBeNegotiated: resp.ToBeNegotiated,
	}
}
