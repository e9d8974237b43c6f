package services

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/internal/db"
)

func TestRenderApprovalEmail(t *testing.T) {
	proposal := db.Proposal{
		Number:              "PROP-2026-0007",
		DiscountPercent:     28.5,
		DiscountAmountCents: 32775,
		MonthlyFeeCents:     85000,
		TotalCents:          82225,
		Notes:               pgtype.Text{String: "Cliente estratégico", Valid: true},
	}

	body, err := renderApprovalEmail(proposal, "Acme Ltda")
	require.NoError(t, err)

	assert.Contains(t, body, "PROP-2026-0007")
	assert.Contains(t, body, "Acme Ltda")
	assert.Contains(t, body, "28,5%")
	assert.Contains(t, body, "R$ 327,75")
	assert.Contains(t, body, "R$ 822,25")
	assert.Contains(t, body, "R$ 850,00")
	assert.Contains(t, body, "Cliente estratégico")
}

func TestRenderApprovalEmailNegotiatedFee(t *testing.T) {
	proposal := db.Proposal{
		Number:               "PROP-2026-0008",
		DiscountPercent:      25,
		MonthlyFeeNegotiated: true,
	}

	body, err := renderApprovalEmail(proposal, "Beta ME")
	require.NoError(t, err)
	assert.Contains(t, body, "A Combinar")
}

func TestNewEmailServiceConfiguresRecipient(t *testing.T) {
	svc := NewEmailService("re_test_key", "propostas@contaflow.com.br", "ContaFlow", "gerencia@contaflow.com.br", zap.NewNop())
	require.NotNil(t, svc)
	assert.Equal(t, "gerencia@contaflow.com.br", svc.managerEmail)
	assert.Equal(t, "ContaFlow", svc.fromName)
}
