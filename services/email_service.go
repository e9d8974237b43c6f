package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/helpers"
	"github.com/contaflow/backoffice/internal/db"
)

// ApprovalNotifier is notified when a finalized proposal needs managerial
// sign-off. Satisfied by *EmailService.
type ApprovalNotifier interface {
	NotifyApprovalNeeded(ctx context.Context, proposal db.Proposal, clientName string) error
}

// EmailService sends back-office notification emails through Resend.
type EmailService struct {
	client       *resend.Client
	logger       *zap.Logger
	fromEmail    string
	fromName     string
	managerEmail string
}

// NewEmailService creates a new email service
func NewEmailService(apiKey, fromEmail, fromName, managerEmail string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(apiKey),
		logger:       logger,
		fromEmail:    fromEmail,
		fromName:     fromName,
		managerEmail: managerEmail,
	}
}

const approvalEmailTemplate = `
<h2>Proposal pending approval</h2>
<p>Proposal <strong>{{.Number}}</strong> for <strong>{{.ClientName}}</strong>
was finalized with a {{.DiscountPercent}} discount and needs your sign-off.</p>
<table>
  <tr><td>Total</td><td>{{.Total}}</td></tr>
  <tr><td>Discount</td><td>{{.Discount}} ({{.DiscountPercent}})</td></tr>
  <tr><td>Monthly fee</td><td>{{.MonthlyFee}}</td></tr>
</table>
<p>Notes: {{.Notes}}</p>
`

type approvalEmailData struct {
	Number          string
	ClientName      string
	DiscountPercent string
	Discount        string
	Total           string
	MonthlyFee      string
	Notes           string
}

// renderApprovalEmail builds the approval notification body.
func renderApprovalEmail(proposal db.Proposal, clientName string) (string, error) {
	monthlyFee := helpers.FormatBRL(proposal.MonthlyFeeCents)
	if proposal.MonthlyFeeNegotiated {
		monthlyFee = "A Combinar"
	}

	data := approvalEmailData{
		Number:          proposal.Number,
		ClientName:      clientName,
		DiscountPercent: helpers.FormatPercent(proposal.DiscountPercent),
		Discount:        helpers.FormatBRL(proposal.DiscountAmountCents),
		Total:           helpers.FormatBRL(proposal.TotalCents),
		MonthlyFee:      monthlyFee,
		Notes:           proposal.Notes.String,
	}

	tmpl, err := template.New("approval").Parse(approvalEmailTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse approval template: %w", err)
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render approval email: %w", err)
	}
	return body.String(), nil
}

// NotifyApprovalNeeded emails the configured manager about a proposal whose
// discount crossed the approval threshold.
func (s *EmailService) NotifyApprovalNeeded(ctx context.Context, proposal db.Proposal, clientName string) error {
	body, err := renderApprovalEmail(proposal, clientName)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{s.managerEmail},
		Subject: fmt.Sprintf("Approval needed: proposal %s", proposal.Number),
		Html:    body,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send approval email: %w", err)
	}

	s.logger.Info("Approval notification sent",
		zap.String("proposal_number", proposal.Number),
		zap.String("email_id", sent.Id))
	return nil
}
