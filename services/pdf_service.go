package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/helpers"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/types/business"
)

// PDFService renders finalized proposals as PDF documents.
type PDFService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewPDFService creates a new PDF service
func NewPDFService(queries db.Querier) *PDFService {
	return &PDFService{
		queries: queries,
		logger:  logger.Log,
	}
}

// RenderProposal loads a finalized proposal with its items and renders the
// PDF, recording the generation timestamp on the proposal row.
func (s *PDFService) RenderProposal(ctx context.Context, proposalID uuid.UUID) ([]byte, error) {
	proposal, err := s.queries.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	items, err := s.queries.ListProposalItems(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposal items: %w", err)
	}

	doc, err := renderProposalPDF(proposal, items)
	if err != nil {
		return nil, err
	}

	if err := s.queries.MarkProposalPDFGenerated(ctx, proposalID); err != nil {
		// The document is already rendered; losing the bookkeeping
		// update is not worth failing the download.
		s.logger.Warn("Failed to record PDF generation",
			zap.String("proposal_id", proposalID.String()),
			zap.Error(err))
	}

	return doc, nil
}

func renderProposalPDF(proposal db.Proposal, items []db.ProposalItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	addProposalHeader(m, proposal)
	addItemsTable(m, items)
	addTotals(m, proposal)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addProposalHeader(m core.Maroto, proposal db.Proposal) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Proposta %s", proposal.Number), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	validity := "—"
	if proposal.ValidUntil.Valid {
		validity = proposal.ValidUntil.Time.Format("02/01/2006")
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Data: %s", proposal.CreatedAt.Time.Format("02/01/2006")), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Válida até: %s", validity), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	if proposal.RequiresApproval && proposal.Status == business.ProposalStatusPendingApproval {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New("AGUARDANDO APROVAÇÃO GERENCIAL", props.Text{
						Size:  10,
						Style: fontstyle.Bold,
						Align: align.Center,
						Color: &props.Color{Red: 180, Green: 60, Blue: 0},
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addItemsTable(m core.Maroto, items []db.ProposalItem) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerRight := headerText
	headerRight.Align = align.Right
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New("Serviço", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Qtd", headerRight)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unitário", headerRight)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Subtotal", headerRight)).WithStyle(&headerCell),
		),
	)

	// Items grouped by category, each group under its own banner row.
	byCategory := make(map[string][]db.ProposalItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	categoryBg := &props.Color{Red: 235, Green: 235, Blue: 235}
	categoryCell := props.Cell{BackgroundColor: categoryBg}

	for _, category := range categories {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New(category, props.Text{
						Size:  8,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				).WithStyle(&categoryCell),
			),
		)

		for _, item := range byCategory[category] {
			m.AddRows(
				row.New(7).Add(
					col.New(6).Add(text.New(item.ServiceName, props.Text{Size: 8, Align: align.Left})),
					col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8, Align: align.Right})),
					col.New(2).Add(text.New(helpers.FormatBRL(item.UnitPriceCents), props.Text{Size: 8, Align: align.Right})),
					col.New(2).Add(text.New(helpers.FormatBRL(item.SubtotalCents), props.Text{Size: 8, Align: align.Right})),
				),
			)
		}
	}
}

func addTotals(m core.Maroto, proposal db.Proposal) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	monthlyFee := helpers.FormatBRL(proposal.MonthlyFeeCents)
	if proposal.MonthlyFeeNegotiated {
		monthlyFee = "A Combinar"
	}

	lines := []struct {
		label string
		value string
	}{
		{"Honorário mensal", monthlyFee},
	}
	if proposal.OpeningFeeCents > 0 {
		lines = append(lines, struct {
			label string
			value string
		}{"Abertura de empresa", helpers.FormatBRL(proposal.OpeningFeeCents)})
	}
	if proposal.DiscountAmountCents > 0 {
		lines = append(lines, struct {
			label string
			value string
		}{
			fmt.Sprintf("Desconto (%s)", helpers.FormatPercent(proposal.DiscountPercent)),
			"-" + helpers.FormatBRL(proposal.DiscountAmountCents),
		})
	}
	lines = append(lines, struct {
		label string
		value string
	}{"Total", helpers.FormatBRL(proposal.TotalCents)})

	for _, line := range lines {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(line.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(line.value, labelStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Gerado em %s", time.Now().Format("02/01/2006 15:04")),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
