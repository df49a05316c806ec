package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateReportPDF renders a bid list report as a landscape PDF table and
// returns the raw PDF bytes.
func GenerateReportPDF(report *Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	// --- Header Section ---
	addReportHeader(m, report)

	// --- Table Header ---
	addReportTableHeader(m)

	// --- Table Body ---
	for i, r := range report.Rows {
		addReportRow(m, i, r)
	}

	// --- Count Footer ---
	addReportFooter(m, report)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addReportHeader adds the title and generated date to the PDF.
func addReportHeader(m core.Maroto, report *Report) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(report.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated: %s", report.GeneratedAt), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addReportTableHeader adds the column header band for the bid table.
func addReportTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("Bid #", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Bid Name", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Customer/GC", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Estimator", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Due", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Proposal", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Amount", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Status", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addReportRow adds one bid to the table, striping every other row.
func addReportRow(m core.Maroto, index int, r ReportRow) {
	var cellStyle *props.Cell
	if index%2 == 1 {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  7,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	colNumber := col.New(1).Add(text.New(r.BidNumber, baseText))
	colName := col.New(3).Add(text.New(r.BidName, leftText))
	colCustomer := col.New(2).Add(text.New(r.Customer, leftText))
	colEstimator := col.New(1).Add(text.New(r.Estimator, baseText))
	colDue := col.New(1).Add(text.New(r.DueDate, baseText))
	colProposal := col.New(1).Add(text.New(r.ProposalDate, baseText))
	colAmount := col.New(2).Add(text.New(r.ProposalAmount, rightText))
	colStatus := col.New(1).Add(text.New(r.Status, baseText))

	if cellStyle != nil {
		colNumber = colNumber.WithStyle(cellStyle)
		colName = colName.WithStyle(cellStyle)
		colCustomer = colCustomer.WithStyle(cellStyle)
		colEstimator = colEstimator.WithStyle(cellStyle)
		colDue = colDue.WithStyle(cellStyle)
		colProposal = colProposal.WithStyle(cellStyle)
		colAmount = colAmount.WithStyle(cellStyle)
		colStatus = colStatus.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colNumber,
			colName,
			colCustomer,
			colEstimator,
			colDue,
			colProposal,
			colAmount,
			colStatus,
		),
	)
}

// addReportFooter adds the bid count line at the bottom.
func addReportFooter(m core.Maroto, report *Report) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("%d bids listed", len(report.Rows)),
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
