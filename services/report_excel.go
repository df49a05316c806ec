package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateReportExcel renders a bid list report as an .xlsx file and
// returns the file contents.
func GenerateReportExcel(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Worksheet name (max 31 chars).
	sheetName := report.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Bid List"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through H).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1] // "H"

	widths := []float64{10, 40, 24, 10, 10, 14, 16, 14}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	countStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create count style: %w", err)
	}

	// ── Header Rows (1-2) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(report.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Generated: "+report.GeneratedAt)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// ── Row 4: Column Headers ───────────────────────────────────────────

	headers := []string{"Bid #", "Bid Name", "Customer/GC", "Estimator", "Due Date", "Proposal Date", "Proposal Amount", "Status"}
	for i, hname := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s4", columns[i]), hname)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// ── Data Rows (starting row 5) ──────────────────────────────────────

	rowIdx := 5
	for _, r := range report.Rows {
		rowStr := fmt.Sprintf("%d", rowIdx)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.BidNumber))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.BidName))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Customer))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Estimator))
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(r.DueDate))
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(r.ProposalDate))
		f.SetCellValue(sheetName, "G"+rowStr, sanitizeExcelCell(r.ProposalAmount))
		f.SetCellValue(sheetName, "H"+rowStr, sanitizeExcelCell(r.Status))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, dataStyle)
		rowIdx++
	}

	// ── Count Row ───────────────────────────────────────────────────────

	rowIdx++
	countRow := fmt.Sprintf("%d", rowIdx)
	f.SetCellValue(sheetName, "A"+countRow, fmt.Sprintf("%d bids listed", len(report.Rows)))
	f.SetCellStyle(sheetName, "A"+countRow, "A"+countRow, countStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Excel interprets cells starting
// with =, +, -, @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns excelize borders for thin lines on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
