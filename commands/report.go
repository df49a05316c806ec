package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"bidtools/config"
	"bidtools/services"
)

// RunReport builds the bid list report and writes the PDF and Excel
// renderings next to the workbook.
func RunReport(cfg config.Config) error {
	now := time.Now()
	report, err := services.BuildBidListReport(services.ReportOptions{
		BidRoot:     cfg.BidRoot,
		Workbook:    cfg.Workbook,
		Worksheet:   cfg.Worksheet,
		Title:       "Bid List Report",
		GeneratedAt: now.Format("2006-01-02 15:04"),
	})
	if err != nil {
		return err
	}

	pdf, err := services.GenerateReportPDF(report)
	if err != nil {
		return err
	}
	xlsx, err := services.GenerateReportExcel(report)
	if err != nil {
		return err
	}

	dir := filepath.Dir(cfg.Workbook)
	stamp := now.Format("20060102-150405")
	pdfPath := filepath.Join(dir, fmt.Sprintf("Bid List Report %s.pdf", stamp))
	xlsxPath := filepath.Join(dir, fmt.Sprintf("Bid List Report %s.xlsx", stamp))
	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return fmt.Errorf("write report %s: %w", pdfPath, err)
	}
	if err := os.WriteFile(xlsxPath, xlsx, 0644); err != nil {
		return fmt.Errorf("write report %s: %w", xlsxPath, err)
	}

	color.Green("Report written for %d bids:", len(report.Rows))
	fmt.Println(pdfPath)
	fmt.Println(xlsxPath)
	return nil
}
