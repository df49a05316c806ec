package services

import (
	"fmt"
	"os"

	"bidtools/workbook"
)

// ReportRow is one bid in the bid list report: the five folder-derived
// fields joined with the workbook's proposal columns when the bid has a
// row there.
type ReportRow struct {
	BidNumber      string
	Estimator      string
	DueDate        string
	Customer       string
	BidName        string
	ProposalDate   string
	ProposalAmount string
	Status         string
}

// Report holds everything the report renderers need.
type Report struct {
	Title       string
	GeneratedAt string
	Rows        []ReportRow
}

// ReportOptions carries the parameters of one report build.
type ReportOptions struct {
	BidRoot     string
	Workbook    string
	Worksheet   string
	Title       string
	GeneratedAt string
}

// BuildBidListReport assembles one report row per parsed bid folder,
// pulling Proposal Date, Proposal Amount, and Bid Status from the workbook
// for bids that have a row. The workbook is only read; building a report
// never rewrites headers or saves.
func BuildBidListReport(opts ReportOptions) (*Report, error) {
	if _, err := os.Stat(opts.BidRoot); err != nil {
		return nil, fmt.Errorf("bid root not found: %s", opts.BidRoot)
	}
	folders, err := ListBidFolders(opts.BidRoot)
	if err != nil {
		return nil, err
	}

	h, err := workbook.Open(opts.Workbook, opts.Worksheet)
	if err != nil {
		return nil, err
	}
	defer h.Discard()

	headers := ScanHeaders(h)
	report := &Report{Title: opts.Title, GeneratedAt: opts.GeneratedAt}

	for _, folder := range folders {
		info := ParseFolderName(folder)
		if info == nil {
			continue
		}

		r := ReportRow{
			BidNumber: info.BidNumber,
			Estimator: info.Initials,
			DueDate:   info.DueDate,
			Customer:  info.Customer,
			BidName:   info.BidName,
		}

		row := FindRowByKey(h, headers, "Bid Number", info.BidNumber)
		if row == 0 {
			row = FindRowByKey(h, headers, "Bid Folder", info.Folder)
		}
		if row != 0 {
			if col, ok := headers["Proposal Date"]; ok {
				r.ProposalDate = h.CellText(row, col)
			}
			if col, ok := headers["Proposal Amount"]; ok {
				r.ProposalAmount = h.CellText(row, col)
			}
			if col, ok := headers["Bid Status"]; ok {
				r.Status = h.CellText(row, col)
			}
		}
		report.Rows = append(report.Rows, r)
	}
	return report, nil
}
