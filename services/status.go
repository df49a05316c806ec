package services

import (
	"errors"
	"fmt"

	"bidtools/workbook"
)

// ErrBidNotFound is returned by UpdateBidStatus when the bid number has no
// row in the workbook.
var ErrBidNotFound = errors.New("bid number not found in workbook")

// StatusUpdate holds the fields of one bid-status edit. An empty value
// means the corresponding cell keeps whatever it already holds; cells are
// never cleared. Award only applies when the worksheet carries an Award
// column.
type StatusUpdate struct {
	BidNumber      string
	Status         string
	ProposalDate   string
	ProposalAmount string
	Award          string
}

// ConfirmFunc is consulted before a cell that already holds a value is
// overwritten. The overwrite proceeds only when it returns true. A nil
// ConfirmFunc approves every overwrite.
type ConfirmFunc func(field, current string) bool

// StatusOptions carries the parameters of one status update.
type StatusOptions struct {
	Workbook  string
	Worksheet string
	Policy    HeaderPolicy
	Update    StatusUpdate
	Confirm   ConfirmFunc
}

// StatusResult reports where the update was saved.
type StatusResult struct {
	Row      int
	SavedTo  string
	ReadOnly bool
}

// UpdateBidStatus locates the row for the update's bid number and applies
// each non-blank field to its column, asking Confirm before overwriting a
// cell that already has a value. The workbook is saved exactly once on
// every path, including failures.
func UpdateBidStatus(opts StatusOptions) (result *StatusResult, err error) {
	h, err := workbook.Open(opts.Workbook, opts.Worksheet)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			result, err = nil, cerr
		}
	}()

	headers := EnsureHeaders(h, opts.Policy)
	row := FindRowByKey(h, headers, "Bid Number", opts.Update.BidNumber)
	if row == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBidNotFound, opts.Update.BidNumber)
	}

	fields := []struct {
		column string
		value  string
	}{
		{"Bid Status", opts.Update.Status},
		{"Proposal Date", opts.Update.ProposalDate},
		{"Proposal Amount", opts.Update.ProposalAmount},
		{"Award", opts.Update.Award},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		col, ok := headers[f.column]
		if !ok {
			continue
		}
		current := h.CellText(row, col)
		if current != "" && opts.Confirm != nil && !opts.Confirm(f.column, current) {
			continue
		}
		h.SetCell(row, col, f.value)
	}

	return &StatusResult{Row: row, SavedTo: h.SavePath(), ReadOnly: h.ReadOnly()}, nil
}
