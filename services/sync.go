package services

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"bidtools/workbook"
)

// SyncOptions carries the parameters of one synchronization pass.
type SyncOptions struct {
	BidRoot   string
	Workbook  string
	Worksheet string
	Policy    HeaderPolicy
}

// SyncResult summarizes what a synchronization pass did. SavedTo is the
// original workbook path, or the sidecar path when the workbook was locked
// by another user.
type SyncResult struct {
	Added    int
	Updated  int
	Skipped  int
	SavedTo  string
	ReadOnly bool
}

// SyncWorkbook brings the bid list workbook in line with the folders under
// the bid root: one row per parsed bid folder, located by bid number with
// a folder-name fallback, appended after the last used row when new.
// Folders whose names do not parse are counted and skipped. The workbook
// is saved exactly once on every path, including failures.
func SyncWorkbook(opts SyncOptions) (result *SyncResult, err error) {
	if _, statErr := os.Stat(opts.BidRoot); statErr != nil {
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
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			result, err = nil, cerr
		}
	}()

	headers := EnsureHeaders(h, opts.Policy)
	lastRow := h.LastRow()

	result = &SyncResult{SavedTo: h.SavePath(), ReadOnly: h.ReadOnly()}
	for _, folder := range folders {
		info := ParseFolderName(folder)
		if info == nil {
			log.Debugf("skipping folder without bid fields: %s", folder)
			result.Skipped++
			continue
		}

		row := FindRowByKey(h, headers, "Bid Number", info.BidNumber)
		if row == 0 {
			row = FindRowByKey(h, headers, "Bid Folder", info.Folder)
		}
		if row == 0 {
			// New bids land on consecutive rows within one pass.
			lastRow++
			row = lastRow
			result.Added++
		} else {
			result.Updated++
		}
		WriteBidRow(h, headers, row, info)
	}
	return result, nil
}
