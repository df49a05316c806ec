package services

import "strings"

// FindRowByKey scans rows 2 through the last used row and returns the
// first row whose cell in the named column equals key, compared as trimmed
// displayed text. Returns 0 when the column is unmapped or no row matches.
func FindRowByKey(sheet Sheet, headers HeaderMap, column, key string) int {
	col, ok := headers[column]
	if !ok {
		return 0
	}
	key = strings.TrimSpace(key)

	last := sheet.LastRow()
	for row := 2; row <= last; row++ {
		if sheet.CellText(row, col) == key {
			return row
		}
	}
	return 0
}

// WriteBidRow writes one bid's six folder-derived fields into the given
// row as a single step. The header map must cover the canonical names,
// which EnsureHeaders guarantees. Every value is stored as text; the due
// date in particular must not be reinterpreted as a date by the
// spreadsheet application.
func WriteBidRow(sheet Sheet, headers HeaderMap, row int, info *BidFolderInfo) {
	sheet.SetCell(row, headers["Bid Folder"], info.Folder)
	sheet.SetCell(row, headers["Bid Number"], info.BidNumber)
	sheet.SetCell(row, headers["Estimator"], info.Initials)
	sheet.SetCell(row, headers["Bid Due Date"], info.DueDate)
	sheet.SetCell(row, headers["Customer/GC"], info.Customer)
	sheet.SetCell(row, headers["Bid Name"], info.BidName)
}
