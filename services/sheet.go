package services

// Sheet is the view of an open worksheet that the reconciliation and sync
// code works against. workbook.Handle satisfies it; tests use an in-memory
// fake. Row and column indices are 1-based throughout.
type Sheet interface {
	// CellText returns the displayed text of a cell, trimmed, "" when empty
	// or out of range.
	CellText(row, col int) string
	// SetCell stores a string value into a cell.
	SetCell(row, col int, value string)
	// LastRow returns the index of the last used row, 0 for an empty sheet.
	LastRow() int
}
