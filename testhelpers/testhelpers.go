// Package testhelpers provides fixtures for testing against real workbook
// files and bid folder trees.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook creates an .xlsx file at path whose named worksheet holds
// the given rows, row 1 first. Empty strings leave their cells blank, so
// fixtures can contain header gaps.
func WriteWorkbook(t *testing.T, path, sheet string, rows [][]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		t.Fatalf("failed to name worksheet: %v", err)
	}

	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("bad cell coordinates (%d,%d): %v", r+1, c+1, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("failed to set cell %s: %v", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook %s: %v", path, err)
	}
}

// TempWorkbook writes a workbook under a fresh temp dir and returns its path.
func TempWorkbook(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Bid List.xlsx")
	WriteWorkbook(t, path, sheet, rows)
	return path
}

// ReadSheet reopens a saved workbook and returns the used rows of the
// named worksheet as displayed text.
func ReadSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook %s: %v", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("failed to read worksheet %q: %v", sheet, err)
	}
	return rows
}

// CellValue returns the displayed text of one cell of a saved workbook.
func CellValue(t *testing.T, path, sheet, cell string) string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook %s: %v", path, err)
	}
	defer f.Close()

	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("failed to read cell %s: %v", cell, err)
	}
	return v
}

// MakeBidFolders creates one subdirectory per name under root.
func MakeBidFolders(t *testing.T, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("failed to create bid folder %q: %v", name, err)
		}
	}
}
