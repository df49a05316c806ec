package services

import (
	"bytes"
	"strings"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// fakeSheet is an in-memory Sheet implementation for tests that do not
// need a real workbook file. Writes are counted so tests can assert
// that an operation left the sheet untouched.
type fakeSheet struct {
	cells  map[[2]int]string
	writes int
}

// newFakeSheet seeds a fakeSheet from row-major values, row 1 first.
// Empty strings leave the cell unset, matching a blank workbook cell.
func newFakeSheet(rows ...[]string) *fakeSheet {
	s := &fakeSheet{cells: make(map[[2]int]string)}
	for r, row := range rows {
		for c, v := range row {
			if v != "" {
				s.cells[[2]int{r + 1, c + 1}] = v
			}
		}
	}
	return s
}

func (s *fakeSheet) CellText(row, col int) string {
	return strings.TrimSpace(s.cells[[2]int{row, col}])
}

func (s *fakeSheet) SetCell(row, col int, value string) {
	if row < 1 || col < 1 {
		return
	}
	s.cells[[2]int{row, col}] = value
	s.writes++
}

func (s *fakeSheet) LastRow() int {
	last := 0
	for key := range s.cells {
		if key[0] > last {
			last = key[0]
		}
	}
	return last
}

// headerRow returns the header texts from row 1 up to the highest used column.
func (s *fakeSheet) headerRow() []string {
	lastCol := 0
	for key := range s.cells {
		if key[0] == 1 && key[1] > lastCol {
			lastCol = key[1]
		}
	}
	row := make([]string, lastCol)
	for c := 1; c <= lastCol; c++ {
		row[c-1] = s.cells[[2]int{1, c}]
	}
	return row
}
