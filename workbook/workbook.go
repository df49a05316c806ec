// Package workbook wraps access to the bid list spreadsheet. A Handle is a
// scoped resource: opened at the start of an operation, saved and released
// exactly once at the end. When the file is locked by another user the
// handle falls back to read-only and redirects the save to a timestamped
// sidecar file next to the original.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ErrWorkbookMissing is returned by Open when the workbook file does not
// exist at the configured path.
var ErrWorkbookMissing = errors.New("workbook not found")

// Handle is an open workbook plus its target worksheet.
type Handle struct {
	path     string
	sheet    string
	file     *excelize.File
	readOnly bool
	sidecar  string
	closed   bool
}

// Open opens the workbook at path and ensures the named worksheet exists,
// creating it when absent. A failed read-write probe of the file switches
// the handle to read-only; the sidecar save path is computed at that
// moment so its timestamp reflects when the lock was observed.
func Open(path, sheet string) (*Handle, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrWorkbookMissing, path)
		}
		return nil, fmt.Errorf("stat workbook: %w", err)
	}

	readOnly := false
	if probe, err := os.OpenFile(path, os.O_RDWR, 0); err != nil {
		readOnly = true
	} else {
		probe.Close()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}

	h := &Handle{path: path, sheet: sheet, file: f, readOnly: readOnly}
	if readOnly {
		h.sidecar = sidecarPath(path, time.Now())
		log.Infof("workbook %s is locked for writing, updates will go to %s",
			filepath.Base(path), filepath.Base(h.sidecar))
	}

	if err := h.ensureSheet(); err != nil {
		f.Close()
		return nil, err
	}
	return h, nil
}

// ensureSheet creates the target worksheet when the workbook lacks it.
func (h *Handle) ensureSheet() error {
	for _, name := range h.file.GetSheetList() {
		if name == h.sheet {
			return nil
		}
	}
	log.Debugf("worksheet %q missing, creating it", h.sheet)
	if _, err := h.file.NewSheet(h.sheet); err != nil {
		return fmt.Errorf("create worksheet %q: %w", h.sheet, err)
	}
	return nil
}

// Path returns the path the workbook was opened from.
func (h *Handle) Path() string { return h.path }

// Sheet returns the target worksheet name.
func (h *Handle) Sheet() string { return h.sheet }

// ReadOnly reports whether the handle fell back to read-only at open.
func (h *Handle) ReadOnly() bool { return h.readOnly }

// SavePath returns where Close will write: the original path, or the
// sidecar when the workbook was opened read-only.
func (h *Handle) SavePath() string {
	if h.readOnly {
		return h.sidecar
	}
	return h.path
}

// CellText returns the displayed text of the cell at (row, col), trimmed.
// Empty and out-of-range cells read as "".
func (h *Handle) CellText(row, col int) string {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	v, _ := h.file.GetCellValue(h.sheet, cell)
	return strings.TrimSpace(v)
}

// SetCell stores value into the cell at (row, col). Values are always
// written as text so the spreadsheet application cannot reinterpret
// date-looking strings under a different locale.
func (h *Handle) SetCell(row, col int, value string) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	h.file.SetCellValue(h.sheet, cell, value)
}

// LastRow returns the index of the last used row on the worksheet, 0 when
// the worksheet is empty.
func (h *Handle) LastRow() int {
	rows, err := h.file.GetRows(h.sheet)
	if err != nil {
		return 0
	}
	return len(rows)
}

// Close saves the workbook and releases the underlying file: in place when
// the handle is writable, to the sidecar when it is not. Only the first
// call saves; later calls return nil.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	var saveErr error
	if h.readOnly {
		saveErr = h.file.SaveAs(h.sidecar)
	} else {
		saveErr = h.file.Save()
	}
	closeErr := h.file.Close()

	if saveErr != nil {
		return fmt.Errorf("save workbook to %s: %w", h.SavePath(), saveErr)
	}
	if closeErr != nil {
		return fmt.Errorf("release workbook: %w", closeErr)
	}
	return nil
}

// Discard releases the workbook without saving anything. Read-only
// consumers use it in place of Close. After either call the handle is
// spent; the other becomes a no-op.
func (h *Handle) Discard() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.file.Close()
}

// sidecarPath builds "<dir>/<basename> - Pending Update <stamp><ext>" for
// a workbook that cannot be overwritten while another user holds it open.
func sidecarPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)
	stamp := now.Format("20060102-150405")
	return filepath.Join(filepath.Dir(path),
		fmt.Sprintf("%s - Pending Update %s%s", base, stamp, ext))
}
