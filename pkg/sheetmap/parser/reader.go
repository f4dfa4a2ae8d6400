// Package parser reads xlsx sheets into generic tables or mapped row
// documents.
package parser

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
)

// Reader reads one sheet of an open workbook. The zero value reads the first
// sheet with no validation and a silent logger.
type Reader struct {
	// Settings drives column matching and validation. May be nil for a
	// generic table read, in which case no checks apply.
	Settings *models.Settings
	// Sheet is the zero-based index of the sheet to read.
	Sheet int
	// StopOnError aborts the read on the first violation instead of
	// logging and continuing.
	StopOnError bool
	// Log receives one error event per violation.
	Log zerolog.Logger
}

// selectSheet resolves the reader's sheet index against the workbook's sheet
// list.
func (r *Reader) selectSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if r.Sheet < 0 || r.Sheet >= len(sheets) {
		return "", fmt.Errorf("%w: index %d of %d sheets", models.ErrSheetNotFound, r.Sheet, len(sheets))
	}
	return sheets[r.Sheet], nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// cellAt returns the cell at idx, or the empty string when the physical row
// is shorter.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
