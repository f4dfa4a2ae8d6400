// Package writer serializes generic tables and typed record collections
// into single-sheet xlsx workbooks.
package writer

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
)

// sheetName is the sheet every written workbook carries.
const sheetName = "Sheet1"

// Writer produces a fully buffered workbook with exactly one sheet.
type Writer struct {
	// Settings drives the required and empty-cell checks and, for record
	// writes, the column layout. May be nil for an unchecked table write.
	Settings *models.Settings
	// StopOnError aborts the write on the first violation instead of
	// logging and continuing.
	StopOnError bool
	// Log receives one error event per violation.
	Log zerolog.Logger
}

// Table writes a generic table: a header row from the column names, then one
// sheet row per table row. Required-column checks apply per cell; the
// empty-cells policy does not apply to table writes. A table with no data
// rows is an error.
func (w *Writer) Table(t *models.Table) ([]byte, error) {
	if t == nil || len(t.Rows) == 0 {
		w.Log.Error().Msg("no data to write")
		return nil, models.ErrNoData
	}

	f := newWorkbook()
	defer f.Close()

	if err := writeRow(f, 1, t.ColumnNames); err != nil {
		return nil, err
	}
	required := w.requiredIndices(t.ColumnNames)

	for i, row := range t.Rows {
		rowNum := i + 1
		for j := range t.ColumnNames {
			var value string
			if j < len(row) {
				value = row[j]
			}
			if required[j] != "" && strings.TrimSpace(value) == "" {
				w.Log.Error().Int("row", rowNum).Str("column", required[j]).Msg("required cell is empty")
				if w.StopOnError {
					return nil, models.NewCellError(rowNum, required[j], models.ErrRequiredCellEmpty)
				}
			}
			if err := writeCell(f, j+1, rowNum+1, value); err != nil {
				return nil, err
			}
		}
	}

	return flush(f)
}

// requiredIndices maps each column index to the name of the required
// definition it matches, or the empty string.
func (w *Writer) requiredIndices(names []string) []string {
	out := make([]string, len(names))
	if w.Settings == nil {
		return out
	}
	for j, name := range names {
		if def := w.Settings.Find(name); def != nil && def.Required {
			out[j] = name
		}
	}
	return out
}

func newWorkbook() *excelize.File {
	return excelize.NewFile()
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	for j, v := range values {
		if err := writeCell(f, j+1, rowNum, v); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell coordinates (%d,%d): %w", col, row, err)
	}
	return f.SetCellValue(sheetName, cell, value)
}

func flush(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
