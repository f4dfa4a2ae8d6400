package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
)

// Table reads the reader's sheet into a generic string table. The header
// row defines the column names and the table width; data rows are copied in
// sheet order, short rows padded with empty strings.
//
// With settings, two checks run per data row: the empty-cells policy and the
// required-column check. Violations are logged; under StopOnError the first
// one aborts the read and nothing is returned. Without StopOnError the
// offending row is still copied. The repeated-column region is not honored
// here: a table has a fixed width by construction.
func (r *Reader) Table(f *excelize.File) (*models.Table, error) {
	sheetName, err := r.selectSheet(f)
	if err != nil {
		r.Log.Error().Err(err).Msg("sheet selection failed")
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		r.Log.Error().Err(err).Str("sheet", sheetName).Msg("failed to read sheet")
		return nil, err
	}
	if len(rows) == 0 {
		return &models.Table{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}
	table := &models.Table{ColumnNames: header}
	required := r.requiredIndices(header)

	for i := 1; i < len(rows); i++ {
		raw := rows[i]
		rowNum := i

		if r.Settings != nil && !r.Settings.AllowEmptyCells {
			for j := range header {
				if !isBlank(cellAt(raw, j)) {
					continue
				}
				r.Log.Error().Int("row", rowNum).Str("column", header[j]).Msg("row has blank cell")
				if r.StopOnError {
					return nil, models.NewCellError(rowNum, header[j], models.ErrRowHasBlankCell)
				}
				break
			}
		}

		for j, name := range required {
			if name == "" || !isBlank(cellAt(raw, j)) {
				continue
			}
			r.Log.Error().Int("row", rowNum).Str("column", name).Msg("required cell is empty")
			if r.StopOnError {
				return nil, models.NewCellError(rowNum, name, models.ErrRequiredCellEmpty)
			}
		}

		out := make([]string, len(header))
		for j := range header {
			out[j] = cellAt(raw, j)
		}
		table.Rows = append(table.Rows, out)
	}

	return table, nil
}

// requiredIndices maps each header index to the name of the required
// definition it matches, or the empty string.
func (r *Reader) requiredIndices(header []string) []string {
	out := make([]string, len(header))
	if r.Settings == nil {
		return out
	}
	for j, name := range header {
		if def := r.Settings.Find(name); def != nil && def.Required {
			out[j] = name
		}
	}
	return out
}
