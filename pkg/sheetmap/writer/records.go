package writer

import "github.com/tkaric/sheetmap-go/pkg/sheetmap/models"

// Records writes a typed record collection: a header row from the surviving
// column definitions, then one sheet row per record, resolving each cell
// value through the definition's field identifier. Records either implement
// models.FieldSource or expose matching struct fields.
//
// The empty-cells policy and the required flag are checked independently per
// value, so one absent required value produces two logged errors. A repeated
// definition in the last position expands a list value into a trailing run
// of cells; an absent or non-list value there writes no repeated cells.
func Records[T any](w *Writer, records []T) ([]byte, error) {
	if len(records) == 0 {
		w.Log.Error().Msg("no data to write")
		return nil, models.ErrNoData
	}

	var defs []models.ColumnDefinition
	if w.Settings != nil {
		defs = w.Settings.WriteColumns()
	}
	if len(defs) == 0 {
		w.Log.Error().Msg("no columns configured")
		return nil, models.ErrNoColumns
	}

	f := newWorkbook()
	defer f.Close()

	names := make([]string, len(defs))
	for j, d := range defs {
		names[j] = d.Name
	}
	if err := writeRow(f, 1, names); err != nil {
		return nil, err
	}

	allowEmpty := w.Settings.AllowEmptyCells
	for i, record := range records {
		rowNum := i + 1
		for j, d := range defs {
			value := models.ResolveField(record, d.FieldID)

			if !allowEmpty && value.IsAbsent() {
				w.Log.Error().Int("row", rowNum).Str("column", d.Name).Msg("cell value is missing")
				if w.StopOnError {
					return nil, models.NewCellError(rowNum, d.Name, models.ErrRowHasBlankCell)
				}
			}
			if d.Required && value.IsAbsent() {
				w.Log.Error().Int("row", rowNum).Str("column", d.Name).Msg("required cell is empty")
				if w.StopOnError {
					return nil, models.NewCellError(rowNum, d.Name, models.ErrRequiredCellEmpty)
				}
			}

			if d.Repeated && j == len(defs)-1 {
				items, ok := value.AsList()
				if !ok {
					continue
				}
				for k, item := range items {
					if err := writeCell(f, j+1+k, rowNum+1, item); err != nil {
						return nil, err
					}
				}
				continue
			}

			if err := writeCell(f, j+1, rowNum+1, value.AsText()); err != nil {
				return nil, err
			}
		}
	}

	return flush(f)
}
