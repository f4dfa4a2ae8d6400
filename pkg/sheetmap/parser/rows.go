package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
)

// headerColumn is one usable header cell: its text and its physical column
// index. Blank header cells are excluded, so indices may have gaps.
type headerColumn struct {
	name string
	idx  int
}

// Rows reads the reader's sheet into a Document of mapped rows. Row 0 is
// always the header; each later row becomes a Row numbered by its physical
// position, with one Cell per header column that resolves to a column
// definition. Columns with no matching definition are dropped silently, and
// a data row whose cells are all blank is skipped without consuming a row
// number of its own in the output.
//
// When Settings.RepeatedFrom is positive, columns at or past that index all
// resolve to the single repeated definition regardless of their header text.
// The repeated region also extends past the header width, so a row written
// from a record with more repeated values than header cells reads back in
// full, each trailing cell named after the repeated definition.
//
// A required cell found blank is logged and its cell skipped; under
// StopOnError it instead ends the read, returning the document built so far
// together with the error. Rows already mapped stay usable.
func (r *Reader) Rows(f *excelize.File) (*models.Document, error) {
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
		return &models.Document{}, nil
	}

	settings := r.Settings
	if settings == nil {
		settings = &models.Settings{}
	}

	header, err := r.collectHeader(rows[0])
	if err != nil {
		return nil, err
	}
	repeated := settings.RepeatedColumn()
	headerEnd := 0
	if len(header) > 0 {
		headerEnd = header[len(header)-1].idx + 1
	}

	doc := &models.Document{}
	for i := 1; i < len(rows); i++ {
		values := presentValues(rows[i])
		if len(values) == 0 {
			continue
		}

		columns := header
		if settings.RepeatedFrom > 0 && repeated != nil && len(rows[i]) > headerEnd {
			columns = make([]headerColumn, 0, len(rows[i]))
			columns = append(columns, header...)
			for j := headerEnd; j < len(rows[i]); j++ {
				if j >= settings.RepeatedFrom {
					columns = append(columns, headerColumn{name: repeated.Name, idx: j})
				}
			}
		}

		row := models.Row{Number: i}
		for _, hc := range columns {
			value := values[hc.idx]

			var def *models.ColumnDefinition
			if settings.RepeatedFrom > 0 && hc.idx >= settings.RepeatedFrom {
				def = repeated
			} else {
				def = settings.Find(hc.name)
			}
			if def == nil {
				continue
			}

			if def.Required && isBlank(value) {
				r.Log.Error().Int("row", i).Str("column", hc.name).Msg("required cell is empty")
				if r.StopOnError {
					return doc, models.NewCellError(i, hc.name, models.ErrRequiredCellEmpty)
				}
				continue
			}

			row.Cells = append(row.Cells, models.Cell{
				ColumnName: hc.name,
				FieldID:    def.FieldID,
				Value:      value,
				Required:   def.Required,
			})
		}

		doc.Rows = append(doc.Rows, row)
	}

	return doc, nil
}

// collectHeader gathers the usable header columns in sheet order. A blank
// header cell is logged once per read and its column excluded; under
// StopOnError it aborts the read.
func (r *Reader) collectHeader(raw []string) ([]headerColumn, error) {
	var header []headerColumn
	blankLogged := false
	for j, cell := range raw {
		name := strings.TrimSpace(cell)
		if name == "" {
			if !blankLogged {
				r.Log.Error().Int("column", j).Msg("header cell is blank")
				blankLogged = true
			}
			if r.StopOnError {
				return nil, models.NewCellError(0, "", models.ErrHeaderCellBlank)
			}
			continue
		}
		header = append(header, headerColumn{name: name, idx: j})
	}
	return header, nil
}

// presentValues collects the non-blank cells of a physical row keyed by
// column index. An empty map means the row is fully blank.
func presentValues(raw []string) map[int]string {
	values := make(map[int]string)
	for j, cell := range raw {
		if !isBlank(cell) {
			values[j] = cell
		}
	}
	return values
}
