package models

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates the input file is missing or unreadable.
var ErrSourceNotFound = errors.New("source not found")

// ErrSheetNotFound indicates the requested sheet index is out of range.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrHeaderCellBlank indicates a blank cell in the header row.
var ErrHeaderCellBlank = errors.New("header cell is blank")

// ErrRowHasBlankCell indicates a blank cell in a data row while the
// empty-cells policy forbids them.
var ErrRowHasBlankCell = errors.New("row has blank cell")

// ErrRequiredCellEmpty indicates a blank or missing value in a required
// column.
var ErrRequiredCellEmpty = errors.New("required cell is empty")

// ErrNoColumns indicates no column definitions remain to write.
var ErrNoColumns = errors.New("no columns configured")

// ErrNoData indicates an empty table or record collection on write.
var ErrNoData = errors.New("no data to write")

// ErrRepeatedNotLast indicates a repeated column definition that is not the
// last definition of its settings.
var ErrRepeatedNotLast = errors.New("repeated column must be the last definition")

// ErrMultipleRepeated indicates more than one repeated column definition.
var ErrMultipleRepeated = errors.New("at most one column may be repeated")

// CellError locates a validation failure on a specific row and column.
type CellError struct {
	Row    int
	Column string
	Err    error
}

func (e *CellError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// NewCellError wraps err with its row number and column name.
func NewCellError(row int, column string, err error) *CellError {
	return &CellError{Row: row, Column: column, Err: err}
}
