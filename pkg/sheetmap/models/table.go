package models

// Table is a generic fixed-width string matrix mirroring one sheet: a header
// of column names and one string slice per data row. The header's cell count
// defines the width; short physical rows are padded with empty strings.
type Table struct {
	ColumnNames []string   `json:"column_names"`
	Rows        [][]string `json:"rows"`
}

// Width returns the number of columns, as defined by the header.
func (t *Table) Width() int {
	return len(t.ColumnNames)
}
