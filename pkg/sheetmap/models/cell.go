// Package models defines the data types exchanged by the sheetmap readers
// and writers.
package models

// Cell is a single mapped cell of a data row. Value is always the textual
// rendering of the underlying spreadsheet cell, never a typed number.
type Cell struct {
	// ColumnName is the header text this cell was resolved against.
	ColumnName string `json:"column_name"`
	// FieldID identifies the record field the cell maps to, if any.
	FieldID string `json:"field_id,omitempty"`
	// Value is the raw cell text, empty for a blank cell.
	Value string `json:"value"`
	// Required mirrors the required flag of the matched column definition.
	Required bool `json:"required,omitempty"`
}
