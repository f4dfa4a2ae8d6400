package models

import "strings"

// ColumnDefinition declares how one record field corresponds to one
// spreadsheet column.
type ColumnDefinition struct {
	// FieldID identifies the record field, usually the struct field name.
	FieldID string `json:"field_id,omitempty"`
	// Name is the display column name. It is the join key against the
	// sheet's header text, matched case-insensitively.
	Name string `json:"name"`
	// Required marks a column whose cells must be non-blank.
	Required bool `json:"required,omitempty"`
	// Repeated marks the one column that absorbs a variable-width trailing
	// run of physical columns.
	Repeated bool `json:"repeated,omitempty"`
}

// Matches reports whether the definition's name matches the given header
// text, ignoring case and surrounding whitespace.
func (d ColumnDefinition) Matches(header string) bool {
	return strings.EqualFold(strings.TrimSpace(header), strings.TrimSpace(d.Name))
}

// Settings holds the per-document mapping configuration.
type Settings struct {
	// AllowEmptyCells permits blank cells in data rows of a generic table
	// read. When false, a row with any blank cell is a violation.
	AllowEmptyCells bool `json:"allow_empty_cells"`
	// RepeatedFrom is the zero-based column index from which trailing
	// columns resolve to the repeated definition. It is honored only when
	// greater than zero, and only by the typed row reader.
	RepeatedFrom int `json:"repeated_from,omitempty"`
	// Columns lists the column definitions in output order.
	Columns []ColumnDefinition `json:"columns"`
	// Included, when non-empty, names the only columns that survive before
	// a write.
	Included []string `json:"included,omitempty"`
}

// NewSettings returns empty settings for fluent construction:
//
//	s := models.NewSettings().
//		Column("Street", "Street", models.Required).
//		Column("Phones", "Phone", models.Repeated)
func NewSettings() *Settings {
	return &Settings{}
}

// ColumnFlag adjusts a column definition added through Column.
type ColumnFlag func(*ColumnDefinition)

// Required marks the column as required.
func Required(d *ColumnDefinition) { d.Required = true }

// Repeated marks the column as repeated.
func Repeated(d *ColumnDefinition) { d.Repeated = true }

// Column appends a definition and returns the settings for chaining.
func (s *Settings) Column(fieldID, name string, flags ...ColumnFlag) *Settings {
	d := ColumnDefinition{FieldID: fieldID, Name: name}
	for _, f := range flags {
		f(&d)
	}
	if d.Repeated {
		s.RepeatedFrom = len(s.Columns)
	}
	s.Columns = append(s.Columns, d)
	return s
}

// AllowEmpty sets the empty-cells policy and returns the settings.
func (s *Settings) AllowEmpty(allow bool) *Settings {
	s.AllowEmptyCells = allow
	return s
}

// Include restricts writes to the named columns and returns the settings.
func (s *Settings) Include(names ...string) *Settings {
	s.Included = append(s.Included, names...)
	return s
}

// Validate checks the structural invariants: at most one repeated definition,
// and if present it must be the last one.
func (s *Settings) Validate() error {
	repeated := -1
	for i, d := range s.Columns {
		if !d.Repeated {
			continue
		}
		if repeated >= 0 {
			return ErrMultipleRepeated
		}
		repeated = i
	}
	if repeated >= 0 && repeated != len(s.Columns)-1 {
		return ErrRepeatedNotLast
	}
	return nil
}

// Find returns the first definition whose name matches the header text
// case-insensitively, or nil.
func (s *Settings) Find(header string) *ColumnDefinition {
	for i := range s.Columns {
		if s.Columns[i].Matches(header) {
			return &s.Columns[i]
		}
	}
	return nil
}

// RepeatedColumn returns the definition flagged repeated, or nil.
func (s *Settings) RepeatedColumn() *ColumnDefinition {
	for i := range s.Columns {
		if s.Columns[i].Repeated {
			return &s.Columns[i]
		}
	}
	return nil
}

// WriteColumns returns the definitions that survive the Included filter, in
// declaration order. With an empty filter all definitions survive.
func (s *Settings) WriteColumns() []ColumnDefinition {
	if len(s.Included) == 0 {
		return s.Columns
	}
	keep := make(map[string]bool, len(s.Included))
	for _, name := range s.Included {
		keep[strings.ToLower(strings.TrimSpace(name))] = true
	}
	var out []ColumnDefinition
	for _, d := range s.Columns {
		if keep[strings.ToLower(strings.TrimSpace(d.Name))] {
			out = append(out, d)
		}
	}
	return out
}
