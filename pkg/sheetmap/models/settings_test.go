package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings *Settings
		wantErr  error
	}{
		{
			name:     "no columns",
			settings: NewSettings(),
		},
		{
			name:     "repeated last",
			settings: NewSettings().Column("Name", "Name").Column("Phones", "Phone", Repeated),
		},
		{
			name: "repeated not last",
			settings: &Settings{Columns: []ColumnDefinition{
				{FieldID: "Phones", Name: "Phone", Repeated: true},
				{FieldID: "Name", Name: "Name"},
			}},
			wantErr: ErrRepeatedNotLast,
		},
		{
			name: "two repeated",
			settings: &Settings{Columns: []ColumnDefinition{
				{FieldID: "A", Name: "A", Repeated: true},
				{FieldID: "B", Name: "B", Repeated: true},
			}},
			wantErr: ErrMultipleRepeated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSettingsFindIsCaseInsensitive(t *testing.T) {
	s := NewSettings().Column("Street", "Street", Required)

	for _, header := range []string{"Street", "street", "STREET", "  Street "} {
		def := s.Find(header)
		require.NotNil(t, def, "header %q should match", header)
		assert.Equal(t, "Street", def.FieldID)
		assert.True(t, def.Required)
	}

	assert.Nil(t, s.Find("Streets"))
	assert.Nil(t, s.Find(""))
}

func TestSettingsBuilderTracksRepeatedFrom(t *testing.T) {
	s := NewSettings().
		Column("Name", "Name").
		Column("Street", "Street").
		Column("Phones", "Phone", Repeated)

	assert.Equal(t, 2, s.RepeatedFrom)
	require.NotNil(t, s.RepeatedColumn())
	assert.Equal(t, "Phones", s.RepeatedColumn().FieldID)
}

func TestSettingsWriteColumns(t *testing.T) {
	s := NewSettings().
		Column("Name", "Name").
		Column("Street", "Street").
		Column("City", "City")

	assert.Len(t, s.WriteColumns(), 3)

	s.Include("name", "CITY")
	cols := s.WriteColumns()
	require.Len(t, cols, 2)
	assert.Equal(t, "Name", cols[0].Name)
	assert.Equal(t, "City", cols[1].Name)
}

func TestParseColumnTag(t *testing.T) {
	tests := []struct {
		tag  string
		want ColumnTag
	}{
		{"Street", ColumnTag{Name: "Street"}},
		{"Street,required", ColumnTag{Name: "Street", Required: true}},
		{"Phone,repeated", ColumnTag{Name: "Phone", Repeated: true}},
		{"Phone, repeated, required", ColumnTag{Name: "Phone", Required: true, Repeated: true}},
		{"", ColumnTag{}},
		{"-", ColumnTag{Skip: true}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseColumnTag(tt.tag), "tag %q", tt.tag)
	}
}

func TestValue(t *testing.T) {
	assert.True(t, Absent().IsAbsent())
	assert.True(t, Absent().IsBlank())

	v := Text("x")
	assert.False(t, v.IsAbsent())
	assert.False(t, v.IsBlank())
	assert.Equal(t, "x", v.AsText())

	blank := Text("  ")
	assert.False(t, blank.IsAbsent())
	assert.True(t, blank.IsBlank())

	list := List([]string{"a", "b"})
	assert.False(t, list.IsAbsent())
	items, ok := list.AsList()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)

	_, ok = v.AsList()
	assert.False(t, ok)
}
