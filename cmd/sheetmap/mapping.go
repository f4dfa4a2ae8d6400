package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
)

// mappingFile is the on-disk shape of a column mapping:
//
//	allow_empty_cells: false
//	columns:
//	  - name: Street
//	    field: Street
//	    required: true
//	  - name: Phone
//	    field: Phones
//	    repeated: true
type mappingFile struct {
	AllowEmptyCells bool            `mapstructure:"allow_empty_cells"`
	Included        []string        `mapstructure:"included"`
	Columns         []mappingColumn `mapstructure:"columns"`
}

type mappingColumn struct {
	Name     string `mapstructure:"name"`
	Field    string `mapstructure:"field"`
	Required bool   `mapstructure:"required"`
	Repeated bool   `mapstructure:"repeated"`
}

func loadMapping(path string) (*models.Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read mapping file: %w", err)
	}

	var file mappingFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("invalid mapping file: %w", err)
	}

	settings := &models.Settings{
		AllowEmptyCells: file.AllowEmptyCells,
		Included:        file.Included,
	}
	for _, c := range file.Columns {
		if c.Repeated {
			settings.RepeatedFrom = len(settings.Columns)
		}
		settings.Columns = append(settings.Columns, models.ColumnDefinition{
			FieldID:  c.Field,
			Name:     c.Name,
			Required: c.Required,
			Repeated: c.Repeated,
		})
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mapping file: %w", err)
	}
	return settings, nil
}
