package sheetmap

import (
	"fmt"
	"reflect"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
)

// EmptyCellPolicy is the optional document-level metadata a record type may
// declare alongside its sheet tags.
type EmptyCellPolicy interface {
	AllowEmptyCells() bool
}

// DeriveSettings builds Settings from a record type's sheet struct tags, one
// column definition per tagged exported field in declaration order. Untagged
// fields and fields tagged "-" are skipped; a tag without a name uses the
// field name as column name. The field name is the definition's field
// identifier.
//
// A field flagged repeated sets the repeated-from column to its position.
// The empty-cells policy defaults to false; a type can override it by
// implementing EmptyCellPolicy on its value receiver.
func DeriveSettings(v any) (*models.Settings, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive settings: %T is not a struct type", v)
	}

	s := &models.Settings{}
	if p, ok := v.(EmptyCellPolicy); ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || !rv.IsNil() {
			s.AllowEmptyCells = p.AllowEmptyCells()
		}
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, ok := field.Tag.Lookup(models.TagKey)
		if !ok || !field.IsExported() {
			continue
		}
		ct := models.ParseColumnTag(tag)
		if ct.Skip {
			continue
		}
		name := ct.Name
		if name == "" {
			name = field.Name
		}
		if ct.Repeated {
			s.RepeatedFrom = len(s.Columns)
		}
		s.Columns = append(s.Columns, models.ColumnDefinition{
			FieldID:  field.Name,
			Name:     name,
			Required: ct.Required,
			Repeated: ct.Repeated,
		})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
