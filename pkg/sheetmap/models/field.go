package models

import (
	"fmt"
	"reflect"
	"strings"
)

// TagKey is the struct tag key declaring a field's column mapping, e.g.
//
//	Street string   `sheet:"Street,required"`
//	Phones []string `sheet:"Phone,repeated"`
//
// The tag value "-" skips the field; an empty name falls back to the field
// name.
const TagKey = "sheet"

// FieldSource resolves a record's field value by its field identifier.
// Records that do not implement it are resolved by reflection over their
// sheet tags instead.
type FieldSource interface {
	Field(id string) Value
}

// ColumnTag is the parsed form of one sheet struct tag.
type ColumnTag struct {
	Name     string
	Required bool
	Repeated bool
	Skip     bool
}

// ParseColumnTag parses a sheet tag value. The first element is the column
// name, the remaining comma-separated flags are "required" and "repeated".
func ParseColumnTag(tag string) ColumnTag {
	if tag == "-" {
		return ColumnTag{Skip: true}
	}
	parts := strings.Split(tag, ",")
	out := ColumnTag{Name: strings.TrimSpace(parts[0])}
	for _, flag := range parts[1:] {
		switch strings.TrimSpace(flag) {
		case "required":
			out.Required = true
		case "repeated":
			out.Repeated = true
		}
	}
	return out
}

// ResolveField looks up a field value inside an arbitrary record. A record
// implementing FieldSource answers for itself; anything else is resolved as
// a struct field named by fieldID. Missing fields, nil pointers, and empty
// identifiers yield an absent Value.
func ResolveField(record any, fieldID string) Value {
	if fieldID == "" || record == nil {
		return Absent()
	}
	if src, ok := record.(FieldSource); ok {
		return src.Field(fieldID)
	}

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Absent()
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Absent()
	}
	fv := rv.FieldByName(fieldID)
	if !fv.IsValid() {
		return Absent()
	}
	return valueOf(fv)
}

// valueOf converts a reflected field into a Value, preserving the
// absent/blank distinction: nil pointers and nil slices are absent, empty
// strings are present but blank.
func valueOf(fv reflect.Value) Value {
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return Absent()
		}
		fv = fv.Elem()
	}

	switch fv.Kind() {
	case reflect.String:
		return Text(fv.String())
	case reflect.Slice, reflect.Array:
		if fv.Kind() == reflect.Slice && fv.IsNil() {
			return Absent()
		}
		items := make([]string, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			items[i] = renderScalar(fv.Index(i))
		}
		return List(items)
	case reflect.Invalid:
		return Absent()
	default:
		return Text(renderScalar(fv))
	}
}

func renderScalar(fv reflect.Value) string {
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return ""
		}
		fv = fv.Elem()
	}
	if fv.Kind() == reflect.String {
		return fv.String()
	}
	return fmt.Sprint(fv.Interface())
}
