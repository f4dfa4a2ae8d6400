package models

import "strings"

type valueKind int

const (
	kindAbsent valueKind = iota
	kindText
	kindList
)

// Value is an optional cell or field value. It distinguishes a value that is
// absent (no field, nil pointer, unset) from one that is present but blank,
// and carries list values for repeated columns.
type Value struct {
	kind valueKind
	text string
	list []string
}

// Absent returns a Value carrying no data.
func Absent() Value {
	return Value{kind: kindAbsent}
}

// Text returns a Value holding a single string.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// List returns a Value holding an ordered run of strings.
func List(items []string) Value {
	return Value{kind: kindList, list: items}
}

// IsAbsent reports whether the value carries no data at all.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent
}

// IsBlank reports whether the value is absent or renders to whitespace only.
func (v Value) IsBlank() bool {
	switch v.kind {
	case kindText:
		return strings.TrimSpace(v.text) == ""
	case kindList:
		return len(v.list) == 0
	default:
		return true
	}
}

// AsText returns the textual rendering of the value. Absent values and lists
// render empty; use AsList for repeated columns.
func (v Value) AsText() string {
	if v.kind == kindText {
		return v.text
	}
	return ""
}

// AsList returns the value as an ordered run of strings. The second return
// is false when the value is not a list.
func (v Value) AsList() ([]string, bool) {
	if v.kind != kindList {
		return nil, false
	}
	return v.list, true
}
