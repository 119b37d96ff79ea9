// Package table provides the in-memory table model and the CSV loader and
// writer used by the extraction pipeline.
//
// A table is columnar: an ordered list of named columns, each a uniform
// sequence of optional tagged scalar values. Nulls are explicit; there is
// no implicit broadcasting, every operation over a column handles the null
// case itself.
package table

import (
	"fmt"
	"strconv"
)

// Kind identifies the scalar type of a value. It is a closed set; the
// loader coerces every configured column to exactly one of these.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the canonical type tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a configuration type tag to a Kind. Aliases match the
// tags found in existing configuration files (str, int64, float64, bool).
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "string", "str", "text":
		return KindString, nil
	case "integer", "int", "int64":
		return KindInt, nil
	case "float", "float64", "double":
		return KindFloat, nil
	case "boolean", "bool":
		return KindBool, nil
	default:
		return KindString, fmt.Errorf("unknown field type %q", tag)
	}
}

// FieldSpec pairs a column name with its declared scalar type.
// The ordered field list from the configuration is expressed as []FieldSpec.
type FieldSpec struct {
	Name string
	Kind Kind
}

// Value is an optional tagged scalar. Null values keep their Kind so a
// column stays uniformly typed. The zero Value is a non-null empty string.
type Value struct {
	Kind  Kind
	Null  bool
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// StringValue returns a non-null string value. The empty string is a
// regular value, distinct from null.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// IntValue returns a non-null integer value.
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// FloatValue returns a non-null float value.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// BoolValue returns a non-null boolean value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Null returns a null value of the given kind.
func Null(kind Kind) Value {
	return Value{Kind: kind, Null: true}
}

// IsNull reports whether the value is null/missing.
func (v Value) IsNull() bool {
	return v.Null
}

// Format renders the value as a CSV cell. Null renders as the empty field.
func (v Value) Format() string {
	if v.Null {
		return ""
	}
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and content.
// Two nulls of the same kind are equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind || v.Null != o.Null {
		return false
	}
	if v.Null {
		return true
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindBool:
		return v.Bool == o.Bool
	default:
		return false
	}
}

// Table is an ordered collection of named columns of uniform length.
// Column order is significant: it determines the header order on write.
type Table struct {
	names   []string
	columns map[string][]Value
	rows    int
}

// New creates an empty table with the given number of rows.
// Columns added later must match this length.
func New(rows int) *Table {
	return &Table{
		columns: make(map[string][]Value),
		rows:    rows,
	}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.names)
}

// Columns returns the column names in order. The returned slice is a copy.
func (t *Table) Columns() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the values of the named column. The returned slice is the
// live backing storage: mutating its elements mutates the table. Callers
// that need a snapshot must copy.
func (t *Table) Column(name string) ([]Value, bool) {
	values, ok := t.columns[name]
	return values, ok
}

// SetColumn appends a new column, or replaces an existing column in place
// keeping its original position. Replacing in place is what makes repeated
// feature derivation idempotent on column order.
func (t *Table) SetColumn(name string, values []Value) error {
	if len(values) != t.rows {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), t.rows)
	}
	if _, exists := t.columns[name]; !exists {
		t.names = append(t.names, name)
	}
	t.columns[name] = values
	return nil
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.names))
	for j, name := range t.names {
		row[j] = t.columns[name][i]
	}
	return row
}
