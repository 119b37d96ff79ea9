// Package feature computes the derived feature columns of the extraction
// pipeline. The feature set is fixed: each feature is a stateless row-wise
// rule reading one source column and appending one derived column.
package feature

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/giangnmt98/ExtractFeature/internal/errhandling"
	"github.com/giangnmt98/ExtractFeature/internal/table"
)

// Feature names accepted in the configuration's feature list.
const (
	FeatureHasPhone        = "HasPhone"
	FeatureEmailDomain     = "EmailDomain"
	FeatureFirstNameLength = "FirstNameLength"
	FeatureLastNameLength  = "LastNameLength"
	FeatureIsInNY          = "IsInNY"
)

// Source columns each feature depends on. The dependency is not validated
// up front: a requested feature whose source column is absent fails with a
// missing_column fault at derivation time.
const (
	ColumnPhone     = "phone"
	ColumnEmail     = "email"
	ColumnFirstName = "first_name"
	ColumnLastName  = "last_name"
	ColumnState     = "state"
)

// Sentinel strings normalized to null before any feature is computed.
const (
	sentinelNan  = "nan"
	sentinelNull = "NULL"
)

// derivationOrder fixes the evaluation order, and with it the column order
// of the derived features in the output.
var derivationOrder = []string{
	FeatureHasPhone,
	FeatureEmailDomain,
	FeatureFirstNameLength,
	FeatureLastNameLength,
	FeatureIsInNY,
}

// Deriver computes derived feature columns on a loaded table.
type Deriver struct {
	log *slog.Logger
}

// NewDeriver creates a deriver with the given logger.
func NewDeriver(log *slog.Logger) *Deriver {
	return &Deriver{log: log}
}

// Derive appends one column per requested feature to tbl, mutating and
// returning the same table. Requested names outside the fixed feature set
// are silently ignored. Row order and unrelated columns are untouched.
//
// Before any feature check, every string cell equal to the literal "nan"
// or "NULL" is replaced with null, whether or not its column feeds a
// requested feature.
//
// Re-deriving with the same features recomputes identical values in place;
// there is no hidden accumulation state.
func (d *Deriver) Derive(tbl *table.Table, requested []string) (*table.Table, error) {
	d.log.Info("starting feature extraction", slog.Any("features", requested))

	normalizeSentinels(tbl)

	set := make(map[string]bool, len(requested))
	for _, name := range requested {
		set[name] = true
	}

	for _, name := range derivationOrder {
		if !set[name] {
			continue
		}
		d.log.Info("extracting feature", slog.String("feature", name))
		if err := derive(tbl, name); err != nil {
			return nil, err
		}
	}

	d.log.Info("feature extraction completed")
	return tbl, nil
}

// normalizeSentinels replaces sentinel null strings with null in every
// column. Only string cells can hold the literals; numeric and boolean
// cells are untouched.
func normalizeSentinels(tbl *table.Table) {
	for _, name := range tbl.Columns() {
		values, _ := tbl.Column(name)
		for i, v := range values {
			if v.Null || v.Kind != table.KindString {
				continue
			}
			if v.Str == sentinelNan || v.Str == sentinelNull {
				values[i] = table.Null(table.KindString)
			}
		}
	}
}

func derive(tbl *table.Table, name string) error {
	switch name {
	case FeatureHasPhone:
		return deriveHasPhone(tbl)
	case FeatureEmailDomain:
		return deriveEmailDomain(tbl)
	case FeatureFirstNameLength:
		return deriveNameLength(tbl, ColumnFirstName, FeatureFirstNameLength)
	case FeatureLastNameLength:
		return deriveNameLength(tbl, ColumnLastName, FeatureLastNameLength)
	case FeatureIsInNY:
		return deriveIsInNY(tbl)
	default:
		return nil
	}
}

// deriveHasPhone appends a boolean column: true iff the phone value is not
// null. The empty string is a value, so an empty phone yields true.
func deriveHasPhone(tbl *table.Table) error {
	source, ok := tbl.Column(ColumnPhone)
	if !ok {
		return errhandling.NewMissingColumnError(ColumnPhone)
	}
	out := make([]table.Value, len(source))
	for i, v := range source {
		out[i] = table.BoolValue(!v.IsNull())
	}
	return tbl.SetColumn(FeatureHasPhone, out)
}

// deriveEmailDomain appends a string column holding the last '@'-separated
// segment of the email. No '@' means the whole string; null propagates.
func deriveEmailDomain(tbl *table.Table) error {
	source, ok := tbl.Column(ColumnEmail)
	if !ok {
		return errhandling.NewMissingColumnError(ColumnEmail)
	}
	out := make([]table.Value, len(source))
	for i, v := range source {
		s, present := stringCell(v)
		if !present {
			out[i] = table.Null(table.KindString)
			continue
		}
		parts := strings.Split(s, "@")
		out[i] = table.StringValue(parts[len(parts)-1])
	}
	return tbl.SetColumn(FeatureEmailDomain, out)
}

// deriveNameLength appends an integer column with the character count of
// the source column. Lengths count characters, not bytes; null propagates.
func deriveNameLength(tbl *table.Table, column, feature string) error {
	source, ok := tbl.Column(column)
	if !ok {
		return errhandling.NewMissingColumnError(column)
	}
	out := make([]table.Value, len(source))
	for i, v := range source {
		s, present := stringCell(v)
		if !present {
			out[i] = table.Null(table.KindInt)
			continue
		}
		out[i] = table.IntValue(int64(utf8.RuneCountInString(s)))
	}
	return tbl.SetColumn(feature, out)
}

// deriveIsInNY appends a boolean column: true iff the uppercased state
// equals "NY". A null state compares as not-"NY" and yields false rather
// than a fault or a null.
func deriveIsInNY(tbl *table.Table) error {
	source, ok := tbl.Column(ColumnState)
	if !ok {
		return errhandling.NewMissingColumnError(ColumnState)
	}
	out := make([]table.Value, len(source))
	for i, v := range source {
		s, present := stringCell(v)
		out[i] = table.BoolValue(present && strings.ToUpper(s) == "NY")
	}
	return tbl.SetColumn(FeatureIsInNY, out)
}

// stringCell returns the string content of a cell and whether it holds one.
// Null cells and cells of non-string kinds have no string content; string
// operations treat both as missing.
func stringCell(v table.Value) (string, bool) {
	if v.IsNull() || v.Kind != table.KindString {
		return "", false
	}
	return v.Str, true
}
