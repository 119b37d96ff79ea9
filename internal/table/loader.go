package table

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/giangnmt98/ExtractFeature/internal/errhandling"
)

// Loader reads delimited files restricted to configured columns and
// coerces each retained column to its declared scalar type.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a loader with the given logger.
func NewLoader(log *slog.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the CSV file at path, keeping only the columns named in
// fields (in field order; all other source columns are dropped), and
// coerces every cell to the field's declared kind.
//
// Faults:
//   - file_access if the path cannot be opened
//   - empty_input if the file contains no data at all (not even a header)
//   - parse if the CSV content is malformed
//   - missing_column if a configured column is absent from the header
//   - type_coercion if a cell cannot be converted to its declared kind
//
// A header-only file yields a zero-row table, not a fault.
func (l *Loader) Load(path string, fields []FieldSpec) (*Table, error) {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	l.log.Info("loading CSV file", slog.String("path", path), slog.Any("fields", names))

	file, err := os.Open(path)
	if err != nil {
		return nil, errhandling.NewFileAccessError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errhandling.NewEmptyInputError(path, err)
		}
		return nil, errhandling.NewParseError("failed to read CSV header", err)
	}

	// Map each configured column to its position in the source header.
	indices := make([]int, len(fields))
	for i, field := range fields {
		idx := -1
		for j, col := range header {
			if col == field.Name {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, errhandling.NewMissingColumnError(field.Name)
		}
		indices[i] = idx
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errhandling.NewParseError("failed to read CSV records", err)
	}

	tbl := New(len(records))
	for i, field := range fields {
		values := make([]Value, len(records))
		for row, record := range records {
			var text string
			if indices[i] < len(record) {
				text = record[indices[i]]
			}
			value, coerceErr := coerce(text, field.Kind)
			if coerceErr != nil {
				return nil, errhandling.NewTypeCoercionError(field.Name, row, text, field.Kind.String(), coerceErr)
			}
			values[row] = value
		}
		if err := tbl.SetColumn(field.Name, values); err != nil {
			return nil, err
		}
	}

	l.log.Info("CSV file loaded successfully",
		slog.Int("rows", tbl.NumRows()),
		slog.Int("columns", tbl.NumColumns()),
	)
	return tbl, nil
}

// coerce converts raw cell text to a value of the target kind.
//
// String cells are taken verbatim; an empty cell is the empty string, not
// null. Float cells treat the empty cell and NaN as null. Integer and
// boolean cells have no null representation in CSV, so unparseable text
// (including the empty cell) is a conversion error.
func coerce(text string, kind Kind) (Value, error) {
	switch kind {
	case KindString:
		return StringValue(text), nil
	case KindInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case KindFloat:
		if text == "" {
			return Null(KindFloat), nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, err
		}
		if math.IsNaN(f) {
			return Null(KindFloat), nil
		}
		return FloatValue(f), nil
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	default:
		return Value{}, errors.New("unknown kind")
	}
}
