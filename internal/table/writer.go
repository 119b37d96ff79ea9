package table

import (
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/giangnmt98/ExtractFeature/internal/errhandling"
)

// Writer serializes tables to delimited files with a header row.
type Writer struct {
	log *slog.Logger
}

// NewWriter creates a writer with the given logger.
func NewWriter(log *slog.Logger) *Writer {
	return &Writer{log: log}
}

// Write serializes all current columns of tbl to path, header row first,
// in the table's column order. No row index column is written. The
// destination is overwritten unconditionally.
//
// Returns a file_access fault if the destination cannot be created or a
// write fails mid-way. A partially written file is not cleaned up.
func (w *Writer) Write(tbl *Table, path string) error {
	w.log.Info("saving table", slog.String("path", path),
		slog.Int("rows", tbl.NumRows()),
		slog.Int("columns", tbl.NumColumns()),
	)

	file, err := os.Create(path)
	if err != nil {
		return errhandling.NewFileAccessError(path, err)
	}
	defer file.Close()

	csvWriter := csv.NewWriter(file)

	if err := csvWriter.Write(tbl.Columns()); err != nil {
		return errhandling.NewFileAccessError(path, err)
	}

	for i := 0; i < tbl.NumRows(); i++ {
		row := tbl.Row(i)
		record := make([]string, len(row))
		for j, value := range row {
			record[j] = value.Format()
		}
		if err := csvWriter.Write(record); err != nil {
			return errhandling.NewFileAccessError(path, err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return errhandling.NewFileAccessError(path, err)
	}

	w.log.Info("table saved successfully", slog.String("path", path))
	return nil
}
