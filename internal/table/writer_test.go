package table

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/giangnmt98/ExtractFeature/internal/errhandling"
	"github.com/giangnmt98/ExtractFeature/internal/logger"
)

func TestWriterWrite(t *testing.T) {
	tbl := New(2)
	_ = tbl.SetColumn("first_name", []Value{StringValue("Jane"), StringValue("John")})
	_ = tbl.SetColumn("HasPhone", []Value{BoolValue(false), BoolValue(true)})
	_ = tbl.SetColumn("EmailDomain", []Value{Null(KindString), StringValue("x.com")})

	path := filepath.Join(t.TempDir(), "out.csv")
	writer := NewWriter(logger.Discard())

	if err := writer.Write(tbl, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows)", len(records))
	}
	wantHeader := []string{"first_name", "HasPhone", "EmailDomain"}
	for i, name := range wantHeader {
		if records[0][i] != name {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], name)
		}
	}
	if records[1][1] != "false" || records[2][1] != "true" {
		t.Errorf("HasPhone column = [%q %q], want [false true]", records[1][1], records[2][1])
	}
	if records[1][2] != "" {
		t.Errorf("null EmailDomain should serialize as empty field, got %q", records[1][2])
	}
}

func TestWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl := New(1)
	_ = tbl.SetColumn("a", []Value{IntValue(1)})

	writer := NewWriter(logger.Discard())
	if err := writer.Write(tbl, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "stale") {
		t.Error("destination should be overwritten unconditionally")
	}
}

func TestWriterUnwritableDestination(t *testing.T) {
	tbl := New(0)
	writer := NewWriter(logger.Discard())

	err := writer.Write(tbl, filepath.Join(t.TempDir(), "missing-dir", "out.csv"))
	if !errhandling.IsCategory(err, errhandling.CategoryFileAccess) {
		t.Errorf("expected file_access fault, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	// Writing a table and loading it back with the same field configuration
	// yields row-for-row equal scalar values.
	fields := []FieldSpec{
		{Name: "name", Kind: KindString},
		{Name: "age", Kind: KindInt},
		{Name: "score", Kind: KindFloat},
		{Name: "active", Kind: KindBool},
	}

	tbl := New(2)
	_ = tbl.SetColumn("name", []Value{StringValue("Jane"), StringValue("Doe")})
	_ = tbl.SetColumn("age", []Value{IntValue(34), IntValue(28)})
	_ = tbl.SetColumn("score", []Value{FloatValue(1.5), Null(KindFloat)})
	_ = tbl.SetColumn("active", []Value{BoolValue(true), BoolValue(false)})

	path := filepath.Join(t.TempDir(), "roundtrip.csv")
	if err := NewWriter(logger.Discard()).Write(tbl, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	loaded, err := NewLoader(logger.Discard()).Load(path, fields)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.NumRows() != tbl.NumRows() {
		t.Fatalf("NumRows() = %d, want %d", loaded.NumRows(), tbl.NumRows())
	}
	for _, field := range fields {
		want, _ := tbl.Column(field.Name)
		got, ok := loaded.Column(field.Name)
		if !ok {
			t.Fatalf("column %q missing after round trip", field.Name)
		}
		for i := range want {
			if !got[i].Equal(want[i]) {
				t.Errorf("%s[%d] = %v, want %v", field.Name, i, got[i], want[i])
			}
		}
	}
}
