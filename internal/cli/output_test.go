package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/giangnmt98/ExtractFeature/internal/table"
)

func TestRenderTable(t *testing.T) {
	tbl := table.New(2)
	_ = tbl.SetColumn("first_name", []table.Value{table.StringValue("Jane"), table.StringValue("John")})
	_ = tbl.SetColumn("HasPhone", []table.Value{table.BoolValue(false), table.BoolValue(true)})
	_ = tbl.SetColumn("EmailDomain", []table.Value{table.Null(table.KindString), table.StringValue("x.com")})

	var buf bytes.Buffer
	RenderTable(&buf, tbl, 0)

	out := buf.String()
	for _, want := range []string{"first_name", "Jane", "John", "x.com", "true", "false"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTableTruncation(t *testing.T) {
	tbl := table.New(5)
	values := make([]table.Value, 5)
	for i := range values {
		values[i] = table.IntValue(int64(i))
	}
	_ = tbl.SetColumn("n", values)

	var buf bytes.Buffer
	RenderTable(&buf, tbl, 2)

	if !strings.Contains(buf.String(), "... 3 more rows") {
		t.Errorf("expected truncation note, got:\n%s", buf.String())
	}
}

func TestRenderTableNoColumns(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, table.New(0), 0)

	if !strings.Contains(buf.String(), "no columns") {
		t.Errorf("expected placeholder for empty table, got %q", buf.String())
	}
}
