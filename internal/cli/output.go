package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/giangnmt98/ExtractFeature/internal/runtime"
	"github.com/giangnmt98/ExtractFeature/internal/table"
)

// previewRowLimit caps how many rows of the final table are rendered
// without --verbose.
const previewRowLimit = 20

// OutputOptions configures CLI output behavior.
type OutputOptions struct {
	Verbose bool
	Quiet   bool
}

// PrintExecutionResult displays the pipeline execution result, including a
// rendering of the final table on success.
func PrintExecutionResult(result *runtime.ExecutionResult, err error, opts OutputOptions) {
	if result == nil {
		fmt.Fprintln(os.Stderr, "✗ No execution result available")
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Extraction failed")
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		return
	}

	if opts.Quiet {
		return
	}

	fmt.Println("✓ Extraction completed successfully")
	fmt.Printf("  Status: %s\n", result.Status)
	fmt.Printf("  Rows: %d\n", result.Rows)
	fmt.Printf("  Columns: %d\n", result.Columns)
	fmt.Printf("  Output: %s\n", result.OutputPath)
	if opts.Verbose {
		fmt.Printf("  Load: %v  Derive: %v  Write: %v  Total: %v\n",
			result.LoadDuration, result.DeriveDuration, result.WriteDuration, result.TotalDuration)
	}

	if result.Table != nil {
		fmt.Println()
		limit := previewRowLimit
		if opts.Verbose {
			limit = 0
		}
		RenderTable(os.Stdout, result.Table, limit)
	}
}

// RenderTable renders a table to w in an aligned text grid. A limit > 0
// caps the number of rendered rows; a truncation note follows when rows
// were cut off. Null values render as empty cells.
func RenderTable(w io.Writer, tbl *table.Table, limit int) {
	if tbl.NumColumns() == 0 {
		fmt.Fprintln(w, "(no columns)")
		return
	}

	rows := tbl.NumRows()
	truncated := false
	if limit > 0 && rows > limit {
		rows = limit
		truncated = true
	}

	grid := tablewriter.NewWriter(w)
	// Column names are data, not captions: keep them verbatim.
	grid.SetAutoFormatHeaders(false)
	grid.SetHeader(tbl.Columns())

	for i := 0; i < rows; i++ {
		row := tbl.Row(i)
		record := make([]string, len(row))
		for j, value := range row {
			record[j] = value.Format()
		}
		grid.Append(record)
	}
	grid.Render()

	if truncated {
		fmt.Fprintf(w, "... %d more rows\n", tbl.NumRows()-rows)
	}
}
