package export

import (
	"fmt"
	"io"

	"github.com/rodaine/table"
	"github.com/yingtu35/url-scanner/internal/scanner"
)

// PrintSummary prints how the URLs of a run were resolved.
func PrintSummary(w io.Writer, report *scanner.Report) {
	tbl := table.New("Outcome", "URLs").WithWriter(w)
	tbl.AddRow("success", report.Stats.Succeeded)
	tbl.AddRow("not found", report.Stats.Dropped)
	tbl.AddRow("retries exhausted", report.Stats.Exhausted)
	tbl.AddRow("failed", report.Stats.Failed+report.Stats.Panicked)
	tbl.AddRow("total", report.Stats.Total())
	tbl.Print()

	fmt.Fprintf(w, "Time used: %.3f seconds.\n", report.Elapsed.Seconds())
}
