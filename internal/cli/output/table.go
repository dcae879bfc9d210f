package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// printTable writes the summary key-value block, a blank line, then the
// tabular body.
func printTable(w io.Writer, report Report) error {
	summary := newTable(w)
	summary.SetColumnSeparator(":")
	for _, pair := range report.Summary() {
		summary.Append([]string{pair[0], pair[1]})
	}
	summary.Render()

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	body := newTable(w)
	body.SetHeader(report.Headers())
	body.SetAutoFormatHeaders(true)
	for _, row := range report.Rows() {
		body.Append(row)
	}
	body.Render()
	return nil
}

// newTable returns a borderless left-aligned table.
func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}
