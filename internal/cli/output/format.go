// Package output renders replay reports for the terminal.
//
// The table form is for humans reading a run interactively; json and yaml
// carry the same report into scripts and dashboards. The fixed stat lines
// the replay command prints after every run are not handled here, their
// format is frozen for downstream parsers.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat maps a --output flag value onto a Format. The empty string
// means the table default.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: table, json, yaml)", s)
	}
}

func (f Format) String() string {
	return string(f)
}

// Report is a renderable replay report. Summary carries the run-level
// key-value pairs shown above the table; Headers and Rows carry the
// tabular body. The json and yaml forms marshal the report value itself.
type Report interface {
	Summary() [][2]string
	Headers() []string
	Rows() [][]string
}

// Print renders the report to w in the given format.
func Print(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatTable:
		return printTable(w, report)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(report)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
