package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// printer writes a value in the format chosen with --output.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (printer, error) {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return printer{w: w, format: format}, nil
	case "":
		return printer{w: w, format: formatTable}, nil
	}
	return printer{}, fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
}

// print encodes v as JSON or YAML, or renders the table built by render.
func (p printer) print(v any, render func() string) error {
	switch p.format {
	case formatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal data to JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.w, string(b))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal data to YAML: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(p.w, render())
		return err
	}
}

// message prints a one-line confirmation in table mode; structured formats
// get v instead.
func (p printer) message(v any, text string) error {
	return p.print(v, func() string { return text })
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}
