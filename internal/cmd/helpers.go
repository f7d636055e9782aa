package cmd

import (
	"fmt"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/bkanis/gridpick/internal/grid"
	"github.com/bkanis/gridpick/internal/host"
	"github.com/bkanis/gridpick/internal/host/sqlitedoc"
	"github.com/bkanis/gridpick/internal/picker"
)

// openDocument opens the configured model database.
func openDocument() (*sqlitedoc.Doc, error) {
	return sqlitedoc.Open(cfg.ModelPath())
}

// elementRows converts host elements into picker rows. The Name column is
// always populated; the remaining columns come from element parameters. The
// element itself rides along as the opaque payload so commands can apply
// transactions to exactly what was picked.
func elementRows(elems []host.Element, columns []string) []grid.Row {
	rows := make([]grid.Row, len(elems))
	for i, e := range elems {
		cells := make(map[string]any, len(columns))
		for _, c := range columns {
			if c == "Name" {
				cells[c] = e.Name
				continue
			}
			if v := e.Param(c); v != "" {
				cells[c] = v
			}
		}
		rows[i] = grid.Row{Cells: cells, Payload: e}
	}
	return rows
}

// pickedElements unwraps the element payloads from a confirmed result.
func pickedElements(rows []grid.Row) []host.Element {
	elems := make([]host.Element, len(rows))
	for i, r := range rows {
		elems[i] = r.Payload.(host.Element)
	}
	return elems
}

// parseColumns splits a --columns flag value into column names. CAD
// parameter names contain spaces ("Sheet Number"), so the value is
// shell-word split: gridpick elements --columns 'Name "Sheet Number"'.
func parseColumns(spec string) ([]string, error) {
	cols, err := shlex.Split(spec)
	if err != nil {
		return nil, fmt.Errorf("parse --columns: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("--columns must name at least one column")
	}
	return cols, nil
}

// pickerOptions assembles session options from config defaults and the
// shared picker flags.
func pickerOptions(cmd *cobra.Command, title string) picker.Options {
	opts := picker.Options{
		Options: grid.Options{
			Title:               title,
			AllowEmptySelection: cfg.Picker.AllowEmptySelection,
			SpanAllScreens:      cfg.Picker.SpanAllScreens,
		},
		MaxVisibleRows: cfg.Picker.MaxVisibleRows,
	}
	if cmd.Flags().Changed("allow-empty") {
		opts.AllowEmptySelection, _ = cmd.Flags().GetBool("allow-empty")
	}
	if cmd.Flags().Changed("span") {
		opts.SpanAllScreens, _ = cmd.Flags().GetBool("span")
	}
	opts.InitialQuery, _ = cmd.Flags().GetString("query")
	return opts
}

// addPickerFlags registers the flags every picking command shares.
func addPickerFlags(cmd *cobra.Command) {
	cmd.Flags().String("query", "", "initial filter query")
	cmd.Flags().Bool("allow-empty", false, "allow confirming with no rows selected")
	cmd.Flags().Bool("span", false, "span the picker across all screens")
}
