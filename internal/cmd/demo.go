package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bkanis/gridpick/internal/grid"
	"github.com/bkanis/gridpick/internal/picker"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Exercise the picker with built-in rows, no model database",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := []grid.Row{
			{Cells: map[string]any{"Title": "Level 1 Plan", "Scale": "1:100"}, Payload: "L1"},
			{Cells: map[string]any{"Title": "Level 2 Plan", "Scale": "1:100"}, Payload: "L2"},
			{Cells: map[string]any{"Title": "Site Plan", "Scale": "1:500"}, Payload: "SP"},
			{Cells: map[string]any{"Title": "North Elevation", "Scale": "1:100"}, Payload: "NE"},
			{Cells: map[string]any{"Title": "Section A-A", "Scale": "1:50"}, Payload: "AA"},
		}
		columns := []string{"Title", "Scale"}

		res, err := picker.Open(rows, columns, pickerOptions(cmd, "Demo Picker"))
		if err != nil {
			return err
		}
		if !res.Confirmed {
			return errCancelled
		}
		for _, r := range res.Rows {
			fmt.Fprintf(cmd.OutOrStdout(), "%v\t%s\n", r.Payload, r.Cell("Title"))
		}
		return nil
	},
}

func init() {
	addPickerFlags(demoCmd)
}
