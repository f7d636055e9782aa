package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bkanis/gridpick/internal/host"
	"github.com/bkanis/gridpick/internal/picker"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Pick model views and activate them",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		doc, err := openDocument()
		if err != nil {
			return err
		}
		defer doc.Close()

		elems, err := doc.Elements(ctx, "View")
		if err != nil {
			return err
		}

		columns := []string{"Name", "View Type", "Scale"}
		res, err := picker.Open(elementRows(elems, columns), columns,
			pickerOptions(cmd, "Activate Views"))
		if err != nil {
			return err
		}
		if !res.Confirmed {
			return errCancelled
		}

		picked := pickedElements(res.Rows)
		err = doc.Transaction(ctx, "Activate views", func(tx host.Tx) error {
			for _, e := range picked {
				if err := tx.SetParam(e.ID, "Is Active", "true"); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, e := range picked {
			fmt.Fprintln(cmd.OutOrStdout(), e.Name)
		}
		return nil
	},
}

func init() {
	addPickerFlags(viewsCmd)
}
