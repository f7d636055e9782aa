package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bkanis/gridpick/internal/host"
	"github.com/bkanis/gridpick/internal/picker"
)

// printQueue is the work queue print jobs land in.
const printQueue = "print"

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Pick sheets and queue them for printing",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		doc, err := openDocument()
		if err != nil {
			return err
		}
		defer doc.Close()

		elems, err := doc.Elements(ctx, "Sheet")
		if err != nil {
			return err
		}

		columns := []string{"Sheet Number", "Name"}
		res, err := picker.Open(elementRows(elems, columns), columns,
			pickerOptions(cmd, "Queue Sheets"))
		if err != nil {
			return err
		}
		if !res.Confirmed {
			return errCancelled
		}

		picked := pickedElements(res.Rows)
		err = doc.Transaction(ctx, "Queue sheets for printing", func(tx host.Tx) error {
			for _, e := range picked {
				if err := tx.Enqueue(printQueue, e.ID); err != nil {
					return err
				}
				if err := tx.SetParam(e.ID, "Print Status", "queued"); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "queued %d sheet(s)\n", len(picked))
		return nil
	},
}

func init() {
	addPickerFlags(sheetsCmd)
}
