package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bkanis/gridpick/internal/host"
	"github.com/bkanis/gridpick/internal/picker"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "Pick elements of any category and tag them",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		category, _ := cmd.Flags().GetString("category")
		tag, _ := cmd.Flags().GetString("tag")
		colSpec, _ := cmd.Flags().GetString("columns")

		columns, err := parseColumns(colSpec)
		if err != nil {
			return err
		}

		doc, err := openDocument()
		if err != nil {
			return err
		}
		defer doc.Close()

		elems, err := doc.Elements(ctx, category)
		if err != nil {
			return err
		}

		title := fmt.Sprintf("Tag %s Elements", category)
		res, err := picker.Open(elementRows(elems, columns), columns,
			pickerOptions(cmd, title))
		if err != nil {
			return err
		}
		if !res.Confirmed {
			return errCancelled
		}

		picked := pickedElements(res.Rows)
		err = doc.Transaction(ctx, "Tag elements", func(tx host.Tx) error {
			for _, e := range picked {
				if err := tx.SetParam(e.ID, "Tag", tag); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "tagged %d element(s) with %q\n", len(picked), tag)
		return nil
	},
}

func init() {
	elementsCmd.Flags().String("category", "", "element category to list")
	elementsCmd.Flags().String("tag", "", "tag value to write")
	elementsCmd.Flags().String("columns", `Name Level`, "columns to display (shell-quoted for names with spaces)")
	_ = elementsCmd.MarkFlagRequired("category")
	_ = elementsCmd.MarkFlagRequired("tag")
	addPickerFlags(elementsCmd)
}
