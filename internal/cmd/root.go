// Package cmd wires the gridpick plugin commands. Every command is the same
// thin sequence: query the host model, open the selection grid, apply a
// transaction over the rows the user confirmed.
package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bkanis/gridpick/internal/config"
)

// errCancelled marks a user-cancelled picker so Execute can exit quietly
// with a distinct code instead of printing an error.
var errCancelled = errors.New("cancelled")

// cfg is loaded once in the root PersistentPreRunE and read by subcommands.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "gridpick",
	Short:         "pick model elements from a filterable selection grid",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetString("model"); p != "" {
			cfg.Model.Path = p
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))
		return nil
	},
}

// Execute runs the root command. Cancelling a picker exits 1; other errors
// exit 2 after being reported.
func Execute() int {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCancelled):
		return 1
	default:
		rootCmd.PrintErrln("gridpick:", err)
		return 2
	}
}

func init() {
	rootCmd.PersistentFlags().String("model", "", "model database path (overrides config)")
	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}
