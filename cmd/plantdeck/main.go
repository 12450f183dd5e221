// Plantdeck browses the house-plants catalog from the terminal.
//
// Running without arguments opens the interactive browser: pick a category
// and its plants appear as cards. The subcommands print the same data for
// scripts.
//
// Usage:
//
//	plantdeck [command] [flags]
//
// The catalog is served through RapidAPI; set PLANTDECK_API_KEY (or
// RAPIDAPI_KEY) or run 'plantdeck config init' to store a key.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/muurk/plantdeck/internal/logging"
	"github.com/muurk/plantdeck/internal/ui"
	"github.com/muurk/plantdeck/internal/urls"
	"github.com/muurk/plantdeck/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "plantdeck",
	Short: "House plant catalog browser",
	Long: `Browse the house-plants catalog by category.

Without a command, plantdeck opens the interactive browser. Use the
categories and plants commands for plain or machine-readable output.

Report problems at ` + urls.Issues,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Args:              cobra.NoArgs,
	RunE:              runBrowse,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{annotationSkipConfig: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat()
		if err != nil {
			return err
		}
		if format == ui.FormatText {
			fmt.Fprintf(cmd.OutOrStdout(), "plantdeck %s\n", version.Full())
			return nil
		}
		return encode(cmd, format, version.Get())
	},
}
