package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wavelint/wavelint/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "wavelint",
	Short: "wavelint validates WaveDrom diagram sources",
	Long: `wavelint loads a WaveDrom source (a .json5/.json file or the document
text itself), parses it as JSON5, and reports the diagram kind and its
optional attributes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")
}

// logger builds the command logger from the persistent flags.
func logger(cmd *cobra.Command) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
