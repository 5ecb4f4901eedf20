package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wavelint/wavelint"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wavelint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wavelint version %s\n", wavelint.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
