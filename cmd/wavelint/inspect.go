package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wavelint/wavelint"
	"github.com/wavelint/wavelint/pkg/diagram"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file-or-source>",
	Short: "Show a WaveDrom source's kind, keys, and attributes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		if err := runInspect(cmd, args[0], format); err != nil {
			fmt.Fprintf(os.Stderr, "Inspect failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	inspectCmd.Flags().String("format", "text", "Output format: text, json, or yaml")
	rootCmd.AddCommand(inspectCmd)
}

// report is the shape inspect prints; tagged for both encoders.
type report struct {
	Kind    diagram.Kind `json:"kind" yaml:"kind"`
	Keys    []string     `json:"keys" yaml:"keys"`
	Entries int          `json:"entries" yaml:"entries"`
	Config  any          `json:"config" yaml:"config"`
	Head    any          `json:"head" yaml:"head"`
	Foot    any          `json:"foot" yaml:"foot"`
}

func runInspect(cmd *cobra.Command, input, format string) error {
	log := logger(cmd)

	project, err := wavelint.New(input)
	if err != nil {
		return describeFailure(err)
	}
	log.Debug("classified", "kind", project.Kind)

	return writeReport(os.Stdout, buildReport(project), format)
}

func buildReport(project *wavelint.Project) report {
	return report{
		Kind:    project.Kind,
		Keys:    project.Keys(),
		Entries: len(project.Entries()),
		Config:  project.Config,
		Head:    project.Head,
		Foot:    project.Foot,
	}
}

func writeReport(w io.Writer, r report, format string) error {
	switch format {
	case "text":
		fmt.Fprintf(w, "kind:    %s\n", r.Kind)
		fmt.Fprintf(w, "keys:    %v\n", r.Keys)
		fmt.Fprintf(w, "entries: %d\n", r.Entries)
		fmt.Fprintf(w, "config:  %v\n", r.Config)
		fmt.Fprintf(w, "head:    %v\n", r.Head)
		fmt.Fprintf(w, "foot:    %v\n", r.Foot)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}
}
