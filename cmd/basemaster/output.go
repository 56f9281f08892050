package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/basemaster/internal/ui"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var outputFormat string

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "output", "o", formatText, "Output format (text, json, yaml)")
}

func checkOutputFormat() error {
	switch outputFormat {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (use text, json or yaml)", outputFormat)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, v any) error {
	if outputFormat == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newPrinter(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), ui.NewPalette(cfg.Theme))
}

// commandLine rebuilds the invocation for header boxes.
func commandLine(cmd *cobra.Command, args []string) string {
	parts := append([]string{cmd.CommandPath()}, args...)
	return strings.Join(parts, " ")
}
