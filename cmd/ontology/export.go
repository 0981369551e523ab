// Export command writes the engine handoff document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Contextable/graphiti/internal/export"
	"github.com/Contextable/graphiti/pkg/ontology/travel"
)

// Export flag values.
var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the schema for a graph-construction engine",
	Long: `Export serializes the travel ontology (entity types, edge types,
and compatibility map) as a single document a graph-construction engine can
consume at configuration time. Output is deterministic: types are sorted by
name and map entries by source, then target.

Example:
  ontology export
  ontology export --format yaml
  ontology export --format json --out schema.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "", "output format: json or yaml (default from config)")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := flagExportFormat
	if format == "" {
		format = configFormat
	}
	if !export.IsValidFormat(format) {
		return fmt.Errorf("%w: %q (valid: json, yaml)", export.ErrUnknownFormat, format)
	}

	data, err := export.Render(travel.Ontology(), format)
	if err != nil {
		return err
	}

	if flagExportOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
