// Shared helpers for ontology CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Contextable/graphiti/internal/export"
)

// printJSON writes v to the command's output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// detectFormat maps a file extension to an export format.
func detectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return export.FormatJSON, nil
	case ".yaml", ".yml":
		return export.FormatYAML, nil
	default:
		return "", fmt.Errorf("cannot detect format of %q (expected .json, .yaml, or .yml)", path)
	}
}
