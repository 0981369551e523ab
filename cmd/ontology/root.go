// Root command for the ontology CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/Contextable/graphiti/internal/paths"
)

// Global flag values.
var flagConfigDir string

// configFormat holds the default export format loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configFormat string

var rootCmd = &cobra.Command{
	Use:   "ontology",
	Short: "Ontology inspects the travel knowledge-graph schema",
	Long: `Ontology is a read-only tool over the travel knowledge-graph schema:
the entity types, edge types, and compatibility map handed to a
graph-construction engine at configuration time. It lists and shows type
shapes, queries which edge types are permitted between a pair of entity
types, lints schema documents, and exports the schema as JSON or YAML.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configFormat = cfg.GetString(cfgKeyFormat)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(entitiesCmd)
	rootCmd.AddCommand(edgesCmd)
	rootCmd.AddCommand(compatCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > GRAPHITI_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
