// Lint command checks ontology cross-references.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Contextable/graphiti/internal/export"
	"github.com/Contextable/graphiti/pkg/ontology"
	"github.com/Contextable/graphiti/pkg/ontology/travel"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check ontology references",
	Long: `Lint checks that every name an ontology references is declared:
edge types in compatibility lists, entity types in compatibility keys
(wildcard targets excepted), attribute kinds, and attribute uniqueness.

With no argument it lints the built-in travel ontology. With a file
argument it lints an exported schema document (.json, .yaml, or .yml),
which is how hand-edited engine configurations are checked before use.

Example:
  ontology lint
  ontology lint schema.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	o := travel.Ontology()

	if len(args) == 1 {
		loaded, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		o = loaded
	}

	issues := o.Lint()
	if len(issues) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d entity types, %d edge types, %d pairs\n",
			len(o.EntityTypes), len(o.EdgeTypes), len(o.EdgeMap))
		return nil
	}

	for _, issue := range issues {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", issue.Where, issue.Message, issue.Code)
	}
	return fmt.Errorf("%d lint issue(s) found", len(issues))
}

// loadDocument reads and parses a schema document into an ontology.
func loadDocument(path string) (*ontology.Ontology, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := export.Parse(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Ontology(), nil
}
