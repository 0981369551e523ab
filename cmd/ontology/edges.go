// Edges command lists edge types or shows one type's shape.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Contextable/graphiti/pkg/ontology/travel"
)

var edgesCmd = &cobra.Command{
	Use:   "edges [name]",
	Short: "List edge types or show one",
	Long: `Edges lists the declared edge-type names, or shows one edge type's
shape (description and attributes) as JSON.

Example:
  ontology edges
  ontology edges DEPARTS_FROM`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdges,
}

func runEdges(cmd *cobra.Command, args []string) error {
	o := travel.Ontology()

	if len(args) == 0 {
		for _, name := range o.EdgeTypeNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	t, err := o.EdgeType(args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, t)
}
