// Entities command lists entity types or shows one type's shape.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Contextable/graphiti/pkg/ontology/travel"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities [name]",
	Short: "List entity types or show one",
	Long: `Entities lists the declared entity-type names, or shows one entity
type's shape (description and attributes) as JSON.

Example:
  ontology entities
  ontology entities Flight`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEntities,
}

func runEntities(cmd *cobra.Command, args []string) error {
	o := travel.Ontology()

	if len(args) == 0 {
		for _, name := range o.EntityTypeNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	t, err := o.EntityType(args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, t)
}
