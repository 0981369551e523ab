// Compat command queries the compatibility map.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Contextable/graphiti/pkg/ontology/travel"
)

var compatCmd = &cobra.Command{
	Use:   "compat [source target]",
	Short: "Show permitted edge types between entity-type pairs",
	Long: `Compat lists every compatibility-map entry, or the edge types
permitted from one source entity type to one target entity type.

Pairs are ordered: "compat Flight Trip" and "compat Trip Flight" are
different queries. When the exact pair has no entry, the source's wildcard
("Entity") entry applies if one exists.

Example:
  ontology compat
  ontology compat Flight Airport
  ontology compat Flight TravelAgency`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts no args or exactly 2 args (source target), received %d", len(args))
		}
		return nil
	},
	RunE: runCompat,
}

func runCompat(cmd *cobra.Command, args []string) error {
	o := travel.Ontology()

	if len(args) == 0 {
		for _, key := range o.EdgeKeys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %s\n",
				key.Source, key.Target, strings.Join(o.EdgeMap[key], ", "))
		}
		return nil
	}

	names, err := o.EdgeTypesBetween(args[0], args[1])
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
