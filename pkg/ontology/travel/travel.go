package travel

import "github.com/Contextable/graphiti/pkg/ontology"

// travelOntology aggregates the package tables. Built once; nothing in
// this package or its callers mutates it.
var travelOntology = ontology.Ontology{
	EntityTypes: EntityTypes,
	EdgeTypes:   EdgeTypes,
	EdgeMap:     EdgeTypeMap,
}

// Ontology returns the assembled travel ontology. The returned value shares
// the package tables; callers must treat it as read-only.
func Ontology() *ontology.Ontology {
	return &travelOntology
}
