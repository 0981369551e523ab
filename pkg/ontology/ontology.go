package ontology

import (
	"fmt"
	"sort"
)

// Ontology bundles the three configuration tables handed to the graph
// engine: entity types keyed by name, edge types keyed by name, and the
// compatibility map keyed by ordered entity-type pair.
//
// All three tables are built once and never mutated afterward, so an
// Ontology is safe for unrestricted concurrent reads.
type Ontology struct {
	EntityTypes map[string]*EntityType
	EdgeTypes   map[string]*EdgeType
	EdgeMap     EdgeTypeMap
}

// EntityType returns the entity type with the given name.
// Returns ErrEntityTypeNotFound if the name is not declared.
func (o *Ontology) EntityType(name string) (*EntityType, error) {
	t, ok := o.EntityTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEntityTypeNotFound, name)
	}
	return t, nil
}

// EdgeType returns the edge type with the given name.
// Returns ErrEdgeTypeNotFound if the name is not declared.
func (o *Ontology) EdgeType(name string) (*EdgeType, error) {
	t, ok := o.EdgeTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEdgeTypeNotFound, name)
	}
	return t, nil
}

// EdgeTypesBetween returns the edge-type names permitted from source to
// target, in authoring order. When the exact pair has no entry, the
// (source, Wildcard) entry applies, so wildcard edge types cover targets
// the map never enumerates. Returns ErrNoEdgeTypes when neither entry
// exists.
func (o *Ontology) EdgeTypesBetween(source, target string) ([]string, error) {
	if names, ok := o.EdgeMap[EdgeKey{Source: source, Target: target}]; ok {
		return names, nil
	}
	if names, ok := o.EdgeMap[EdgeKey{Source: source, Target: Wildcard}]; ok {
		return names, nil
	}
	return nil, fmt.Errorf("%w: (%s, %s)", ErrNoEdgeTypes, source, target)
}

// EntityTypeNames returns all declared entity-type names, sorted.
func (o *Ontology) EntityTypeNames() []string {
	names := make([]string, 0, len(o.EntityTypes))
	for name := range o.EntityTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EdgeTypeNames returns all declared edge-type names, sorted.
func (o *Ontology) EdgeTypeNames() []string {
	names := make([]string, 0, len(o.EdgeTypes))
	for name := range o.EdgeTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EdgeKeys returns the compatibility-map keys sorted by source, then target.
func (o *Ontology) EdgeKeys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(o.EdgeMap))
	for key := range o.EdgeMap {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Source != keys[j].Source {
			return keys[i].Source < keys[j].Source
		}
		return keys[i].Target < keys[j].Target
	})
	return keys
}
