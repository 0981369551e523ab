package ontology

// Wildcard is the target name meaning "any entity type". It is valid only
// on the target side of an EdgeKey and is used for edge types that apply
// broadly rather than to one fixed target, such as booking provenance.
const Wildcard = "Entity"

// EdgeKey is an ordered (source, target) pair of entity-type names.
// Ordering matters: (Flight, Trip) and (Trip, Flight) are distinct keys.
type EdgeKey struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// EdgeTypeMap lists the permitted edge-type names for each ordered
// entity-type pair. Values keep authoring order and are never empty.
type EdgeTypeMap map[EdgeKey][]string
