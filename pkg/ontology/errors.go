package ontology

import "errors"

// Lookup errors.
var (
	ErrEntityTypeNotFound = errors.New("entity type not found")
	ErrEdgeTypeNotFound   = errors.New("edge type not found")
	ErrNoEdgeTypes        = errors.New("no edge types permitted for pair")
)
