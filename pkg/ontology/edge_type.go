package ontology

// EdgeType describes a category of typed edge the graph engine may
// instantiate between two nodes. Structurally identical to an EntityType;
// its attributes qualify the relationship rather than a node. Direction is
// implied by the compatibility map, not by the edge type itself.
type EdgeType struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Attributes  []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Attribute returns the attribute with the given name, or nil if the type
// does not declare it.
func (t *EdgeType) Attribute(name string) *Attribute {
	for i := range t.Attributes {
		if t.Attributes[i].Name == name {
			return &t.Attributes[i]
		}
	}
	return nil
}
