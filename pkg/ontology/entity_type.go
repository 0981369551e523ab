package ontology

// EntityType describes a category of node the graph engine may instantiate
// from extracted data: a named shape with a human-readable summary and zero
// or more optional attributes.
type EntityType struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Attributes  []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Attribute returns the attribute with the given name, or nil if the type
// does not declare it.
func (t *EntityType) Attribute(name string) *Attribute {
	for i := range t.Attributes {
		if t.Attributes[i].Name == name {
			return &t.Attributes[i]
		}
	}
	return nil
}
