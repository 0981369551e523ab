package ontology

// Attribute value kinds determine what values an attribute accepts.
const (
	KindString  = "string"
	KindBoolean = "boolean"
	KindFloat   = "float"
)

// validKinds is the set of recognized attribute value kinds.
var validKinds = map[string]bool{
	KindString:  true,
	KindBoolean: true,
	KindFloat:   true,
}

// Attribute describes one optional, documented field of an entity or edge
// type. Every attribute is optional; the model has no notion of a required
// field, so a shape instance with no attributes set is valid.
type Attribute struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Description string `json:"description" yaml:"description"`
}

// IsValidKind reports whether the given string is a recognized value kind.
func IsValidKind(kind string) bool {
	return validKinds[kind]
}
