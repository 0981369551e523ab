// Package export renders an ontology to the JSON or YAML document handed
// to graph-construction engines outside this module, and parses such
// documents back for linting. Output ordering is deterministic so exported
// documents diff cleanly across runs.
package export

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Contextable/graphiti/pkg/ontology"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown export format")

// Document is the serialized form of an ontology. The compatibility map is
// flattened to a list of entries because composite map keys do not
// serialize portably to JSON or YAML.
type Document struct {
	EntityTypes []ontology.EntityType `json:"entity_types" yaml:"entity_types"`
	EdgeTypes   []ontology.EdgeType   `json:"edge_types" yaml:"edge_types"`
	EdgeTypeMap []MapEntry            `json:"edge_type_map" yaml:"edge_type_map"`
}

// MapEntry is one flattened compatibility-map row.
type MapEntry struct {
	Source    string   `json:"source" yaml:"source"`
	Target    string   `json:"target" yaml:"target"`
	EdgeTypes []string `json:"edge_types" yaml:"edge_types"`
}

// NewDocument flattens an ontology into its serialized form. Types are
// sorted by name and map entries by (source, target); edge-type lists keep
// their authoring order.
func NewDocument(o *ontology.Ontology) *Document {
	doc := &Document{}

	for _, name := range o.EntityTypeNames() {
		doc.EntityTypes = append(doc.EntityTypes, *o.EntityTypes[name])
	}
	for _, name := range o.EdgeTypeNames() {
		doc.EdgeTypes = append(doc.EdgeTypes, *o.EdgeTypes[name])
	}
	for _, key := range o.EdgeKeys() {
		doc.EdgeTypeMap = append(doc.EdgeTypeMap, MapEntry{
			Source:    key.Source,
			Target:    key.Target,
			EdgeTypes: o.EdgeMap[key],
		})
	}

	return doc
}

// Ontology rebuilds the three lookup tables from a parsed document.
func (d *Document) Ontology() *ontology.Ontology {
	o := &ontology.Ontology{
		EntityTypes: make(map[string]*ontology.EntityType, len(d.EntityTypes)),
		EdgeTypes:   make(map[string]*ontology.EdgeType, len(d.EdgeTypes)),
		EdgeMap:     make(ontology.EdgeTypeMap, len(d.EdgeTypeMap)),
	}
	for i := range d.EntityTypes {
		o.EntityTypes[d.EntityTypes[i].Name] = &d.EntityTypes[i]
	}
	for i := range d.EdgeTypes {
		o.EdgeTypes[d.EdgeTypes[i].Name] = &d.EdgeTypes[i]
	}
	for _, entry := range d.EdgeTypeMap {
		key := ontology.EdgeKey{Source: entry.Source, Target: entry.Target}
		o.EdgeMap[key] = entry.EdgeTypes
	}
	return o
}

// Render serializes the ontology in the given format.
func Render(o *ontology.Ontology, format string) ([]byte, error) {
	doc := NewDocument(o)

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal ontology: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal ontology: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Parse decodes a serialized ontology document in the given format.
func Parse(data []byte, format string) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal ontology: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal ontology: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &doc, nil
}

// IsValidFormat reports whether the given string names a supported format.
func IsValidFormat(format string) bool {
	return format == FormatJSON || format == FormatYAML
}
