// Package ontology defines the shape-descriptor model for knowledge-graph
// configuration: entity types (node categories), edge types (relationship
// categories), and the compatibility map restricting which edge types may
// connect which ordered entity-type pairs.
package ontology
