// Package travel declares the travel-domain ontology derived from the
// TripIt API v1 data model: sixteen entity types covering reservations and
// activities, travelers, locations, and organizations; fourteen edge types;
// and the compatibility map restricting which edge types may connect which
// ordered entity-type pairs.
//
// The tables are package-level constants in effect: built once at
// initialization, never mutated, and safe for concurrent use. They are
// intended to be handed to a graph-construction engine at configuration
// time; entity shapes guide structured extraction, and the compatibility
// map constrains which relationships the engine may create between nodes.
package travel
