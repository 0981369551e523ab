package ontology

import (
	"fmt"
	"strings"
)

// Issue codes reported by Lint.
const (
	IssueNameMismatch       = "name_mismatch"
	IssueDuplicateAttribute = "duplicate_attribute"
	IssueInvalidKind        = "invalid_kind"
	IssueEntityUndeclared   = "entity_type_undeclared"
	IssueEdgeUndeclared     = "edge_type_undeclared"
	IssueWildcardSource     = "wildcard_source"
	IssueEmptyEdgeList      = "empty_edge_list"
)

// Issue describes one problem found while linting an ontology.
type Issue struct {
	Code    string `json:"code"`
	Where   string `json:"where"`
	Message string `json:"message"`
}

// Lint checks the ontology's internal references and returns every issue
// found, in deterministic order. An empty result means the ontology is
// well-formed.
//
// Checks:
//   - map keys match descriptor names
//   - attribute names are unique within a type and kinds are recognized
//   - every edge-type name in a compatibility list is declared
//   - every entity-type name in a compatibility key is declared, with
//     Wildcard allowed on the target side only
//   - no compatibility list is empty
func (o *Ontology) Lint() []Issue {
	var issues []Issue

	for _, name := range o.EntityTypeNames() {
		t := o.EntityTypes[name]
		if t.Name != name {
			issues = append(issues, Issue{
				Code:    IssueNameMismatch,
				Where:   "entity " + name,
				Message: fmt.Sprintf("registered as %q but declares name %q", name, t.Name),
			})
		}
		issues = append(issues, lintAttributes("entity "+name, t.Attributes)...)
	}

	for _, name := range o.EdgeTypeNames() {
		t := o.EdgeTypes[name]
		if t.Name != name {
			issues = append(issues, Issue{
				Code:    IssueNameMismatch,
				Where:   "edge " + name,
				Message: fmt.Sprintf("registered as %q but declares name %q", name, t.Name),
			})
		}
		issues = append(issues, lintAttributes("edge "+name, t.Attributes)...)
	}

	for _, key := range o.EdgeKeys() {
		where := fmt.Sprintf("pair (%s, %s)", key.Source, key.Target)

		if key.Source == Wildcard {
			issues = append(issues, Issue{
				Code:    IssueWildcardSource,
				Where:   where,
				Message: "wildcard is only valid as the target of a pair",
			})
		} else if _, ok := o.EntityTypes[key.Source]; !ok {
			issues = append(issues, Issue{
				Code:    IssueEntityUndeclared,
				Where:   where,
				Message: fmt.Sprintf("source entity type %q is not declared", key.Source),
			})
		}

		if _, ok := o.EntityTypes[key.Target]; !ok && key.Target != Wildcard {
			issues = append(issues, Issue{
				Code:    IssueEntityUndeclared,
				Where:   where,
				Message: fmt.Sprintf("target entity type %q is not declared", key.Target),
			})
		}

		names := o.EdgeMap[key]
		if len(names) == 0 {
			issues = append(issues, Issue{
				Code:    IssueEmptyEdgeList,
				Where:   where,
				Message: "permitted edge-type list is empty",
			})
		}
		for _, edgeName := range names {
			if _, ok := o.EdgeTypes[edgeName]; !ok {
				issues = append(issues, Issue{
					Code:    IssueEdgeUndeclared,
					Where:   where,
					Message: fmt.Sprintf("edge type %q is not declared", edgeName),
				})
			}
		}
	}

	return issues
}

// lintAttributes checks one type's attribute list for duplicate names and
// unrecognized value kinds.
func lintAttributes(where string, attrs []Attribute) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(attrs))
	for _, attr := range attrs {
		if seen[attr.Name] {
			issues = append(issues, Issue{
				Code:    IssueDuplicateAttribute,
				Where:   where,
				Message: fmt.Sprintf("duplicate attribute name %q", attr.Name),
			})
		}
		seen[attr.Name] = true

		if !IsValidKind(attr.Kind) {
			issues = append(issues, Issue{
				Code:    IssueInvalidKind,
				Where:   where,
				Message: fmt.Sprintf("attribute %q has unrecognized kind %q", attr.Name, attr.Kind),
			})
		}
	}
	return issues
}

// Validate runs Lint and returns a single error listing every issue, or
// nil when the ontology is well-formed.
func (o *Ontology) Validate() error {
	issues := o.Lint()
	if len(issues) == 0 {
		return nil
	}
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = fmt.Sprintf("%s: %s", issue.Where, issue.Message)
	}
	return fmt.Errorf("ontology validation failed:\n%s", strings.Join(msgs, "\n"))
}
