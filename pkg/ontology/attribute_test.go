package ontology

import "testing"

func TestIsValidKind(t *testing.T) {
	valid := []string{KindString, KindBoolean, KindFloat}
	for _, kind := range valid {
		if !IsValidKind(kind) {
			t.Errorf("IsValidKind(%q) = false, want true", kind)
		}
	}
	invalid := []string{"", "int", "integer", "bool", "String", "list"}
	for _, kind := range invalid {
		if IsValidKind(kind) {
			t.Errorf("IsValidKind(%q) = true, want false", kind)
		}
	}
}

func TestEntityTypeAttribute(t *testing.T) {
	et := &EntityType{
		Name: "Airport",
		Attributes: []Attribute{
			{Name: "iata_code", Kind: KindString},
			{Name: "latitude", Kind: KindFloat},
		},
	}

	attr := et.Attribute("latitude")
	if attr == nil {
		t.Fatal("Attribute(latitude) = nil, want attribute")
	}
	if attr.Kind != KindFloat {
		t.Errorf("Attribute(latitude).Kind = %q, want %q", attr.Kind, KindFloat)
	}

	if got := et.Attribute("runways"); got != nil {
		t.Errorf("Attribute(runways) = %v, want nil", got)
	}
}

func TestEdgeTypeAttribute(t *testing.T) {
	et := &EdgeType{
		Name: "DEPARTS_FROM",
		Attributes: []Attribute{
			{Name: "terminal", Kind: KindString},
		},
	}

	if attr := et.Attribute("terminal"); attr == nil {
		t.Fatal("Attribute(terminal) = nil, want attribute")
	}
	if got := et.Attribute("gate"); got != nil {
		t.Errorf("Attribute(gate) = %v, want nil", got)
	}
}
