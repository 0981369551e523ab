package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contextable/graphiti/pkg/ontology"
	"github.com/Contextable/graphiti/pkg/ontology/travel"
)

func TestNewDocumentOrdering(t *testing.T) {
	doc := NewDocument(travel.Ontology())

	require.Len(t, doc.EntityTypes, 16)
	require.Len(t, doc.EdgeTypes, 14)
	require.Len(t, doc.EdgeTypeMap, 48)

	for i := 1; i < len(doc.EntityTypes); i++ {
		assert.Less(t, doc.EntityTypes[i-1].Name, doc.EntityTypes[i].Name)
	}
	for i := 1; i < len(doc.EdgeTypes); i++ {
		assert.Less(t, doc.EdgeTypes[i-1].Name, doc.EdgeTypes[i].Name)
	}
	for i := 1; i < len(doc.EdgeTypeMap); i++ {
		prev, cur := doc.EdgeTypeMap[i-1], doc.EdgeTypeMap[i]
		if prev.Source == cur.Source {
			assert.Less(t, prev.Target, cur.Target)
		} else {
			assert.Less(t, prev.Source, cur.Source)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			first, err := Render(travel.Ontology(), format)
			require.NoError(t, err)

			second, err := Render(travel.Ontology(), format)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(travel.Ontology(), "toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderParseRoundTrip(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			data, err := Render(travel.Ontology(), format)
			require.NoError(t, err)

			doc, err := Parse(data, format)
			require.NoError(t, err)

			o := doc.Ontology()
			assert.Len(t, o.EntityTypes, 16)
			assert.Len(t, o.EdgeTypes, 14)
			assert.Len(t, o.EdgeMap, 48)
			assert.Empty(t, o.Lint())

			names, err := o.EdgeTypesBetween(travel.TypeCruise, travel.TypeVenue)
			require.NoError(t, err)
			assert.Equal(t, []string{travel.EdgeDepartsFrom, travel.EdgeArrivesAt, travel.EdgePortOfCall}, names)
		})
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("{not json"), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("ok"), "toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderedJSONShape(t *testing.T) {
	data, err := Render(travel.Ontology(), FormatJSON)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "entity_types")
	assert.Contains(t, raw, "edge_types")
	assert.Contains(t, raw, "edge_type_map")
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat(FormatJSON))
	assert.True(t, IsValidFormat(FormatYAML))
	assert.False(t, IsValidFormat(""))
	assert.False(t, IsValidFormat("yml"))
}

func TestDocumentOntologyPreservesWildcardRows(t *testing.T) {
	doc := &Document{
		EntityTypes: []ontology.EntityType{{Name: "Flight"}},
		EdgeTypes:   []ontology.EdgeType{{Name: "BOOKED_WITH"}},
		EdgeTypeMap: []MapEntry{
			{Source: "Flight", Target: ontology.Wildcard, EdgeTypes: []string{"BOOKED_WITH"}},
		},
	}

	o := doc.Ontology()
	names, err := o.EdgeTypesBetween("Flight", "Expedia")
	require.NoError(t, err)
	assert.Equal(t, []string{"BOOKED_WITH"}, names)
}
