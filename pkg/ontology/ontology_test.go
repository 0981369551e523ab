package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOntology builds a small well-formed ontology for lookup tests.
func testOntology() *Ontology {
	return &Ontology{
		EntityTypes: map[string]*EntityType{
			"Ship": {Name: "Ship", Attributes: []Attribute{
				{Name: "name", Kind: KindString},
			}},
			"Port": {Name: "Port"},
		},
		EdgeTypes: map[string]*EdgeType{
			"DOCKS_AT":    {Name: "DOCKS_AT"},
			"REGISTERED":  {Name: "REGISTERED"},
			"BOOKED_WITH": {Name: "BOOKED_WITH"},
		},
		EdgeMap: EdgeTypeMap{
			{Source: "Ship", Target: "Port"}:   {"DOCKS_AT", "REGISTERED"},
			{Source: "Ship", Target: Wildcard}: {"BOOKED_WITH"},
		},
	}
}

func TestOntologyEntityType(t *testing.T) {
	o := testOntology()

	et, err := o.EntityType("Ship")
	require.NoError(t, err)
	assert.Equal(t, "Ship", et.Name)

	_, err = o.EntityType("Submarine")
	assert.ErrorIs(t, err, ErrEntityTypeNotFound)
}

func TestOntologyEdgeType(t *testing.T) {
	o := testOntology()

	et, err := o.EdgeType("DOCKS_AT")
	require.NoError(t, err)
	assert.Equal(t, "DOCKS_AT", et.Name)

	_, err = o.EdgeType("SAILS_TO")
	assert.ErrorIs(t, err, ErrEdgeTypeNotFound)
}

func TestOntologyEdgeTypesBetween(t *testing.T) {
	o := testOntology()

	tests := []struct {
		name    string
		source  string
		target  string
		want    []string
		wantErr error
	}{
		{
			name:   "exact pair",
			source: "Ship",
			target: "Port",
			want:   []string{"DOCKS_AT", "REGISTERED"},
		},
		{
			name:   "wildcard fallback for undeclared target",
			source: "Ship",
			target: "Agency",
			want:   []string{"BOOKED_WITH"},
		},
		{
			name:    "no entry and no wildcard",
			source:  "Port",
			target:  "Ship",
			wantErr: ErrNoEdgeTypes,
		},
		{
			name:    "order matters",
			source:  "Port",
			target:  "Port",
			wantErr: ErrNoEdgeTypes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.EdgeTypesBetween(tt.source, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOntologyNamesSorted(t *testing.T) {
	o := testOntology()

	assert.Equal(t, []string{"Port", "Ship"}, o.EntityTypeNames())
	assert.Equal(t, []string{"BOOKED_WITH", "DOCKS_AT", "REGISTERED"}, o.EdgeTypeNames())
}

func TestOntologyEdgeKeysSorted(t *testing.T) {
	o := testOntology()
	o.EdgeMap[EdgeKey{Source: "Port", Target: "Ship"}] = []string{"DOCKS_AT"}

	keys := o.EdgeKeys()
	require.Len(t, keys, 3)
	assert.Equal(t, EdgeKey{Source: "Port", Target: "Ship"}, keys[0])
	assert.Equal(t, EdgeKey{Source: "Ship", Target: Wildcard}, keys[1])
	assert.Equal(t, EdgeKey{Source: "Ship", Target: "Port"}, keys[2])
}
