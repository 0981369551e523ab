package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command in-process with an isolated config dir
// and returns everything written to its output streams.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag values are package globals; reset them between runs.
	flagExportFormat = ""
	flagExportOut = ""

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestEntitiesList(t *testing.T) {
	out, err := runCLI(t, "entities")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 16)
	assert.Contains(t, lines, "Flight")
	assert.Contains(t, lines, "LoyaltyProgram")
}

func TestEntitiesShow(t *testing.T) {
	out, err := runCLI(t, "entities", "Flight")
	require.NoError(t, err)
	assert.Contains(t, out, `"airline_code"`)
	assert.Contains(t, out, `"record_locator"`)

	_, err = runCLI(t, "entities", "Spaceship")
	assert.Error(t, err)
}

func TestEdgesList(t *testing.T) {
	out, err := runCLI(t, "edges")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 14)
	assert.Contains(t, lines, "PART_OF_TRIP")
}

func TestCompatPair(t *testing.T) {
	out, err := runCLI(t, "compat", "Flight", "Airport")
	require.NoError(t, err)
	assert.Equal(t, "DEPARTS_FROM\nARRIVES_AT\n", out)
}

func TestCompatWildcardFallback(t *testing.T) {
	out, err := runCLI(t, "compat", "Lodging", "TravelAgency")
	require.NoError(t, err)
	assert.Equal(t, "BOOKED_WITH\n", out)
}

func TestCompatRejectsSingleArg(t *testing.T) {
	_, err := runCLI(t, "compat", "Flight")
	assert.Error(t, err)
}

func TestLintBuiltin(t *testing.T) {
	out, err := runCLI(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 16 entity types, 14 edge types, 48 pairs")
}

func TestLintBrokenDocument(t *testing.T) {
	doc := `{
  "entity_types": [{"name": "Flight"}],
  "edge_types": [],
  "edge_type_map": [
    {"source": "Flight", "target": "Trip", "edge_types": ["PART_OF_TRIP"]}
  ]
}`
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := runCLI(t, "lint", path)
	require.Error(t, err)
	assert.Contains(t, out, `target entity type "Trip" is not declared`)
	assert.Contains(t, out, `edge type "PART_OF_TRIP" is not declared`)
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")

	_, err := runCLI(t, "export", "--format", "yaml", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "entity_types:")
	assert.Contains(t, string(data), "edge_type_map:")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "export", "--format", "toml")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ontology "+version)
}
