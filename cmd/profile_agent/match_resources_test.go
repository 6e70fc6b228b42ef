package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachsmart/profile-engine/internal/types"
)

func resetMatchFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		matchProfileFile = ""
		matchCatalogFile = ""
		matchOutputFile = ""
		matchMaxResults = 0
		matchConfigFile = ""
		matchVerbose = false
	})
}

// deriveProfileFile runs derive-profile end to end and returns the written
// profile path, so match tests exercise real derived profiles.
func deriveProfileFile(t *testing.T, dir string, record string) string {
	t.Helper()
	resetDeriveFlags(t)

	recordPath := filepath.Join(dir, "record.json")
	require.NoError(t, os.WriteFile(recordPath, []byte(record), 0644))

	profilePath := filepath.Join(dir, "profile.json")
	deriveInputFile = recordPath
	deriveOutputFile = profilePath
	require.NoError(t, runDeriveProfile(nil, nil))
	return profilePath
}

func TestMatchResourcesCommand_RanksCatalog(t *testing.T) {
	resetMatchFlags(t)
	tmpDir := t.TempDir()

	profilePath := deriveProfileFile(t, tmpDir, `{"age": 5, "communication": 1, "sensory_sensitivity": 3}`)

	catalogPath := filepath.Join(tmpDir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`
resources:
  - id: cards-1
    title: Emotion Cards
    tags: [support-medium, comm-visual]
    format: cards
    visual_support: true
  - id: sheet-1
    title: Reading Worksheet
    format: worksheet
    text_level: age-appropriate
`), 0644))

	matchProfileFile = profilePath
	matchCatalogFile = catalogPath
	matchOutputFile = filepath.Join(tmpDir, "matches.json")

	require.NoError(t, runMatchResources(nil, nil))

	content, err := os.ReadFile(matchOutputFile)
	require.NoError(t, err)

	var results []types.MatchResult
	require.NoError(t, json.Unmarshal(content, &results))
	require.Len(t, results, 2)

	// The visual cards resource outranks the plain worksheet.
	assert.Equal(t, "cards-1", results[0].Resource.ID)
	assert.Greater(t, results[0].MatchScore, results[1].MatchScore)
}

func TestMatchResourcesCommand_MaxResults(t *testing.T) {
	resetMatchFlags(t)
	tmpDir := t.TempDir()

	profilePath := deriveProfileFile(t, tmpDir, `{"age": 9}`)

	catalogPath := filepath.Join(tmpDir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`{
		"resources": [
			{"id": "r1", "format": "cards"},
			{"id": "r2", "format": "game"},
			{"id": "r3", "format": "worksheet"}
		]
	}`), 0644))

	matchProfileFile = profilePath
	matchCatalogFile = catalogPath
	matchOutputFile = filepath.Join(tmpDir, "matches.json")
	matchMaxResults = 2

	require.NoError(t, runMatchResources(nil, nil))

	content, err := os.ReadFile(matchOutputFile)
	require.NoError(t, err)

	var results []types.MatchResult
	require.NoError(t, json.Unmarshal(content, &results))
	assert.Len(t, results, 2)
}

func TestMatchResourcesCommand_MissingCatalog(t *testing.T) {
	resetMatchFlags(t)
	tmpDir := t.TempDir()

	matchProfileFile = deriveProfileFile(t, tmpDir, `{"age": 9}`)

	err := runMatchResources(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog is required")
}

func TestMatchResourcesCommand_InvalidProfileFile(t *testing.T) {
	resetMatchFlags(t)
	tmpDir := t.TempDir()

	profilePath := filepath.Join(tmpDir, "profile.json")
	require.NoError(t, os.WriteFile(profilePath, []byte("{ not json"), 0644))

	catalogPath := filepath.Join(tmpDir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`{"resources": []}`), 0644))

	matchProfileFile = profilePath
	matchCatalogFile = catalogPath

	err := runMatchResources(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal profile JSON")
}
