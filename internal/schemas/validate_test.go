package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachsmart/profile-engine/internal/normalize"
	"github.com/teachsmart/profile-engine/internal/profile"
	"github.com/teachsmart/profile-engine/internal/types"
)

func deriveProfileJSON(t *testing.T, raw types.RawRecord) []byte {
	t.Helper()
	rec, err := normalize.Normalize(raw)
	require.NoError(t, err)
	p := profile.Synthesize(rec, types.SourceManual)
	p.ID = "test-profile"
	p.CreatedAt = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	data, err := json.Marshal(p)
	require.NoError(t, err)
	return data
}

func TestValidateProfile_DerivedProfilePasses(t *testing.T) {
	data := deriveProfileJSON(t, types.RawRecord{
		"age":                  5.0,
		"communication":        1.0,
		"social_interaction":   2.0,
		"repetitive_behaviors": 3.0,
		"sensory_sensitivity":  5.0,
	})

	assert.NoError(t, ValidateProfile(data))
}

func TestValidateProfile_SparseRecordStillPasses(t *testing.T) {
	data := deriveProfileJSON(t, types.RawRecord{"age": 12.0})

	assert.NoError(t, ValidateProfile(data))
}

func TestValidateProfile_MissingSection(t *testing.T) {
	err := ValidateProfile([]byte(`{"source": "manual"}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateProfile_BadEnumValue(t *testing.T) {
	data := deriveProfileJSON(t, types.RawRecord{"age": 5.0})

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["source"] = "scraped"
	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	valErr := ValidateProfile(mutated)
	require.Error(t, valErr)
	assert.Contains(t, valErr.Error(), "source")
}

func TestValidateMatchResults_Valid(t *testing.T) {
	content := `[
		{
			"resource": {"id": "r1", "title": "Emotion Cards", "tags": ["comm-visual"], "format": "cards", "visual_support": true},
			"match_score": 45,
			"adaptation_suggestions": ["Pre-teach the card vocabulary"]
		},
		{
			"resource": {"id": "r2", "format": "worksheet", "text_level": "simple"},
			"match_score": 0
		}
	]`

	assert.NoError(t, ValidateMatchResults([]byte(content)))
}

func TestValidateMatchResults_MissingScore(t *testing.T) {
	content := `[{"resource": {"id": "r1", "format": "cards"}}]`

	err := ValidateMatchResults([]byte(content))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateMatchResults_NegativeScore(t *testing.T) {
	content := `[{"resource": {"id": "r1", "format": "cards"}, "match_score": -5}]`

	err := ValidateMatchResults([]byte(content))
	require.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "source", Message: "is required"},
			{Field: "demographics.age", Message: "must be an integer"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "source")
	assert.Contains(t, errorMsg, "demographics.age")
}

func TestValidateProfile_MalformedJSON(t *testing.T) {
	err := ValidateProfile([]byte("{ not json"))
	require.Error(t, err)
}
