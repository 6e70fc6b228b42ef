package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachsmart/profile-engine/internal/types"
)

func TestNormalize_AliasResolution(t *testing.T) {
	tests := []struct {
		name string
		raw  types.RawRecord
		attr string
		want float64
	}{
		{
			name: "canonical name",
			raw:  types.RawRecord{"age": 8.0, "communication": 3.0},
			attr: types.AttrCommunication,
			want: 3,
		},
		{
			name: "variant name",
			raw:  types.RawRecord{"age": 8.0, "communication_skills": 2.0},
			attr: types.AttrCommunication,
			want: 2,
		},
		{
			name: "case-insensitive key",
			raw:  types.RawRecord{"Age": 8.0, "Social_Interaction": 4.0},
			attr: types.AttrSocialInteraction,
			want: 4,
		},
		{
			name: "first alias wins",
			raw:  types.RawRecord{"age": 8.0, "attention_span": 1.0, "focus": 5.0},
			attr: types.AttrAttentionSpan,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Normalize(tt.raw)
			require.NoError(t, err)
			score := rec.Score(tt.attr)
			require.NotNil(t, score)
			assert.Equal(t, tt.want, *score)
		})
	}
}

func TestNormalize_AgeRejection(t *testing.T) {
	tests := []struct {
		name string
		raw  types.RawRecord
	}{
		{name: "no age", raw: types.RawRecord{"communication": 3.0}},
		{name: "age over range", raw: types.RawRecord{"age": 30.0}},
		{name: "age negative", raw: types.RawRecord{"age": -1.0}},
		{name: "non-numeric age", raw: types.RawRecord{"age": "eight"}},
		{name: "fractional age", raw: types.RawRecord{"age": 8.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			require.Error(t, err)

			var rejected *RejectedRecordError
			require.True(t, errors.As(err, &rejected))
			assert.Equal(t, ReasonMissingOrInvalidAge, rejected.Reason)
		})
	}
}

func TestNormalize_AgeStringCoercion(t *testing.T) {
	rec, err := Normalize(types.RawRecord{"age": "8"})
	require.NoError(t, err)
	assert.Equal(t, 8, rec.Age)
}

func TestNormalize_OutOfRangeScoreDroppedNotClamped(t *testing.T) {
	rec, err := Normalize(types.RawRecord{"age": 8.0, "communication": 9.0})
	require.NoError(t, err)
	assert.Nil(t, rec.Score(types.AttrCommunication))
}

func TestNormalize_MalformedScoreDegrades(t *testing.T) {
	rec, err := Normalize(types.RawRecord{"age": 8.0, "sensory_sensitivity": "often"})
	require.NoError(t, err)
	assert.Nil(t, rec.Score(types.AttrSensorySensitivity))
}

func TestNormalize_StringScoreCoercion(t *testing.T) {
	rec, err := Normalize(types.RawRecord{"age": 8.0, "routines": "5"})
	require.NoError(t, err)
	score := rec.Score(types.AttrRoutines)
	require.NotNil(t, score)
	assert.Equal(t, 5.0, *score)
}

func TestNormalize_AllScoreAttributesPresentInOutput(t *testing.T) {
	rec, err := Normalize(types.RawRecord{"age": 8.0})
	require.NoError(t, err)
	for _, attr := range types.ScoreAttributes {
		_, ok := rec.Scores[attr]
		assert.True(t, ok, "missing attribute %s", attr)
		assert.Nil(t, rec.Scores[attr])
	}
}

func TestNormalize_BoundaryScoresKept(t *testing.T) {
	rec, err := Normalize(types.RawRecord{"age": 8.0, "communication": 0.0, "social": 6.0})
	require.NoError(t, err)
	require.NotNil(t, rec.Score(types.AttrCommunication))
	require.NotNil(t, rec.Score(types.AttrSocialInteraction))
	assert.Equal(t, 0.0, *rec.Score(types.AttrCommunication))
	assert.Equal(t, 6.0, *rec.Score(types.AttrSocialInteraction))
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := types.RawRecord{"age": 8.0, "communication": 3.0}
	_, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, types.RawRecord{"age": 8.0, "communication": 3.0}, raw)
}
