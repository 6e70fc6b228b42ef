package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teachsmart/profile-engine/internal/dataset"
	"github.com/teachsmart/profile-engine/internal/types"
)

func TestPrintSupportProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.SupportProfile{
		Demographics: types.Demographics{AgeGroup: types.AgeGroupEarlyYears},
		SupportLevels: types.SupportLevels{
			Communication: types.LevelHigh,
			Social:        types.LevelMedium,
			Repetitive:    types.LevelLow,
			Sensory:       types.LevelHigh,
			Overall:       types.LevelMedium,
		},
		LearningProfile: types.LearningProfile{
			Strengths:  []string{"routine-following"},
			Challenges: []string{"communication-difficulties", "sensory-processing"},
		},
		CommunicationProfile: types.CommunicationProfile{
			Level: types.CommEmerging,
			Mode:  types.ModeAugmentative,
		},
		BehaviorProfile: types.BehaviorProfile{
			StructureLevel: types.StructureHigh,
		},
	}

	p.PrintSupportProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "SUPPORT PROFILE")
	assert.Contains(t, output, "early-years")
	assert.Contains(t, output, "emerging")
	assert.Contains(t, output, "routine-following")
	assert.Contains(t, output, "communication-difficulties")
}

func TestPrintSupportProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSupportProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.MatchResult{
		{
			Resource: types.Resource{
				ID:     "r1",
				Title:  "Emotion Cards",
				Tags:   []string{"support-medium", "comm-visual"},
				Format: "cards",
			},
			MatchScore: 45,
		},
		{
			Resource:   types.Resource{ID: "r2", Format: "worksheet"},
			MatchScore: 10,
		},
	}

	p.PrintMatchResults(results)
	output := buf.String()

	assert.Contains(t, output, "TOP MATCHED RESOURCES")
	assert.Contains(t, output, "Emotion Cards")
	assert.Contains(t, output, "Score: 45")
	assert.Contains(t, output, "support-medium, comm-visual")
	// untitled resource falls back to its ID
	assert.Contains(t, output, "r2")
}

func TestPrintMatchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResults(nil)

	assert.Empty(t, buf.String())
}

func TestPrintActivity(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	act := types.Activity{
		Name:      "Counting Bears Adventure",
		Duration:  "10-15 minutes",
		Materials: []string{"counting bears", "number cards"},
		Steps:     []string{"Set out the bears", "Count together"},
	}

	p.PrintActivity(types.ConditionProgressing, act)
	output := buf.String()

	assert.Contains(t, output, "SUGGESTED ACTIVITY")
	assert.Contains(t, output, "progressing")
	assert.Contains(t, output, "Counting Bears Adventure")
	assert.Contains(t, output, "counting bears")
	assert.Contains(t, output, "1. Set out the bears")
}

func TestPrintBatchSummary_NoRejections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary(dataset.Summary{Processed: 12})
	output := buf.String()

	assert.Contains(t, output, "12 processed, 0 rejected")
	assert.NotContains(t, output, "IMPORT SUMMARY")
}

func TestPrintBatchSummary_WithFailures(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary(dataset.Summary{
		Processed: 3,
		Rejected:  1,
		Failures:  []dataset.RowFailure{{Row: 2, Reason: "missing-or-invalid-age"}},
	})
	output := buf.String()

	assert.Contains(t, output, "IMPORT SUMMARY")
	assert.Contains(t, output, "3 processed, 1 rejected")
	assert.Contains(t, output, "row 2")
	assert.Contains(t, output, "missing-or-invalid-age")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TEST", strings.Repeat("x", 100))
	output := buf.String()

	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
