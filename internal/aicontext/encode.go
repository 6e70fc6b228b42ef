// Package aicontext flattens a support profile into a compact, ordered set
// of labeled descriptors for downstream prompt construction. This is a pure
// projection: every profile attribute the recommendation text depends on
// must appear here, and the same profile always yields the same ordered
// output so prompt caches stay warm.
package aicontext

import (
	"fmt"
	"strings"

	"github.com/teachsmart/profile-engine/internal/types"
)

// Encode projects a profile into its ordered prompt-context descriptors.
func Encode(p *types.SupportProfile) []types.ContextEntry {
	modalities := make([]string, len(p.LearningProfile.LearningModalities))
	for i, m := range p.LearningProfile.LearningModalities {
		modalities[i] = string(m)
	}

	sensory := fmt.Sprintf("overall %s (sound: %s, light: %s, touch: %s)",
		p.SensoryProfile.Overall, p.SensoryProfile.Sound,
		p.SensoryProfile.Light, p.SensoryProfile.Touch)

	return []types.ContextEntry{
		{Label: "support level", Value: string(p.SupportLevels.Overall)},
		{Label: "age group", Value: string(p.Demographics.AgeGroup)},
		{Label: "communication level", Value: string(p.CommunicationProfile.Level)},
		{Label: "communication mode", Value: string(p.CommunicationProfile.Mode)},
		{Label: "attention span", Value: string(p.LearningProfile.AttentionSpan)},
		{Label: "processing speed", Value: string(p.LearningProfile.ProcessingSpeed)},
		{Label: "learning modalities", Value: strings.Join(modalities, ", ")},
		{Label: "group preference", Value: string(p.SocialProfile.GroupPreference)},
		{Label: "primary strengths", Value: joinOrNone(p.LearningProfile.Strengths)},
		{Label: "primary challenges", Value: joinOrNone(p.LearningProfile.Challenges)},
		{Label: "sensory considerations", Value: sensory},
		{Label: "structural needs", Value: joinOrNone(p.BehaviorProfile.StructuralNeeds)},
	}
}

// Strings renders entries in the "label: value" form used by prompt builders.
func Strings(entries []types.ContextEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf("%s: %s", e.Label, e.Value)
	}
	return out
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none identified"
	}
	return strings.Join(items, ", ")
}
