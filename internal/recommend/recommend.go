// Package recommend derives teacher-facing educational recommendations from
// a profile's domain levels. Each output list is driven by an ordered table
// of (predicate, text) rules: rules are additive, never mutually exclusive,
// and duplicate text is suppressed. Output order follows table declaration
// order so runs are reproducible.
package recommend

import "github.com/teachsmart/profile-engine/internal/types"

type rule struct {
	when func(*types.SupportProfile) bool
	text string
}

func attentionLow(p *types.SupportProfile) bool {
	return p.SupportLevels.Attention == types.LevelLow
}

func communicationLow(p *types.SupportProfile) bool {
	return p.SupportLevels.Communication == types.LevelLow
}

func socialLow(p *types.SupportProfile) bool {
	return p.SupportLevels.Social == types.LevelLow
}

func sensoryHigh(p *types.SupportProfile) bool {
	return p.SupportLevels.Sensory == types.LevelHigh
}

func repetitiveHigh(p *types.SupportProfile) bool {
	return p.SupportLevels.Repetitive == types.LevelHigh
}

func routinesHigh(p *types.SupportProfile) bool {
	return p.BehaviorProfile.RoutineReliance == types.LevelHigh
}

func overallHigh(p *types.SupportProfile) bool {
	return p.SupportLevels.Overall == types.LevelHigh
}

func prefersVisual(p *types.SupportProfile) bool {
	return p.PrefersModality(types.ModalityVisual)
}

var instructionalRules = []rule{
	{attentionLow, "Break tasks into 5-10 minute segments"},
	{communicationLow, "Pair verbal instructions with visual supports"},
	{prefersVisual, "Present new concepts visually before explaining them verbally"},
	{socialLow, "Use explicit scripts and modeling for partner and group work"},
	{repetitiveHigh, "Channel focused interests into learning tasks"},
	{overallHigh, "Provide one-on-one instructional support for new material"},
}

var environmentalRules = []rule{
	{sensoryHigh, "Provide quiet workspace options"},
	{sensoryHigh, "Reduce visual clutter and harsh lighting"},
	{routinesHigh, "Maintain consistent daily schedules"},
	{attentionLow, "Seat the student away from high-traffic areas"},
	{overallHigh, "Arrange a clearly defined, consistent personal workspace"},
}

var assessmentRules = []rule{
	{communicationLow, "Accept nonverbal response formats"},
	{attentionLow, "Split assessments into short sessions"},
	{sensoryHigh, "Offer a low-stimulation testing environment"},
	{socialLow, "Avoid assessments that depend on group performance"},
	{overallHigh, "Extend time allowances and reduce question counts"},
}

// Generate evaluates the rule tables against a profile. The profile needs
// its support levels, learning profile and behavior profile populated; the
// synthesizer calls Generate before recommendations are attached.
func Generate(p *types.SupportProfile) types.Recommendations {
	return types.Recommendations{
		InstructionalStrategies:    apply(instructionalRules, p),
		EnvironmentalModifications: apply(environmentalRules, p),
		AssessmentAdaptations:      apply(assessmentRules, p),
	}
}

func apply(rules []rule, p *types.SupportProfile) []string {
	out := make([]string, 0, len(rules))
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if !r.when(p) || seen[r.text] {
			continue
		}
		seen[r.text] = true
		out = append(out, r.text)
	}
	return out
}
