package matching

import (
	"sort"

	"github.com/teachsmart/profile-engine/internal/types"
)

// Score weights for the additive point system.
const (
	tagMatchPoints     = 10 // per resource tag present in the profile tag set
	cardsVisualBonus   = 20 // visual learner x card-format resource
	textLevelBonus     = 15 // resource text level matches the recommended level
	visualSupportBonus = 15 // resource visual support matches the profile's need
)

// Resource formats the heuristics key on.
const (
	formatCards     = "cards"
	formatWorksheet = "worksheet"
	formatGame      = "game"
)

// RecommendedTextLevel returns the text complexity suited to a
// communication level.
func RecommendedTextLevel(level types.CommLevel) string {
	switch level {
	case types.CommEmerging:
		return "very-simple"
	case types.CommDeveloping:
		return "simple"
	default:
		return "age-appropriate"
	}
}

// NeedsHighVisualSupport reports whether the profile calls for resources
// with strong visual support.
func NeedsHighVisualSupport(p *types.SupportProfile) bool {
	return p.PrefersModality(types.ModalityVisual) || p.CommunicationProfile.Level == types.CommEmerging
}

// MatchResources scores every resource against the profile and returns the
// results sorted by score descending. The sort is stable: equal scores keep
// their original catalog order.
func MatchResources(resources []types.Resource, p *types.SupportProfile) []types.MatchResult {
	profileTags := make(map[string]bool)
	for _, tag := range GenerateProfileTags(p) {
		profileTags[tag] = true
	}

	results := make([]types.MatchResult, 0, len(resources))
	for _, r := range resources {
		results = append(results, types.MatchResult{
			Resource:              r,
			MatchScore:            scoreResource(r, p, profileTags),
			AdaptationSuggestions: adaptationSuggestions(r, p),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

func scoreResource(r types.Resource, p *types.SupportProfile, profileTags map[string]bool) int {
	score := 0
	for _, tag := range r.Tags {
		if profileTags[tag] {
			score += tagMatchPoints
		}
	}

	if p.PrefersModality(types.ModalityVisual) && r.Format == formatCards {
		score += cardsVisualBonus
	}

	if r.TextLevel != nil && *r.TextLevel == RecommendedTextLevel(p.CommunicationProfile.Level) {
		score += textLevelBonus
	}

	if r.VisualSupport != nil && *r.VisualSupport == NeedsHighVisualSupport(p) {
		score += visualSupportBonus
	}

	return score
}

// adaptationRule suggests an adjustment for a resource that is usable but
// not ideal as-is. Rules are evaluated in order and are independent of the
// match score.
type adaptationRule struct {
	when func(types.Resource, *types.SupportProfile) bool
	text string
}

var adaptationRules = []adaptationRule{
	{
		when: func(r types.Resource, p *types.SupportProfile) bool {
			return p.LearningProfile.AttentionSpan == types.AttentionShort && r.Format == formatWorksheet
		},
		text: "Break the worksheet into smaller sections with a visible progress marker",
	},
	{
		when: func(r types.Resource, p *types.SupportProfile) bool {
			return p.CommunicationProfile.Level == types.CommEmerging &&
				r.TextLevel != nil && *r.TextLevel == "age-appropriate"
		},
		text: "Simplify the text and add picture cues",
	},
	{
		when: func(r types.Resource, p *types.SupportProfile) bool {
			return NeedsHighVisualSupport(p) && r.VisualSupport != nil && !*r.VisualSupport
		},
		text: "Add visual supports before introducing the resource",
	},
	{
		when: func(r types.Resource, p *types.SupportProfile) bool {
			return p.SupportLevels.Sensory == types.LevelHigh && r.Format == formatGame
		},
		text: "Pre-teach the rules in a quiet setting before group play",
	},
	{
		when: func(r types.Resource, p *types.SupportProfile) bool {
			return p.PrefersModality(types.ModalityKinesthetic) && r.Format == formatWorksheet
		},
		text: "Pair the worksheet with a hands-on manipulative step",
	},
	{
		when: func(r types.Resource, p *types.SupportProfile) bool {
			return p.BehaviorProfile.StructureLevel == types.StructureHigh
		},
		text: "Introduce the resource inside the existing routine, not as a surprise",
	},
}

func adaptationSuggestions(r types.Resource, p *types.SupportProfile) []string {
	out := make([]string, 0, len(adaptationRules))
	for _, rule := range adaptationRules {
		if rule.when(r, p) {
			out = append(out, rule.text)
		}
	}
	return out
}
