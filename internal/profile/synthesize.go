// Package profile composes domain scores and inference rules into a
// complete support profile. Synthesis is a pure function of the normalized
// record: no I/O, no clock, no randomness. ID, source and timestamps are
// assigned by the calling collaborator.
package profile

import (
	"github.com/teachsmart/profile-engine/internal/aicontext"
	"github.com/teachsmart/profile-engine/internal/recommend"
	"github.com/teachsmart/profile-engine/internal/scoring"
	"github.com/teachsmart/profile-engine/internal/types"
)

// Synthesize derives a full support profile from a normalized record.
func Synthesize(rec *types.NormalizedRecord, source types.Source) *types.SupportProfile {
	levels := types.SupportLevels{
		Communication: scoring.Score(types.AttrCommunication, rec.Score(types.AttrCommunication)),
		Social:        scoring.Score(types.AttrSocialInteraction, rec.Score(types.AttrSocialInteraction)),
		Repetitive:    scoring.Score(types.AttrRepetitiveBehaviors, rec.Score(types.AttrRepetitiveBehaviors)),
		Sensory:       scoring.Score(types.AttrSensorySensitivity, rec.Score(types.AttrSensorySensitivity)),
		Attention:     scoring.Score(types.AttrAttentionSpan, rec.Score(types.AttrAttentionSpan)),
		Overall:       scoring.Overall(rec),
	}

	age := rec.Age
	p := &types.SupportProfile{
		Source: source,
		Demographics: types.Demographics{
			Age:      &age,
			AgeGroup: ageGroup(age),
		},
		SupportLevels:        levels,
		LearningProfile:      learningProfile(rec, levels),
		CommunicationProfile: communicationProfile(rec, levels),
		SocialProfile:        socialProfile(levels),
		SensoryProfile:       sensoryProfile(rec, levels),
		BehaviorProfile:      behaviorProfile(rec, levels),
	}

	p.EducationalRecommendations = recommend.Generate(p)
	p.AIPromptContext = aicontext.Encode(p)
	return p
}

func ageGroup(age int) types.AgeGroup {
	switch {
	case age <= 6:
		return types.AgeGroupEarlyYears
	case age <= 11:
		return types.AgeGroupPrimary
	case age <= 16:
		return types.AgeGroupSecondary
	default:
		return types.AgeGroupPostSecondary
	}
}

func learningProfile(rec *types.NormalizedRecord, levels types.SupportLevels) types.LearningProfile {
	return types.LearningProfile{
		AttentionSpan:      attentionSpan(levels.Attention),
		ProcessingSpeed:    processingSpeed(levels.Overall),
		LearningModalities: learningModalities(rec),
		Strengths:          applyLevelRules(strengthRules, rec),
		Challenges:         applyLevelRules(challengeRules, rec),
		SupportNeeds:       applyLevelRules(supportNeedRules, rec),
	}
}

// learningModalities excludes a channel only when its sub-sensitivity
// classifies as high. The set is never empty: a student overloaded on every
// channel still gets visual, the most accommodatable default.
func learningModalities(rec *types.NormalizedRecord) []types.Modality {
	modalities := make([]types.Modality, 0, 3)
	if scoring.Score(types.AttrLightSensitivity, rec.Score(types.AttrLightSensitivity)) != types.LevelHigh {
		modalities = append(modalities, types.ModalityVisual)
	}
	if scoring.Score(types.AttrSoundSensitivity, rec.Score(types.AttrSoundSensitivity)) != types.LevelHigh {
		modalities = append(modalities, types.ModalityAuditory)
	}
	if scoring.Score(types.AttrTouchSensitivity, rec.Score(types.AttrTouchSensitivity)) != types.LevelHigh {
		modalities = append(modalities, types.ModalityKinesthetic)
	}
	if len(modalities) == 0 {
		modalities = append(modalities, types.ModalityVisual)
	}
	return modalities
}

func attentionSpan(attention types.Level) types.AttentionSpan {
	switch attention {
	case types.LevelLow:
		return types.AttentionShort
	case types.LevelHigh:
		return types.AttentionLong
	default:
		return types.AttentionModerate
	}
}

func processingSpeed(overall types.Level) types.ProcessingSpeed {
	switch overall {
	case types.LevelHigh:
		return types.ProcessingDeliberate
	case types.LevelLow:
		return types.ProcessingBrisk
	default:
		return types.ProcessingSteady
	}
}

func communicationProfile(rec *types.NormalizedRecord, levels types.SupportLevels) types.CommunicationProfile {
	level := commLevel(levels.Communication)
	verbal := scoring.Score(types.AttrVerbalCommunication, rec.Score(types.AttrVerbalCommunication))
	nonverbal := scoring.Score(types.AttrNonverbalCommunication, rec.Score(types.AttrNonverbalCommunication))

	return types.CommunicationProfile{
		Level:          level,
		Mode:           communicationMode(verbal),
		VerbalLevel:    verbal,
		NonverbalLevel: nonverbal,
		Strategies:     communicationStrategies[level],
	}
}

func commLevel(communication types.Level) types.CommLevel {
	switch communication {
	case types.LevelLow:
		return types.CommEmerging
	case types.LevelHigh:
		return types.CommFluent
	default:
		// medium and unknown both land on developing, the neutral stage
		return types.CommDeveloping
	}
}

func communicationMode(verbal types.Level) types.CommunicationMode {
	switch verbal {
	case types.LevelLow:
		return types.ModeAugmentative
	case types.LevelMedium:
		return types.ModeMixed
	default:
		return types.ModeVerbal
	}
}

func socialProfile(levels types.SupportLevels) types.SocialProfile {
	return types.SocialProfile{
		InteractionLevel: levels.Social,
		GroupPreference:  groupPreference(levels.Social),
		Strategies:       socialStrategies[levels.Social],
	}
}

func groupPreference(social types.Level) types.GroupPreference {
	switch social {
	case types.LevelLow:
		return types.GroupIndividual
	case types.LevelMedium:
		return types.GroupSmallGroup
	default:
		return types.GroupFlexible
	}
}

func sensoryProfile(rec *types.NormalizedRecord, levels types.SupportLevels) types.SensoryProfile {
	return types.SensoryProfile{
		Overall:    levels.Sensory,
		Sound:      scoring.Score(types.AttrSoundSensitivity, rec.Score(types.AttrSoundSensitivity)),
		Light:      scoring.Score(types.AttrLightSensitivity, rec.Score(types.AttrLightSensitivity)),
		Touch:      scoring.Score(types.AttrTouchSensitivity, rec.Score(types.AttrTouchSensitivity)),
		Strategies: sensoryStrategies[levels.Sensory],
	}
}

func behaviorProfile(rec *types.NormalizedRecord, levels types.SupportLevels) types.BehaviorProfile {
	routines := scoring.Score(types.AttrRoutines, rec.Score(types.AttrRoutines))
	structure := structureLevel(levels.Repetitive, routines)

	strategies := append([]string(nil), behaviorStrategies[levels.Repetitive]...)
	if routines == types.LevelHigh {
		strategies = append(strategies, "Keep the daily schedule visible and consistent")
	}

	return types.BehaviorProfile{
		RepetitiveLevel: levels.Repetitive,
		RoutineReliance: routines,
		StructureLevel:  structure,
		StructuralNeeds: structuralNeedsFor(structure),
		Strategies:      strategies,
	}
}

func structureLevel(repetitive, routines types.Level) types.StructureLevel {
	switch {
	case repetitive == types.LevelHigh || routines == types.LevelHigh:
		return types.StructureHigh
	case repetitive == types.LevelMedium || routines == types.LevelMedium:
		return types.StructureModerate
	default:
		return types.StructureFlexible
	}
}

// applyLevelRules evaluates a rule table against the record's classified
// levels, in declaration order, suppressing duplicate tags.
func applyLevelRules(rules []levelRule, rec *types.NormalizedRecord) []string {
	out := make([]string, 0, len(rules))
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if scoring.Score(r.attr, rec.Score(r.attr)) != r.level || seen[r.tag] {
			continue
		}
		seen[r.tag] = true
		out = append(out, r.tag)
	}
	return out
}
