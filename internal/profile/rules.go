package profile

import "github.com/teachsmart/profile-engine/internal/types"

// levelRule tags a profile trait when an attribute classifies at a level.
// The tables below are evaluated in declaration order so the resulting tag
// lists are reproducible.
type levelRule struct {
	attr  string
	level types.Level
	tag   string
}

// Skill attributes (communication, social, attention, independence, ...) are
// ability-scaled: low means difficulty. Intensity attributes (sensory,
// repetitive) are severity-scaled: high means more pronounced.
var strengthRules = []levelRule{
	{types.AttrRoutines, types.LevelHigh, "routine-following"},
	{types.AttrInterests, types.LevelHigh, "focused-interests"},
	{types.AttrIndependence, types.LevelHigh, "independent-working"},
	{types.AttrAttentionSpan, types.LevelHigh, "sustained-attention"},
	{types.AttrVerbalCommunication, types.LevelHigh, "verbal-expression"},
	{types.AttrSelfRegulation, types.LevelHigh, "self-regulation"},
}

var challengeRules = []levelRule{
	{types.AttrCommunication, types.LevelLow, "communication-difficulties"},
	{types.AttrSocialInteraction, types.LevelLow, "social-interaction"},
	{types.AttrAttentionSpan, types.LevelLow, "attention-regulation"},
	{types.AttrSelfRegulation, types.LevelLow, "emotional-regulation"},
	{types.AttrSensorySensitivity, types.LevelHigh, "sensory-processing"},
	{types.AttrRepetitiveBehaviors, types.LevelHigh, "flexibility"},
	{types.AttrIndependence, types.LevelLow, "task-independence"},
}

var supportNeedRules = []levelRule{
	{types.AttrCommunication, types.LevelLow, "visual-communication-supports"},
	{types.AttrAttentionSpan, types.LevelLow, "frequent-breaks"},
	{types.AttrSensorySensitivity, types.LevelHigh, "sensory-accommodations"},
	{types.AttrSocialInteraction, types.LevelLow, "structured-social-opportunities"},
	{types.AttrRoutines, types.LevelHigh, "predictable-transitions"},
}

// Strategy tables for the categorical sub-profiles.

var communicationStrategies = map[types.CommLevel][]string{
	types.CommEmerging: {
		"Model single words and short phrases",
		"Pair speech with pictures or objects",
		"Honor every communication attempt",
	},
	types.CommDeveloping: {
		"Use short, concrete sentences",
		"Allow extra response time",
		"Check understanding with show-me requests",
	},
	types.CommFluent: {
		"Encourage conversational turn-taking",
		"Teach figurative language explicitly",
	},
}

var socialStrategies = map[types.Level][]string{
	types.LevelLow: {
		"Use structured turn-taking games",
		"Pair with a consistent peer buddy",
		"Pre-teach social expectations before group time",
	},
	types.LevelMedium: {
		"Practice defined roles in small groups",
		"Debrief social situations afterwards",
	},
	types.LevelHigh: {
		"Offer leadership opportunities in group activities",
	},
}

var sensoryStrategies = map[types.Level][]string{
	types.LevelHigh: {
		"Offer noise-reducing headphones",
		"Schedule regular sensory breaks",
		"Soften lighting where possible",
	},
	types.LevelMedium: {
		"Watch for early signs of sensory overload",
		"Provide access to a calm-down space",
	},
	types.LevelLow: {
		"Maintain the current sensory environment",
	},
}

var behaviorStrategies = map[types.Level][]string{
	types.LevelHigh: {
		"Allow scheduled time for preferred repetitive activities",
		"Signal transitions well in advance",
	},
	types.LevelMedium: {
		"Use visual countdowns for transitions",
	},
}

// structuralNeedsFor maps a structure level to its need tags. The
// high-structure tag is load-bearing for tag generation and matching.
func structuralNeedsFor(level types.StructureLevel) []string {
	switch level {
	case types.StructureHigh:
		return []string{"high-structure", "visual-schedules"}
	case types.StructureModerate:
		return []string{"moderate-structure"}
	default:
		return []string{"flexible-structure"}
	}
}
