package types

// RawRecord is an untyped assessment row exactly as a form or dataset
// collaborator handed it over. Keys are whatever the source used
// ("Age", "student_age", ...); values may be numbers, strings, or missing.
// A RawRecord is consumed once by the normalizer and then discarded.
type RawRecord map[string]any

// Canonical attribute names produced by the normalizer.
const (
	AttrAge                    = "age"
	AttrCommunication          = "communication"
	AttrSocialInteraction      = "social_interaction"
	AttrRepetitiveBehaviors    = "repetitive_behaviors"
	AttrSensorySensitivity     = "sensory_sensitivity"
	AttrAttentionSpan          = "attention_span"
	AttrVerbalCommunication    = "verbal_communication"
	AttrNonverbalCommunication = "nonverbal_communication"
	AttrRoutines               = "routines"
	AttrInterests              = "interests"
	AttrIndependence           = "independence"
	AttrSelfRegulation         = "self_regulation"
	AttrSoundSensitivity       = "sound_sensitivity"
	AttrLightSensitivity       = "light_sensitivity"
	AttrTouchSensitivity       = "touch_sensitivity"
)

// ScoreAttributes lists every canonical attribute that carries a 0-6 score.
// Age is not a score and is handled separately by the normalizer.
var ScoreAttributes = []string{
	AttrCommunication,
	AttrSocialInteraction,
	AttrRepetitiveBehaviors,
	AttrSensorySensitivity,
	AttrAttentionSpan,
	AttrVerbalCommunication,
	AttrNonverbalCommunication,
	AttrRoutines,
	AttrInterests,
	AttrIndependence,
	AttrSelfRegulation,
	AttrSoundSensitivity,
	AttrLightSensitivity,
	AttrTouchSensitivity,
}

// NormalizedRecord is the canonical form of one assessment row. Scores map
// canonical attribute names to values in [0,6]; a missing or invalid score
// is stored as nil, never clamped.
type NormalizedRecord struct {
	Age    int                 `json:"age"`
	Scores map[string]*float64 `json:"scores"`
}

// Score returns the value for a canonical attribute, or nil if the
// attribute was absent or invalid in the source record.
func (r *NormalizedRecord) Score(attr string) *float64 {
	if r == nil || r.Scores == nil {
		return nil
	}
	return r.Scores[attr]
}
