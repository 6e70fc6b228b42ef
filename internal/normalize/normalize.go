// Package normalize maps heterogeneous assessment input onto the canonical
// attribute set. Field names vary between manual forms and imported dataset
// rows; each canonical attribute carries a fixed, ordered alias list and the
// first alias present in the source record wins.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/teachsmart/profile-engine/internal/types"
)

// Age bounds. A record whose age does not parse to an integer in this range
// is rejected outright.
const (
	minAge = 0
	maxAge = 25
)

// Score bounds. Values outside this range are dropped to nil, never clamped;
// clamping would silently misrepresent severity.
const (
	minScore = 0.0
	maxScore = 6.0
)

// ageAliases is the ordered alias list for the required age field.
var ageAliases = []string{"age", "student_age", "child_age", "age_years"}

// scoreAliases maps each canonical score attribute to its ordered alias
// list. Matching is case-insensitive; the first present alias wins.
var scoreAliases = map[string][]string{
	types.AttrCommunication:          {"communication", "communication_skills", "communication_level", "comm"},
	types.AttrSocialInteraction:      {"social_interaction", "social", "social_skills", "social_interaction_level"},
	types.AttrRepetitiveBehaviors:    {"repetitive_behaviors", "repetitive_behaviour", "repetitive", "stereotyped_behaviors"},
	types.AttrSensorySensitivity:     {"sensory_sensitivity", "sensory", "sensory_issues", "sensory_profile"},
	types.AttrAttentionSpan:          {"attention_span", "attention", "focus", "concentration"},
	types.AttrVerbalCommunication:    {"verbal_communication", "verbal", "speech"},
	types.AttrNonverbalCommunication: {"nonverbal_communication", "nonverbal", "non_verbal_communication", "gestures"},
	types.AttrRoutines:               {"routines", "routine_adherence", "need_for_routine"},
	types.AttrInterests:              {"interests", "special_interests", "focused_interests"},
	types.AttrIndependence:           {"independence", "independent_work", "self_help"},
	types.AttrSelfRegulation:         {"self_regulation", "emotional_regulation", "regulation"},
	types.AttrSoundSensitivity:       {"sound_sensitivity", "noise_sensitivity", "auditory_sensitivity"},
	types.AttrLightSensitivity:       {"light_sensitivity", "visual_sensitivity"},
	types.AttrTouchSensitivity:       {"touch_sensitivity", "tactile_sensitivity"},
}

// Normalize converts a raw record into the canonical schema. It returns a
// *RejectedRecordError when age is missing or outside [0,25]; any other
// missing or malformed field degrades to a nil score.
func Normalize(raw types.RawRecord) (*types.NormalizedRecord, error) {
	fields := lowerKeys(raw)

	age, ok := resolveAge(fields)
	if !ok {
		return nil, &RejectedRecordError{Reason: ReasonMissingOrInvalidAge}
	}

	scores := make(map[string]*float64, len(types.ScoreAttributes))
	for _, attr := range types.ScoreAttributes {
		scores[attr] = resolveScore(fields, scoreAliases[attr])
	}

	return &types.NormalizedRecord{Age: age, Scores: scores}, nil
}

// lowerKeys folds the record's keys to lower case so alias matching is
// case-insensitive. On duplicate keys after folding, the first seen wins.
func lowerKeys(raw types.RawRecord) map[string]any {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		lk := strings.ToLower(strings.TrimSpace(k))
		if _, exists := fields[lk]; !exists {
			fields[lk] = v
		}
	}
	return fields
}

func resolveAge(fields map[string]any) (int, bool) {
	for _, alias := range ageAliases {
		v, present := fields[alias]
		if !present {
			continue
		}
		f := parseNumber(v)
		if f == nil {
			return 0, false
		}
		// Age must be a whole number; 8.5 years is a data error, not a score.
		if *f != math.Trunc(*f) {
			return 0, false
		}
		age := int(*f)
		if age < minAge || age > maxAge {
			return 0, false
		}
		return age, true
	}
	return 0, false
}

func resolveScore(fields map[string]any, aliases []string) *float64 {
	for _, alias := range aliases {
		v, present := fields[alias]
		if !present {
			continue
		}
		f := parseNumber(v)
		if f == nil || *f < minScore || *f > maxScore {
			return nil
		}
		return f
	}
	return nil
}

// parseNumber coerces a raw value to a float. Strings are parsed tolerantly;
// anything non-numeric yields nil.
func parseNumber(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
