// Package activity maps classroom assessments onto concrete activity
// suggestions. An assessment's three observation values classify the
// student's current condition; keyword rules on the observation note then
// select an activity matched to that condition, personalized by age and
// interests.
package activity

import (
	"strings"

	"github.com/teachsmart/profile-engine/internal/types"
)

// Condition thresholds over the summed observation features.
const (
	thrivingMin    = 2.5
	progressingMin = 1.5
)

// featureValue converts one observation to its numeric feature:
// "benar" (correct) is 1, anything mentioning "bantu" (with help) is 0.5,
// everything else is 0.
func featureValue(v string) float64 {
	lv := strings.ToLower(strings.TrimSpace(v))
	switch {
	case lv == "benar":
		return 1
	case strings.Contains(lv, "bantu"):
		return 0.5
	default:
		return 0
	}
}

// ClassifyCondition maps an assessment to a condition label. Both
// thresholds are inclusive: a feature sum of exactly 1.5 classifies as
// progressing and exactly 2.5 as thriving.
func ClassifyCondition(a types.Assessment) types.Condition {
	sum := featureValue(a.Value1) + featureValue(a.Value2) + featureValue(a.Value3)
	switch {
	case sum >= thrivingMin:
		return types.ConditionThriving
	case sum >= progressingMin:
		return types.ConditionProgressing
	default:
		return types.ConditionStruggling
	}
}
