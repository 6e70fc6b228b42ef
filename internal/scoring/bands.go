// Package scoring converts normalized 0-6 indicator scores into ordinal
// support levels. Band boundaries are explicit per-domain lookups rather
// than arithmetic inlined at call sites, so classification outcomes can be
// tested exhaustively.
package scoring

import "github.com/teachsmart/profile-engine/internal/types"

// Band holds the inclusive upper bounds of the low and medium ranges.
// Anything above MediumMax classifies as high.
type Band struct {
	LowMax    float64
	MediumMax float64
}

// defaultBand: [0,2] low, (2,4] medium, (4,6] high.
var defaultBand = Band{LowMax: 2, MediumMax: 4}

// compactBand: [0,1] low, [2,3] medium, [4,6] high. Used for the intensity
// domains, where a 2 already warrants attention.
var compactBand = Band{LowMax: 1, MediumMax: 3}

// domainBands lists the domains that deviate from the default band.
// The asymmetry is inherited from the source assessment design and is kept
// as-is; unifying it would change classification outcomes.
var domainBands = map[string]Band{
	types.AttrRepetitiveBehaviors: compactBand,
	types.AttrSensorySensitivity:  compactBand,
	types.AttrSoundSensitivity:    compactBand,
	types.AttrLightSensitivity:    compactBand,
	types.AttrTouchSensitivity:    compactBand,
}

// primaryDomains feed the overall support level.
var primaryDomains = []string{
	types.AttrCommunication,
	types.AttrSocialInteraction,
	types.AttrRepetitiveBehaviors,
	types.AttrSensorySensitivity,
}

// BandFor returns the classification band for a canonical attribute.
func BandFor(attr string) Band {
	if b, ok := domainBands[attr]; ok {
		return b
	}
	return defaultBand
}

// Classify maps a score onto the band. A nil score is unknown.
func (b Band) Classify(v *float64) types.Level {
	switch {
	case v == nil:
		return types.LevelUnknown
	case *v <= b.LowMax:
		return types.LevelLow
	case *v <= b.MediumMax:
		return types.LevelMedium
	default:
		return types.LevelHigh
	}
}

// Score classifies one attribute's value using its domain band.
func Score(attr string, v *float64) types.Level {
	return BandFor(attr).Classify(v)
}

// Overall computes the overall support level as the default-band
// classification of the mean of the four primary domain scores. Missing
// scores are excluded from the mean; when all four are missing the result
// is medium, a deliberate neutral default so downstream recommendation
// rules always have a level to act on.
func Overall(rec *types.NormalizedRecord) types.Level {
	sum := 0.0
	n := 0
	for _, attr := range primaryDomains {
		if v := rec.Score(attr); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return types.LevelMedium
	}
	mean := sum / float64(n)
	return defaultBand.Classify(&mean)
}
