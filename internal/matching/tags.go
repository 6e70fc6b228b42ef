// Package matching scores and ranks candidate resources against a support
// profile. Matching is pure: it never mutates the resources or the profile.
package matching

import (
	"fmt"

	"github.com/teachsmart/profile-engine/internal/types"
)

// GenerateProfileTags derives the profile's tag set using the domain-value
// naming convention ("support-medium", "comm-visual"). The slice order is
// stable: support level, communication level, one tag per learning
// modality, structure level, sensory level. Unknown sensory levels emit no
// tag since resources are never tagged unknown.
func GenerateProfileTags(p *types.SupportProfile) []string {
	tags := make([]string, 0, 7)
	tags = append(tags, fmt.Sprintf("support-%s", p.SupportLevels.Overall))
	tags = append(tags, fmt.Sprintf("comm-%s", p.CommunicationProfile.Level))
	for _, m := range p.LearningProfile.LearningModalities {
		tags = append(tags, fmt.Sprintf("comm-%s", m))
	}
	tags = append(tags, fmt.Sprintf("structure-%s", p.BehaviorProfile.StructureLevel))
	if p.SupportLevels.Sensory != types.LevelUnknown {
		tags = append(tags, fmt.Sprintf("sensory-%s", p.SupportLevels.Sensory))
	}
	return tags
}
