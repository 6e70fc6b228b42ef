package activity

import (
	"fmt"
	"strings"

	"github.com/teachsmart/profile-engine/internal/types"
)

// SuggestOptions personalizes a suggested activity. The zero value applies
// no personalization.
type SuggestOptions struct {
	StudentName string
	Age         int
	Interests   []string
}

// Suggest classifies the assessment, selects the matching activity for the
// observation note, and personalizes a copy of it. The rule tables are
// never mutated.
func Suggest(a types.Assessment, opts SuggestOptions) types.Activity {
	condition := ClassifyCondition(a)
	act := findActivity(condition, a.ActivityNote)

	interests := opts.Interests
	if len(interests) == 0 {
		interests = ExtractInterests(a.ActivityNote)
	}
	return personalize(act, opts.StudentName, opts.Age, interests)
}

func findActivity(condition types.Condition, note string) types.Activity {
	for _, rule := range activityRules[condition] {
		if rule.pattern.MatchString(note) {
			return cloneActivity(rule.activity)
		}
	}
	return cloneActivity(defaultActivities[condition])
}

// ExtractInterests scans free text for known interest keywords.
func ExtractInterests(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, 2)
	for _, entry := range interestKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				found = append(found, entry.interest)
				break
			}
		}
	}
	return found
}

func personalize(act types.Activity, name string, age int, interests []string) types.Activity {
	if name != "" {
		act.Description = fmt.Sprintf("For %s: %s", name, act.Description)
	}

	switch {
	case age > 0 && age < 4:
		act.Duration = "2-5 minutes"
		act.AgeNote = "Shortened for younger student"
	case age > 8:
		switch {
		case strings.Contains(act.Duration, "5-8"):
			act.Duration = "8-12 minutes"
		case strings.Contains(act.Duration, "2-3"):
			act.Duration = "5-8 minutes"
		}
		act.AgeNote = "Extended for older student"
	}

	if len(interests) > 0 {
		who := name
		if who == "" {
			who = "the student"
		}
		act.Personalization = fmt.Sprintf("Incorporate %s's interests: %s", who, strings.Join(interests, ", "))
		applyInterestMaterials(&act, interests)
	}

	return act
}

func applyInterestMaterials(act *types.Activity, interests []string) {
	has := func(interest string) bool {
		for _, i := range interests {
			if i == interest {
				return true
			}
		}
		return false
	}

	if has("bears") {
		for i, m := range act.Materials {
			act.Materials[i] = strings.ReplaceAll(m, "objects", "teddy bear counters")
		}
	}
	if has("cars") {
		act.Materials = append(act.Materials, "Toy cars for motivation")
		if act.Name == "Focus Basket Activity" {
			act.Name = "Car Garage Sorting"
			act.Description = strings.ReplaceAll(act.Description, "sorting task", "car sorting task")
		}
	}
	if has("animals") {
		act.Materials = append(act.Materials, "Animal figures or pictures")
	}
	if has("music") {
		act.Materials = append(act.Materials, "Background music or songs")
		if strings.Contains(strings.ToLower(act.Name), "counting") {
			act.Steps = append(act.Steps, "Sing counting songs together")
		}
	}
}

// cloneActivity deep-copies an activity so personalization cannot reach
// back into the rule tables.
func cloneActivity(act types.Activity) types.Activity {
	out := act
	out.Materials = append([]string(nil), act.Materials...)
	out.Steps = append([]string(nil), act.Steps...)
	return out
}
