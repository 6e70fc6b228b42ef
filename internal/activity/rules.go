package activity

import (
	"regexp"

	"github.com/teachsmart/profile-engine/internal/types"
)

// activityRule pairs a keyword pattern over the observation note with the
// activity it selects. Patterns are tried in declaration order; the first
// match wins. Indonesian and English keywords are both accepted since the
// source datasets mix the two.
type activityRule struct {
	pattern  *regexp.Regexp
	activity types.Activity
}

var activityRules = map[types.Condition][]activityRule{
	types.ConditionStruggling: {
		{
			pattern: regexp.MustCompile(`(?i)tantrum|meltdown|marah|menangis|crying|upset`),
			activity: types.Activity{
				Name:        "Deep Pressure Calm Down",
				Type:        "calming_sensory",
				Description: "Use a weighted lap pad and deep breathing with a favorite stuffed animal",
				Materials:   []string{"Weighted lap pad", "Soft stuffed animal", "Quiet space"},
				Steps: []string{
					"Guide the student to a quiet corner with dim lighting",
					"Place the weighted lap pad on the student's lap",
					"Model slow breathing: breathe in like smelling flowers, out like blowing bubbles",
					"Stay nearby but give space",
					"Wait for the student to signal readiness to return",
				},
				Duration:     "5-10 minutes",
				SupportLevel: "immediate support",
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)tidak bisa konsentrasi|hyperactive|tidak fokus|can't focus|attention`),
			activity: types.Activity{
				Name:        "Focus Basket Activity",
				Type:        "attention_regulation",
				Description: "Simple sorting task with immediate success",
				Materials:   []string{"2 baskets", "5 large colorful objects", "Timer"},
				Steps: []string{
					"Set a timer for 2 minutes only",
					"Show 2 baskets: red objects and blue objects",
					"Start with just 3 objects total",
					"Celebrate each correct placement immediately",
					"Stop before the student gets frustrated",
				},
				Duration:     "2-3 minutes",
				SupportLevel: "immediate support",
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)turn[\s\-]?taking|sharing|won't share|grabbing|taking toys`),
			activity: types.Activity{
				Name:        "Simple Turn-Taking with Timer",
				Type:        "basic_social_skills",
				Description: "Very basic turn-taking with a highly preferred item and a visual timer",
				Materials:   []string{"One highly preferred toy", "Visual timer", "Turn-taking cards"},
				Steps: []string{
					"Start with just 10-15 seconds per turn",
					"Use a visual timer the student can watch count down",
					"Hold up the My Turn and Your Turn cards at each switch",
					"Hand over the item the moment the timer ends",
					"Celebrate waiting behavior immediately",
				},
				Duration:     "3-5 minutes total",
				SupportLevel: "immediate support",
			},
		},
	},
	types.ConditionProgressing: {
		{
			pattern: regexp.MustCompile(`(?i)count|counting|numbers|math`),
			activity: types.Activity{
				Name:        "Counting Bears Adventure",
				Type:        "math_support",
				Description: "Use teddy bear counters in favorite colors",
				Materials:   []string{"Teddy bear counters", "Ice cube trays", "Number cards 1-10"},
				Steps: []string{
					"Start with 5 colorful teddy bears",
					"Show how to place one bear in each ice cube compartment",
					"Count together: one bear, two bears, three bears",
					"Let the student try with 3 bears first, then build up",
					"Sing counting songs while placing bears",
				},
				Duration:     "8-12 minutes",
				SupportLevel: "developing with support",
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)bantu|bantuan|needs help|with help`),
			activity: types.Activity{
				Name:        "Hand-Over-Hand Number Matching",
				Type:        "assisted_learning",
				Description: "Match number cards 1-3 with physical guidance",
				Materials:   []string{"Large number cards 1-3", "Matching objects", "Visual supports"},
				Steps: []string{
					"Place number card 1 on the table",
					"Guide the student's hand to pick up one object",
					"Help place the object on the number card",
					"Gradually reduce physical support",
					"Celebrate each success immediately",
				},
				Duration:     "5-8 minutes",
				SupportLevel: "developing with support",
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)turn[\s\-]?taking|sharing|social skills|playing with others`),
			activity: types.Activity{
				Name:        "Turn-Taking with Visual Supports",
				Type:        "social_skills_development",
				Description: "Practice turn-taking with clear visual cues and a structured routine",
				Materials:   []string{"Preferred activity", "Turn-taking visual cards", "Sand timer", "Social story about turn-taking"},
				Steps: []string{
					"Read a simple social story about turn-taking first",
					"Show the My Turn and Your Turn cards clearly",
					"Start with 30-second turns using the sand timer",
					"Model the language: my turn now, your turn next",
					"Practice with an adult first, then introduce a peer",
					"Gradually increase turn length to 1-2 minutes",
				},
				Duration:     "10-15 minutes",
				SupportLevel: "developing with support",
			},
		},
	},
	types.ConditionThriving: {
		{
			pattern: regexp.MustCompile(`(?i)mandiri|sendiri|independent|can do alone`),
			activity: types.Activity{
				Name:        "Multi-Step Problem Solving",
				Type:        "independent_challenge",
				Description: "Complete a 4-step sequence independently",
				Materials:   []string{"Complex puzzle", "Multi-step instructions", "Self-check list"},
				Steps: []string{
					"Present a 4-step visual instruction card",
					"Let the student interpret the steps independently",
					"Provide materials but minimal guidance",
					"Have the student self-check work against a model",
					"Encourage problem-solving when stuck",
				},
				Duration:     "12-15 minutes",
				SupportLevel: "independent challenge",
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)shapes|colors|sorting|classification`),
			activity: types.Activity{
				Name:        "Complex Shape Sorting Challenge",
				Type:        "advanced_academic",
				Description: "Sort shapes by multiple attributes independently",
				Materials:   []string{"Shapes in multiple colors and sizes", "Sorting mats", "Recording sheet"},
				Steps: []string{
					"Present shapes with 3 attributes: color, size, shape",
					"Let the student create their own sorting rule",
					"Have the student explain the sorting logic",
					"Record results on the sheet",
					"Have the student teach the rule to a peer",
				},
				Duration:     "15-18 minutes",
				SupportLevel: "independent challenge",
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)turn[\s\-]?taking|sharing|social skills|peer interaction|group work`),
			activity: types.Activity{
				Name:        "Flexible Turn-Taking Leadership",
				Type:        "advanced_social_skills",
				Description: "Lead turn-taking activities with peers and teach others",
				Materials:   []string{"Multiple activities for choice", "Turn-taking rule cards", "Timer options", "Peer group"},
				Steps: []string{
					"Let the student choose an activity and explain the rules to peers",
					"Have the student model appropriate turn-taking language",
					"Have the student help peers negotiate turn length and order",
					"Have the student lead a short reflection afterwards",
				},
				Duration:     "20-25 minutes",
				SupportLevel: "independent challenge",
			},
		},
	},
}

// defaultActivities are used when no keyword pattern matches the note.
var defaultActivities = map[types.Condition]types.Activity{
	types.ConditionStruggling: {
		Name:        "Basic Calming Activity",
		Type:        "default_calming",
		Description: "Simple sensory break to help the student regulate",
		Materials:   []string{"Quiet space", "Preferred comfort item"},
		Steps: []string{
			"Offer a quiet space away from stimulation",
			"Provide the preferred comfort item",
			"Use a calm, quiet voice",
			"Wait for the student to self-regulate",
		},
		Duration:     "5-10 minutes",
		SupportLevel: "immediate support",
	},
	types.ConditionProgressing: {
		Name:        "Supported Learning Activity",
		Type:        "default_supported",
		Description: "Simple task with adult guidance",
		Materials:   []string{"Age-appropriate materials", "Visual supports"},
		Steps: []string{
			"Present a simple, clear task",
			"Provide visual and verbal prompts",
			"Offer physical guidance as needed",
			"Celebrate small successes",
		},
		Duration:     "5-8 minutes",
		SupportLevel: "developing with support",
	},
	types.ConditionThriving: {
		Name:        "Independent Challenge",
		Type:        "default_independent",
		Description: "Self-directed learning opportunity",
		Materials:   []string{"Challenging but achievable materials"},
		Steps: []string{
			"Present clear expectations",
			"Allow independent problem-solving",
			"Provide encouragement from a distance",
			"Celebrate achievement and effort",
		},
		Duration:     "10-15 minutes",
		SupportLevel: "independent challenge",
	},
}

// interestKeywords maps an interest tag to the free-text keywords that
// signal it.
var interestKeywords = []struct {
	interest string
	keywords []string
}{
	{"bears", []string{"bear", "teddy"}},
	{"cars", []string{"car", "vehicle", "truck"}},
	{"animals", []string{"animal", "pet", "dog", "cat"}},
	{"music", []string{"music", "song", "singing"}},
	{"colors", []string{"color", "colorful", "rainbow"}},
	{"blocks", []string{"block", "building", "lego"}},
	{"books", []string{"book", "story", "reading"}},
	{"art", []string{"art", "drawing", "painting", "craft"}},
}
