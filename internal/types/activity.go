package types

// Assessment is a three-observation classroom check plus a free-text note,
// as recorded by a teacher during an activity. Observation values follow
// the original dataset vocabulary: "benar" (correct), "salah" (incorrect),
// or any phrase containing "bantu" (done with help).
type Assessment struct {
	Value1       string `json:"value_1"`
	Value2       string `json:"value_2"`
	Value3       string `json:"value_3"`
	ActivityNote string `json:"activity_note"`
}

// Condition is the classified readiness label for an assessment.
type Condition string

// Condition values, ordered from most to least support needed.
const (
	ConditionStruggling  Condition = "struggling"
	ConditionProgressing Condition = "progressing"
	ConditionThriving    Condition = "thriving"
)

// Activity is a concrete classroom activity suggestion.
type Activity struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Materials       []string `json:"materials"`
	Steps           []string `json:"steps"`
	Duration        string   `json:"duration"`
	SupportLevel    string   `json:"support_level"`
	Personalization string   `json:"personalization,omitempty"`
	AgeNote         string   `json:"age_note,omitempty"`
}
