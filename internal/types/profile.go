// Package types provides type definitions for structured data used throughout the profile engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Level is an ordinal support classification for one assessment domain.
type Level string

// Level values.
const (
	LevelLow     Level = "low"
	LevelMedium  Level = "medium"
	LevelHigh    Level = "high"
	LevelUnknown Level = "unknown"
)

// Source records the provenance of a profile.
type Source string

// Source values.
const (
	SourceManual  Source = "manual"
	SourceDataset Source = "dataset"
)

// AgeGroup is the school-stage bucket derived from a student's age.
type AgeGroup string

// AgeGroup values.
const (
	AgeGroupEarlyYears    AgeGroup = "early-years"
	AgeGroupPrimary       AgeGroup = "primary"
	AgeGroupSecondary     AgeGroup = "secondary"
	AgeGroupPostSecondary AgeGroup = "post-secondary"
	AgeGroupUnknown       AgeGroup = "unknown"
)

// Modality is a preferred learning channel.
type Modality string

// Modality values.
const (
	ModalityVisual      Modality = "visual"
	ModalityAuditory    Modality = "auditory"
	ModalityKinesthetic Modality = "kinesthetic"
)

// GroupPreference describes the grouping a student works best in.
type GroupPreference string

// GroupPreference values.
const (
	GroupIndividual GroupPreference = "individual"
	GroupSmallGroup GroupPreference = "small-group"
	GroupFlexible   GroupPreference = "flexible"
)

// CommLevel is the expressive communication stage of a student.
type CommLevel string

// CommLevel values.
const (
	CommEmerging   CommLevel = "emerging"
	CommDeveloping CommLevel = "developing"
	CommFluent     CommLevel = "fluent"
)

// CommunicationMode describes the primary channel a student communicates through.
type CommunicationMode string

// CommunicationMode values.
const (
	ModeVerbal       CommunicationMode = "verbal"
	ModeMixed        CommunicationMode = "mixed"
	ModeAugmentative CommunicationMode = "augmentative"
)

// AttentionSpan buckets how long a student can stay on one task.
type AttentionSpan string

// AttentionSpan values.
const (
	AttentionShort    AttentionSpan = "short"
	AttentionModerate AttentionSpan = "moderate"
	AttentionLong     AttentionSpan = "long"
)

// ProcessingSpeed buckets how quickly a student works through new material.
type ProcessingSpeed string

// ProcessingSpeed values.
const (
	ProcessingDeliberate ProcessingSpeed = "deliberate"
	ProcessingSteady     ProcessingSpeed = "steady"
	ProcessingBrisk      ProcessingSpeed = "brisk"
)

// StructureLevel describes how much external structure a student needs.
type StructureLevel string

// StructureLevel values.
const (
	StructureHigh     StructureLevel = "high"
	StructureModerate StructureLevel = "moderate"
	StructureFlexible StructureLevel = "flexible"
)

// Demographics holds the non-assessment facts about a student.
type Demographics struct {
	Age      *int     `json:"age"`
	AgeGroup AgeGroup `json:"age_group"`
}

// SupportLevels maps each assessment domain to its classified support level.
type SupportLevels struct {
	Communication Level `json:"communication"`
	Social        Level `json:"social"`
	Repetitive    Level `json:"repetitive"`
	Sensory       Level `json:"sensory"`
	Attention     Level `json:"attention"`
	Overall       Level `json:"overall"`
}

// LearningProfile holds derived learning attributes and the strength /
// challenge / support-need tags that drive recommendations.
type LearningProfile struct {
	AttentionSpan      AttentionSpan   `json:"attention_span"`
	ProcessingSpeed    ProcessingSpeed `json:"processing_speed"`
	LearningModalities []Modality      `json:"learning_modalities"`
	Strengths          []string        `json:"strengths"`
	Challenges         []string        `json:"challenges"`
	SupportNeeds       []string        `json:"support_needs"`
}

// CommunicationProfile describes how the student communicates.
type CommunicationProfile struct {
	Level          CommLevel         `json:"level"`
	Mode           CommunicationMode `json:"mode"`
	VerbalLevel    Level             `json:"verbal_level"`
	NonverbalLevel Level             `json:"nonverbal_level"`
	Strategies     []string          `json:"strategies"`
}

// SocialProfile describes the student's social interaction needs.
type SocialProfile struct {
	InteractionLevel Level           `json:"interaction_level"`
	GroupPreference  GroupPreference `json:"group_preference"`
	Strategies       []string        `json:"strategies"`
}

// SensoryProfile describes sensory sensitivities overall and per channel.
type SensoryProfile struct {
	Overall    Level    `json:"overall"`
	Sound      Level    `json:"sound"`
	Light      Level    `json:"light"`
	Touch      Level    `json:"touch"`
	Strategies []string `json:"strategies"`
}

// BehaviorProfile describes repetitive behaviors and structure reliance.
type BehaviorProfile struct {
	RepetitiveLevel Level          `json:"repetitive_level"`
	RoutineReliance Level          `json:"routine_reliance"`
	StructureLevel  StructureLevel `json:"structure_level"`
	StructuralNeeds []string       `json:"structural_needs"`
	Strategies      []string       `json:"strategies"`
}

// Recommendations is the teacher-facing output of the recommendation rules.
type Recommendations struct {
	InstructionalStrategies    []string `json:"instructional_strategies"`
	EnvironmentalModifications []string `json:"environmental_modifications"`
	AssessmentAdaptations      []string `json:"assessment_adaptations"`
}

// ContextEntry is one "label: value" descriptor of the AI prompt context.
type ContextEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SupportProfile is the durable output aggregate of profile derivation.
// It is created once by the synthesizer and only ever replaced wholesale;
// ID, Source and CreatedAt are assigned by the calling collaborator.
type SupportProfile struct {
	ID        string    `json:"id,omitempty"`
	Source    Source    `json:"source"`
	CreatedAt time.Time `json:"created_at,omitzero"`

	Demographics         Demographics         `json:"demographics"`
	SupportLevels        SupportLevels        `json:"support_levels"`
	LearningProfile      LearningProfile      `json:"learning_profile"`
	CommunicationProfile CommunicationProfile `json:"communication_profile"`
	SocialProfile        SocialProfile        `json:"social_profile"`
	SensoryProfile       SensoryProfile       `json:"sensory_profile"`
	BehaviorProfile      BehaviorProfile      `json:"behavior_profile"`

	EducationalRecommendations Recommendations `json:"educational_recommendations"`
	AIPromptContext            []ContextEntry  `json:"ai_prompt_context"`
}

// PrefersModality reports whether the profile's learning modalities include m.
func (p *SupportProfile) PrefersModality(m Modality) bool {
	for _, mod := range p.LearningProfile.LearningModalities {
		if mod == m {
			return true
		}
	}
	return false
}
