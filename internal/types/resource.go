package types

// Resource is an educational material item to be ranked against a profile.
// The engine only reads Tags, Format, TextLevel and VisualSupport; the rest
// is carried through untouched for the consumer.
type Resource struct {
	ID            string   `json:"id" yaml:"id" validate:"required"`
	Title         string   `json:"title,omitempty" yaml:"title,omitempty"`
	Tags          []string `json:"tags" yaml:"tags"`
	Format        string   `json:"format" yaml:"format" validate:"required"`
	TextLevel     *string  `json:"text_level,omitempty" yaml:"text_level,omitempty"`
	VisualSupport *bool    `json:"visual_support,omitempty" yaml:"visual_support,omitempty"`
}

// MatchResult pairs a resource with its match score against one profile.
type MatchResult struct {
	Resource              Resource `json:"resource"`
	MatchScore            int      `json:"match_score"`
	AdaptationSuggestions []string `json:"adaptation_suggestions"`
}
