package models

// LogoSuggestion carries the prompt for the logo image model.
type LogoSuggestion struct {
	Prompt string `json:"prompt"`
	URL    string `json:"url,omitempty"`
}

// Analysis is the appraisal of one domain. It is built once and never
// mutated afterwards.
type Analysis struct {
	Domain                    string         `json:"domain"`
	Brandability              int            `json:"brandability"`
	BrandabilityJustification string         `json:"brandability_justification"`
	SEOStrength               int            `json:"seo_strength"`
	SEOStrengthJustification  string         `json:"seo_strength_justification"`
	EstimatedValue            int            `json:"estimated_value"`
	Summary                   string         `json:"summary"`
	LogoSuggestion            LogoSuggestion `json:"logo_suggestion"`
	ColorPalette              []string       `json:"color_palette"`
	Tagline                   string         `json:"tagline"`
	DomainAge                 string         `json:"domain_age"`
	AlternativeSuggestions    []string       `json:"alternative_suggestions"`
	Risks                     string         `json:"risks"`
	MetaDescription           string         `json:"meta_description"`
	MetaKeywords              string         `json:"meta_keywords"`
	SourcedFrom               Provenance     `json:"sourced_from"`
}

// PaletteSize is the exact number of colors in every palette.
const PaletteSize = 4

// Logo is a generated or placeholder logo image.
type Logo struct {
	// Data is the base64-encoded image.
	Data        string     `json:"data"`
	MIMEType    string     `json:"mime_type"`
	SourcedFrom Provenance `json:"sourced_from"`
}
