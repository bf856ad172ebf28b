package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kenone20/domainogen/services/studio/domain"
	"github.com/kenone20/domainogen/services/studio/domain/models"
)

// candidatePattern accepts letters-only labels with one or more TLD parts.
var candidatePattern = regexp.MustCompile(`^[a-z]+(\.[a-z]+)+$`)

// SanitizeNames lower-cases, drops names containing digits or other
// non-conforming characters, and removes duplicates in order.
func SanitizeNames(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.ToLower(strings.TrimSpace(name))
		if !candidatePattern.MatchString(name) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

type generatedName struct {
	Domain string `json:"domain"`
}

// parseGeneration decodes a generation reply into sanitized candidates. A
// reply that does not decode, or leaves nothing after sanitizing, is
// non-conforming.
func parseGeneration(reply []byte) ([]models.CandidateDomain, error) {
	var names []generatedName
	if err := json.Unmarshal(reply, &names); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNonConforming, err)
	}

	raw := make([]string, 0, len(names))
	for _, n := range names {
		raw = append(raw, n.Domain)
	}

	clean := SanitizeNames(raw)
	if len(clean) == 0 {
		return nil, fmt.Errorf("%w: no usable names in reply", domain.ErrNonConforming)
	}

	out := make([]models.CandidateDomain, 0, len(clean))
	for _, n := range clean {
		out = append(out, models.NewCandidate(n))
	}
	return out, nil
}

type analysisReply struct {
	Brandability              int      `json:"brandability" validate:"gte=1,lte=10"`
	BrandabilityJustification string   `json:"brandabilityJustification" validate:"required"`
	SEOStrength               int      `json:"seoStrength" validate:"gte=1,lte=10"`
	SEOStrengthJustification  string   `json:"seoStrengthJustification" validate:"required"`
	EstimatedValue            int      `json:"estimatedValue" validate:"gte=0"`
	Summary                   string   `json:"summary" validate:"required"`
	Tagline                   string   `json:"tagline" validate:"required"`
	LogoPrompt                string   `json:"logoPrompt" validate:"required"`
	ColorPalette              []string `json:"colorPalette" validate:"len=4,dive,hexcolor"`
	Risks                     string   `json:"risks" validate:"required"`
	AlternativeSuggestions    []string `json:"alternativeSuggestions" validate:"min=3,max=5,dive,required"`
	MetaDescription           string   `json:"metaDescription" validate:"required"`
	MetaKeywords              string   `json:"metaKeywords" validate:"required"`
}

var replyValidator = validator.New(validator.WithRequiredStructEnabled())

// parseAnalysis decodes and validates an analysis reply. The age is merged
// from the oracle, never taken from the model.
func parseAnalysis(reply []byte, name, age string) (models.Analysis, error) {
	var r analysisReply
	if err := json.Unmarshal(reply, &r); err != nil {
		return models.Analysis{}, fmt.Errorf("%w: %w", domain.ErrNonConforming, err)
	}
	if err := replyValidator.Struct(r); err != nil {
		return models.Analysis{}, fmt.Errorf("%w: %w", domain.ErrNonConforming, err)
	}

	return models.Analysis{
		Domain:                    name,
		Brandability:              r.Brandability,
		BrandabilityJustification: r.BrandabilityJustification,
		SEOStrength:               r.SEOStrength,
		SEOStrengthJustification:  r.SEOStrengthJustification,
		EstimatedValue:            r.EstimatedValue,
		Summary:                   r.Summary,
		LogoSuggestion:            models.LogoSuggestion{Prompt: r.LogoPrompt},
		ColorPalette:              r.ColorPalette,
		Tagline:                   r.Tagline,
		DomainAge:                 age,
		AlternativeSuggestions:    r.AlternativeSuggestions,
		Risks:                     r.Risks,
		MetaDescription:           r.MetaDescription,
		MetaKeywords:              r.MetaKeywords,
		SourcedFrom:               models.SourcedFromModel,
	}, nil
}
