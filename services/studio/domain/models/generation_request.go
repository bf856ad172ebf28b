package models

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Styles are the branding styles offered to users.
var Styles = []string{"Brandable", "Modern", "Luxury", "Techy", "Two-word"}

// DefaultStyle is used when a request names no style.
const DefaultStyle = "Brandable"

// DefaultTLD is used when a request names no TLDs.
const DefaultTLD = ".com"

// tldPattern admits letters-only extensions such as ".io" or ".co.uk", so no
// generated name can pick up a digit from its TLD.
var tldPattern = regexp.MustCompile(`^\.[a-z]{2,}(\.[a-z]{2,})?$`)

// GenerationRequest holds the inputs of one name generation.
type GenerationRequest struct {
	Prompt string
	Style  string
	TLDs   []string
}

// NewGenerationRequest trims and normalizes the inputs. TLDs are lower-cased,
// given a leading dot, and deduplicated in order; malformed ones (digits,
// hyphens, single letters) are dropped and an empty set becomes [".com"].
// Only an empty prompt is rejected.
func NewGenerationRequest(prompt, style string, tlds []string) (GenerationRequest, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return GenerationRequest{}, fmt.Errorf("prompt must not be empty")
	}

	style = strings.TrimSpace(style)
	if style == "" {
		style = DefaultStyle
	}

	var set []string
	for _, t := range tlds {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, ".") {
			t = "." + t
		}
		if !tldPattern.MatchString(t) || slices.Contains(set, t) {
			continue
		}
		set = append(set, t)
	}
	if len(set) == 0 {
		set = []string{DefaultTLD}
	}

	return GenerationRequest{Prompt: prompt, Style: style, TLDs: set}, nil
}
