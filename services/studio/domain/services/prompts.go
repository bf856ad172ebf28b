package services

import (
	"fmt"
	"strings"

	"github.com/kenone20/domainogen/services/studio/domain/models"
)

func generationPrompt(req models.GenerationRequest, count int) string {
	tlds := strings.Join(req.TLDs, ", ")
	return fmt.Sprintf(`You are a professional brand naming assistant. Generate %d unique, short, and catchy domain name ideas based on this concept: "%s". The desired branding style is "%s".

Follow these rules strictly:
1. Each name must be between 5 and 12 letters long, not counting the TLD.
2. Do not use numbers or hyphens.
3. Only use these TLDs: %s.
4. Names must sound professional and brandable.
5. Do not repeat a name.

Return a JSON array of objects, each with a single "domain" field holding the full domain name.`,
		count, req.Prompt, req.Style, tlds)
}

var generationSchema = &Schema{
	Type: TypeArray,
	Items: &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"domain": {Type: TypeString, Description: "The full domain name, for example brandify.io"},
		},
		Required: []string{"domain"},
	},
}

func analysisPrompt(domain, age string) string {
	return fmt.Sprintf(`You are a seasoned domain appraiser. Analyze the domain "%s". Its estimated registration age is "%s".

Weigh four pillars: commercial potential, TLD authority, brandability, and domain age. An aged domain carries more search authority than a new one.

Provide:
- brandability: a score from 1 to 10 with a one-sentence justification.
- seoStrength: a score from 1 to 10 with a justification that must reference the domain age.
- estimatedValue: an estimated resale value in whole US dollars.
- summary: a short appraisal.
- tagline: a marketing tagline.
- logoPrompt: a prompt for an image model to draw a logo.
- colorPalette: exactly 4 hex color codes.
- risks: the main risks of the name. This field is mandatory.
- alternativeSuggestions: 3 to 5 alternative domain names.
- metaDescription: an SEO meta description for a landing page.
- metaKeywords: comma-separated SEO meta keywords.`, domain, age)
}

var analysisSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"brandability":              {Type: TypeInteger, Description: "Score from 1 to 10"},
		"brandabilityJustification": {Type: TypeString},
		"seoStrength":               {Type: TypeInteger, Description: "Score from 1 to 10"},
		"seoStrengthJustification":  {Type: TypeString},
		"estimatedValue":            {Type: TypeInteger, Description: "Value in US dollars"},
		"summary":                   {Type: TypeString},
		"tagline":                   {Type: TypeString},
		"logoPrompt":                {Type: TypeString},
		"colorPalette":              {Type: TypeArray, Items: &Schema{Type: TypeString, Description: "Hex color code"}},
		"risks":                     {Type: TypeString},
		"alternativeSuggestions":    {Type: TypeArray, Items: &Schema{Type: TypeString}},
		"metaDescription":           {Type: TypeString},
		"metaKeywords":              {Type: TypeString},
	},
	Required: []string{
		"brandability", "brandabilityJustification", "seoStrength", "seoStrengthJustification",
		"estimatedValue", "summary", "tagline", "logoPrompt", "colorPalette", "risks",
		"alternativeSuggestions", "metaDescription", "metaKeywords",
	},
}
