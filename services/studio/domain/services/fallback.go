package services

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/kenone20/domainogen/services/studio/domain/models"
)

var (
	mockPrefixes = []string{"", "get", "try", "go", "my", "the"}
	mockSuffixes = []string{"ify", "labs", "flow", "zen", "next", "co", "base", "hub"}
)

// MaxMockNames is the number of distinct labels the mock generator can build
// from one keyword.
var MaxMockNames = len(mockPrefixes) * len(mockSuffixes)

const defaultKeyword = "brand"

// keyword picks the first prompt word of at least three letters, keeping
// letters only. Shorter words are used when nothing longer exists.
func keyword(prompt string) string {
	var fallback string
	for _, word := range strings.Fields(strings.ToLower(prompt)) {
		letters := strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' {
				return r
			}
			return -1
		}, word)
		if len(letters) >= 3 {
			return letters
		}
		if fallback == "" {
			fallback = letters
		}
	}
	if fallback == "" {
		return defaultKeyword
	}
	return fallback
}

// MockDomains builds count distinct pending candidates from the prompt's
// keyword. Labels never contain digits; TLDs rotate through the request's
// set. count is clamped to [1, MaxMockNames].
func MockDomains(req models.GenerationRequest, count int) []models.CandidateDomain {
	count = max(1, min(count, MaxMockNames))

	tlds := req.TLDs
	if len(tlds) == 0 {
		tlds = []string{models.DefaultTLD}
	}

	kw := keyword(req.Prompt)
	out := make([]models.CandidateDomain, 0, count)
	for i := range count {
		prefix := mockPrefixes[(i/len(mockSuffixes))%len(mockPrefixes)]
		suffix := mockSuffixes[i%len(mockSuffixes)]
		out = append(out, models.NewCandidate(prefix+kw+suffix+tlds[i%len(tlds)]))
	}
	return out
}

func splitName(name string) (label, tld string) {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// MockAnalysis returns the deterministic analysis for name. Equal inputs give
// equal output; the estimated value is derived from a hash of the name.
func MockAnalysis(name, age string) models.Analysis {
	label, tld := splitName(name)

	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	value := 500 + int(h.Sum32()%5000)

	keywords := []string{label, "brand", "startup"}
	if tld != "" {
		keywords = append(keywords, tld)
	}

	return models.Analysis{
		Domain:                    name,
		Brandability:              8,
		BrandabilityJustification: "The name is short, catchy, and easy to spell.",
		SEOStrength:               7,
		SEOStrengthJustification:  fmt.Sprintf("Contains a relevant keyword that aligns with search intent; an age of %s shapes its authority.", age),
		EstimatedValue:            value,
		Summary: fmt.Sprintf(
			"The domain '%s' is highly brandable and memorable. Its inclusion of a strong keyword boosts its SEO potential, making it a valuable asset for a modern tech company.",
			name),
		LogoSuggestion: models.LogoSuggestion{
			Prompt: fmt.Sprintf("A minimalist logo for a company called '%s', clean, modern, abstract vector, professional.", label),
		},
		ColorPalette:           []string{"#4f46e5", "#10b981", "#f59e0b", "#ec4899"},
		Tagline:                fmt.Sprintf("Unlocking the Future with %s.", capitalize(label)),
		DomainAge:              age,
		AlternativeSuggestions: []string{label + "ly.co", "get" + label + ".app", label + "hq.io"},
		Risks:                  "The name might be too generic in a crowded market, requiring significant branding effort to stand out.",
		MetaDescription:        fmt.Sprintf("%s: a memorable, brandable home on the web at %s.", capitalize(label), name),
		MetaKeywords:           strings.Join(keywords, ", "),
		SourcedFrom:            models.SourcedFromMock,
	}
}
