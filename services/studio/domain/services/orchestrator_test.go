package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/services/studio/domain"
	"github.com/kenone20/domainogen/services/studio/domain/models"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fakeText struct {
	reply   []byte
	err     error
	prompts []string
	block   bool
}

func (f *fakeText) GenerateJSON(ctx context.Context, prompt string, _ *Schema) ([]byte, error) {
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.reply, f.err
}

type fakeImage struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeImage) GenerateImage(context.Context, string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

type fakePlaceholder struct {
	data  []byte
	err   error
	seeds []string
}

func (f *fakePlaceholder) Fetch(_ context.Context, seed string) ([]byte, error) {
	f.seeds = append(f.seeds, seed)
	return f.data, f.err
}

type fixedAge string

func (a fixedAge) EstimateAge(context.Context, string) string { return string(a) }

func newOrchestrator(p *fakePlaceholder, opts ...Option) *Orchestrator {
	if p == nil {
		p = &fakePlaceholder{data: pngBytes}
	}
	return NewOrchestrator(p, fixedAge("12 years"), logger.Discard(), opts...)
}

func mustRequest(t *testing.T, prompt string, tlds ...string) models.GenerationRequest {
	t.Helper()
	req, err := models.NewGenerationRequest(prompt, "Modern", tlds)
	if err != nil {
		t.Fatalf("NewGenerationRequest: %v", err)
	}
	return req
}

func TestGenerateDomains_MockOnly(t *testing.T) {
	o := newOrchestrator(nil)
	if !o.MockOnly() {
		t.Fatal("orchestrator without a text model must be mock-only")
	}
	got, from := o.GenerateDomains(context.Background(), mustRequest(t, "a SaaS for online courses"))
	if from != models.SourcedFromMock {
		t.Fatalf("sourced_from = %q, want mock", from)
	}
	if len(got) != defaultNameCount {
		t.Fatalf("got %d candidates, want %d", len(got), defaultNameCount)
	}
}

func TestGenerateDomains_MockNamesNeverContainDigits(t *testing.T) {
	o := newOrchestrator(nil)
	got, _ := o.GenerateDomains(context.Background(), mustRequest(t, "coffee", "web3", "c0m", ".io"))
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}
	for _, c := range got {
		if strings.ContainsAny(c.Name, "0123456789") {
			t.Fatalf("candidate %q contains a digit", c.Name)
		}
		if !strings.HasSuffix(c.Name, ".io") {
			t.Fatalf("candidate %q must use the only well-formed tld", c.Name)
		}
	}
}

func TestGenerateDomains_Model(t *testing.T) {
	text := &fakeText{reply: []byte(`[{"domain":"Learnly.io"},{"domain":"course4u.com"},{"domain":"edflow.com"}]`)}
	o := newOrchestrator(nil, WithTextModel(text))

	got, from := o.GenerateDomains(context.Background(), mustRequest(t, "online courses", ".io", ".com"))
	if from != models.SourcedFromModel {
		t.Fatalf("sourced_from = %q, want real", from)
	}
	if len(got) != 2 || got[0].Name != "learnly.io" || got[1].Name != "edflow.com" {
		t.Fatalf("unexpected candidates %+v", got)
	}
	if len(text.prompts) != 1 || !strings.Contains(text.prompts[0], `"online courses"`) ||
		!strings.Contains(text.prompts[0], ".io, .com") {
		t.Fatalf("prompt does not carry the request: %q", text.prompts)
	}
}

func TestGenerateDomains_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		text *fakeText
	}{
		{"model error", &fakeText{err: errors.New("quota exceeded")}},
		{"non-conforming reply", &fakeText{reply: []byte(`not json`)}},
		{"all names rejected", &fakeText{reply: []byte(`[{"domain":"123.com"}]`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrchestrator(nil, WithTextModel(tt.text), WithNameCount(5))
			got, from := o.GenerateDomains(context.Background(), mustRequest(t, "coffee"))
			if from != models.SourcedFromMock || len(got) != 5 {
				t.Fatalf("expected 5 mock candidates, got %d from %q", len(got), from)
			}
		})
	}
}

func TestGenerateDomains_TimeoutFallsBack(t *testing.T) {
	o := newOrchestrator(nil, WithTextModel(&fakeText{block: true}), WithModelTimeout(20*time.Millisecond))
	start := time.Now()
	_, from := o.GenerateDomains(context.Background(), mustRequest(t, "coffee"))
	if from != models.SourcedFromMock {
		t.Fatalf("sourced_from = %q, want mock", from)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("model timeout was not applied")
	}
}

func TestAnalyzeDomain_MockMergesAge(t *testing.T) {
	o := newOrchestrator(nil)
	a := o.AnalyzeDomain(context.Background(), "love.com")
	if a.DomainAge != "12 years" {
		t.Fatalf("domain_age = %q, want %q", a.DomainAge, "12 years")
	}
	if len(a.ColorPalette) != 4 || a.Risks == "" || a.SourcedFrom != models.SourcedFromMock {
		t.Fatalf("unexpected mock analysis %+v", a)
	}
}

func TestAnalyzeDomain_ModelMergesAge(t *testing.T) {
	body, _ := json.Marshal(validReply())
	text := &fakeText{reply: body}
	o := newOrchestrator(nil, WithTextModel(text))

	a := o.AnalyzeDomain(context.Background(), "zenflow.io")
	if a.SourcedFrom != models.SourcedFromModel {
		t.Fatalf("sourced_from = %q, want real", a.SourcedFrom)
	}
	if a.DomainAge != "12 years" {
		t.Fatalf("domain_age = %q, want oracle value", a.DomainAge)
	}
	if !strings.Contains(text.prompts[0], `"12 years"`) {
		t.Fatalf("analysis prompt must carry the age: %q", text.prompts[0])
	}
}

func TestAnalyzeDomain_InvalidReplyFallsBack(t *testing.T) {
	m := validReply()
	m["colorPalette"] = []string{"#000000"}
	body, _ := json.Marshal(m)
	o := newOrchestrator(nil, WithTextModel(&fakeText{reply: body}))

	a := o.AnalyzeDomain(context.Background(), "zenflow.io")
	if a.SourcedFrom != models.SourcedFromMock || len(a.ColorPalette) != 4 {
		t.Fatalf("expected mock analysis, got %+v", a)
	}
}

func TestGenerateImage_Model(t *testing.T) {
	p := &fakePlaceholder{data: pngBytes}
	o := newOrchestrator(p, WithImageModel(&fakeImage{data: pngBytes}))

	logo, err := o.GenerateImage(context.Background(), "A minimalist logo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logo.SourcedFrom != models.SourcedFromModel || logo.MIMEType != "image/png" {
		t.Fatalf("unexpected logo %+v", logo)
	}
	if len(p.seeds) != 0 {
		t.Fatal("placeholder must not be fetched when the model succeeds")
	}
	raw, err := base64.StdEncoding.DecodeString(logo.Data)
	if err != nil || string(raw) != string(pngBytes) {
		t.Fatal("logo data must be the base64 image")
	}
}

func TestGenerateImage_PlaceholderFallback(t *testing.T) {
	tests := []struct {
		name  string
		image ImageModel
	}{
		{"no model", nil},
		{"model error", &fakeImage{err: errors.New("safety filter")}},
		{"empty image", &fakeImage{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePlaceholder{data: pngBytes}
			opts := []Option{}
			if tt.image != nil {
				opts = append(opts, WithImageModel(tt.image))
			}
			o := newOrchestrator(p, opts...)

			logo, err := o.GenerateImage(context.Background(), "A minimalist logo for a company")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if logo.SourcedFrom != models.SourcedFromMock {
				t.Fatalf("sourced_from = %q, want mock", logo.SourcedFrom)
			}
			if len(p.seeds) != 1 || p.seeds[0] != "A minimalist lo" {
				t.Fatalf("unexpected placeholder seeds %q", p.seeds)
			}
		})
	}
}

func TestGenerateImage_BothFail(t *testing.T) {
	p := &fakePlaceholder{err: errors.New("503")}
	o := newOrchestrator(p, WithImageModel(&fakeImage{err: errors.New("down")}))

	if _, err := o.GenerateImage(context.Background(), "logo"); !errors.Is(err, domain.ErrImageUnavailable) {
		t.Fatalf("expected ErrImageUnavailable, got %v", err)
	}
}

func TestGenerateImage_BlankPromptUsesPlaceholder(t *testing.T) {
	p := &fakePlaceholder{data: pngBytes}
	img := &fakeImage{data: pngBytes}
	o := newOrchestrator(p, WithImageModel(img))

	logo, err := o.GenerateImage(context.Background(), "   ")
	if err != nil {
		t.Fatalf("blank prompt must not fail: %v", err)
	}
	if logo.SourcedFrom != models.SourcedFromMock {
		t.Fatalf("sourced_from = %q, want mock", logo.SourcedFrom)
	}
	if img.calls != 0 {
		t.Fatalf("image model called %d times for a blank prompt", img.calls)
	}
	if len(p.seeds) != 1 || p.seeds[0] != defaultPlaceholderSeed {
		t.Fatalf("seeds = %v, want [%s]", p.seeds, defaultPlaceholderSeed)
	}
}

func TestPlaceholderSeed(t *testing.T) {
	if got := placeholderSeed("short"); got != "short" {
		t.Errorf("placeholderSeed(short) = %q", got)
	}
	if got := placeholderSeed("café logo with accents"); got != "café logo with " {
		t.Errorf("placeholderSeed keeps runes, got %q", got)
	}
}
