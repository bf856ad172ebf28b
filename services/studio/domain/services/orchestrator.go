package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/telemetry"
	"github.com/kenone20/domainogen/services/studio/domain"
	"github.com/kenone20/domainogen/services/studio/domain/models"
)

var tracer = otel.Tracer("github.com/kenone20/domainogen/services/studio")

const (
	defaultModelTimeout = 30 * time.Second
	defaultNameCount    = 20
	placeholderSeedLen  = 15

	// defaultPlaceholderSeed stands in for a blank logo prompt.
	defaultPlaceholderSeed = "domainogen"
)

// Orchestrator produces name candidates, analyses and logos. Every model
// failure degrades to the deterministic mock output; only logo generation can
// fail, and only when the placeholder source fails too.
type Orchestrator struct {
	text        TextModel
	image       ImageModel
	placeholder PlaceholderSource
	age         AgeSource
	log         logger.Logger

	timeout   time.Duration
	nameCount int
	fallbacks *telemetry.Counter
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTextModel sets the text model. Without one every generation and
// analysis is served from the mock path.
func WithTextModel(m TextModel) Option { return func(o *Orchestrator) { o.text = m } }

// WithImageModel sets the image model. Without one logos come from the
// placeholder source.
func WithImageModel(m ImageModel) Option { return func(o *Orchestrator) { o.image = m } }

// WithModelTimeout bounds each model call.
func WithModelTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithNameCount sets how many candidates a generation requests.
func WithNameCount(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.nameCount = n
		}
	}
}

// NewOrchestrator returns an Orchestrator. placeholder and age are required.
func NewOrchestrator(placeholder PlaceholderSource, age AgeSource, log logger.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		placeholder: placeholder,
		age:         age,
		log:         log,
		timeout:     defaultModelTimeout,
		nameCount:   defaultNameCount,
		fallbacks:   telemetry.NewCounter("domainogen.studio.fallbacks", "Studio operations served from the mock path"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// MockOnly reports whether no text model is configured.
func (o *Orchestrator) MockOnly() bool { return o.text == nil }

// GenerateDomains returns pending candidates for req and where they came from.
func (o *Orchestrator) GenerateDomains(ctx context.Context, req models.GenerationRequest) ([]models.CandidateDomain, models.Provenance) {
	ctx, span := tracer.Start(ctx, "studio.GenerateDomains")
	defer span.End()

	reply, err := o.callText(ctx, generationPrompt(req, o.nameCount), generationSchema)
	if err == nil {
		var candidates []models.CandidateDomain
		if candidates, err = parseGeneration(reply); err == nil {
			span.SetAttributes(attribute.String("sourced_from", string(models.SourcedFromModel)))
			return candidates, models.SourcedFromModel
		}
	}

	o.fallback(ctx, "generate", err)
	span.SetAttributes(attribute.String("sourced_from", string(models.SourcedFromMock)))
	return MockDomains(req, o.nameCount), models.SourcedFromMock
}

// AnalyzeDomain appraises name. The age estimate is fetched first and always
// merged into the result, whichever path produced it.
func (o *Orchestrator) AnalyzeDomain(ctx context.Context, name string) models.Analysis {
	ctx, span := tracer.Start(ctx, "studio.AnalyzeDomain")
	defer span.End()

	age := o.age.EstimateAge(ctx, name)

	reply, err := o.callText(ctx, analysisPrompt(name, age), analysisSchema)
	if err == nil {
		var a models.Analysis
		if a, err = parseAnalysis(reply, name, age); err == nil {
			span.SetAttributes(attribute.String("sourced_from", string(models.SourcedFromModel)))
			return a
		}
	}

	o.fallback(ctx, "analyze", err)
	span.SetAttributes(attribute.String("sourced_from", string(models.SourcedFromMock)))
	return MockAnalysis(name, age)
}

// GenerateImage draws a logo for prompt, falling back to a placeholder image.
// A blank prompt goes straight to the placeholder. It returns
// domain.ErrImageUnavailable only when the placeholder fetch fails.
func (o *Orchestrator) GenerateImage(ctx context.Context, prompt string) (models.Logo, error) {
	ctx, span := tracer.Start(ctx, "studio.GenerateImage")
	defer span.End()

	prompt = strings.TrimSpace(prompt)

	err := domain.ErrModelUnavailable
	if o.image != nil && prompt != "" {
		var data []byte
		data, err = o.callImage(ctx, prompt)
		if err == nil {
			return newLogo(data, models.SourcedFromModel), nil
		}
	}
	o.fallback(ctx, "logo", err)

	data, err := o.placeholder.Fetch(ctx, placeholderSeed(prompt))
	if err != nil {
		span.RecordError(err)
		o.log.ErrorContext(ctx, "placeholder image fetch failed", "error", err)
		return models.Logo{}, fmt.Errorf("%w: %w", domain.ErrImageUnavailable, err)
	}
	return newLogo(data, models.SourcedFromMock), nil
}

func (o *Orchestrator) callText(ctx context.Context, prompt string, schema *Schema) ([]byte, error) {
	if o.text == nil {
		return nil, domain.ErrModelUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return o.text.GenerateJSON(ctx, prompt, schema)
}

func (o *Orchestrator) callImage(ctx context.Context, prompt string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	data, err := o.image.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrNonConforming)
	}
	return data, nil
}

// fallback records a switch to the mock path. An unconfigured model is the
// expected state in mock-only mode and logs at debug level.
func (o *Orchestrator) fallback(ctx context.Context, operation string, cause error) {
	reason := "error"
	switch {
	case errors.Is(cause, domain.ErrModelUnavailable):
		reason = "unconfigured"
	case errors.Is(cause, domain.ErrNonConforming):
		reason = "nonconforming"
	case errors.Is(cause, context.DeadlineExceeded):
		reason = "timeout"
	}
	o.fallbacks.Add(ctx, "operation", operation, "reason", reason)

	if reason == "unconfigured" {
		o.log.DebugContext(ctx, "serving mock result", "operation", operation)
		return
	}
	o.log.WarnContext(ctx, "model call failed, serving mock result",
		"operation", operation, "reason", reason, "error", cause)
}

func newLogo(data []byte, from models.Provenance) models.Logo {
	return models.Logo{
		Data:        base64.StdEncoding.EncodeToString(data),
		MIMEType:    mimetype.Detect(data).String(),
		SourcedFrom: from,
	}
}

// placeholderSeed keeps the first characters of prompt as the image seed.
func placeholderSeed(prompt string) string {
	if prompt == "" {
		return defaultPlaceholderSeed
	}
	r := []rune(prompt)
	if len(r) > placeholderSeedLen {
		r = r[:placeholderSeedLen]
	}
	return string(r)
}
