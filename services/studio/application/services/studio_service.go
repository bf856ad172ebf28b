package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/requestctx"
	pkgvalidator "github.com/kenone20/domainogen/pkg/validator"
	"github.com/kenone20/domainogen/services/studio/domain"
	"github.com/kenone20/domainogen/services/studio/domain/models"
	domainsvcs "github.com/kenone20/domainogen/services/studio/domain/services"
)

// AvailabilityChecker resolves verdicts and age estimates. Implemented by the
// availability context.
type AvailabilityChecker interface {
	CheckMany(ctx context.Context, names []string) map[string]bool
	EstimateAge(ctx context.Context, name string) string
}

// Library persists an owner's history and reads their favorites. Implemented
// by the library context; payloads cross the boundary as JSON.
type Library interface {
	FavoriteSet(ctx context.Context, ownerID uuid.UUID, names []string) (map[string]bool, error)
	RecordGeneration(ctx context.Context, ownerID uuid.UUID, prompt, style string, tlds []string, suggestions json.RawMessage) error
	RecordAnalysis(ctx context.Context, ownerID uuid.UUID, domain string, analysis json.RawMessage) error
}

// GenerateResult is one completed generation.
type GenerateResult struct {
	Candidates  []models.CandidateDomain
	SourcedFrom models.Provenance
}

// StudioService runs the generate and analyze pipelines: produce, resolve
// availability, mark favorites, record history. Library failures are logged
// and never fail a request.
type StudioService struct {
	orch    *domainsvcs.Orchestrator
	avail   AvailabilityChecker
	library Library
	log     logger.Logger
}

// NewStudioService returns a StudioService. library may be nil.
func NewStudioService(orch *domainsvcs.Orchestrator, avail AvailabilityChecker, library Library, log logger.Logger) *StudioService {
	return &StudioService{orch: orch, avail: avail, library: library, log: log}
}

// MockOnly reports whether results come only from the deterministic
// generators.
func (s *StudioService) MockOnly() bool { return s.orch.MockOnly() }

// Generate produces candidates for the request with resolved statuses.
func (s *StudioService) Generate(ctx context.Context, prompt, style string, tlds []string) (GenerateResult, error) {
	req, err := models.NewGenerationRequest(prompt, style, tlds)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidPrompt, err)
	}

	candidates, from := s.orch.GenerateDomains(ctx, req)

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	verdicts := s.avail.CheckMany(ctx, names)
	for i := range candidates {
		candidates[i].Status = models.StatusOf(verdicts[candidates[i].Name])
	}

	owner, hasOwner := s.owner(ctx)
	if hasOwner {
		favorites, err := s.library.FavoriteSet(ctx, owner, names)
		if err != nil {
			s.log.WarnContext(ctx, "favorite lookup failed", "error", err)
		}
		for i := range candidates {
			candidates[i].IsFavorited = favorites[candidates[i].Name]
		}

		if payload, err := json.Marshal(candidates); err != nil {
			s.log.ErrorContext(ctx, "failed to encode generation for history", "error", err)
		} else if err := s.library.RecordGeneration(ctx, owner, req.Prompt, req.Style, req.TLDs, payload); err != nil {
			s.log.WarnContext(ctx, "failed to record generation", "error", err)
		}
	}

	s.log.InfoContext(ctx, "domains generated",
		"count", len(candidates), "sourced_from", string(from))
	return GenerateResult{Candidates: candidates, SourcedFrom: from}, nil
}

// Analyze appraises one domain and records it in the owner's history.
func (s *StudioService) Analyze(ctx context.Context, name string) (models.Analysis, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !pkgvalidator.IsDomain(name) {
		return models.Analysis{}, fmt.Errorf("%w: %q", domain.ErrInvalidDomain, name)
	}

	analysis := s.orch.AnalyzeDomain(ctx, name)

	if owner, ok := s.owner(ctx); ok {
		if payload, err := json.Marshal(analysis); err != nil {
			s.log.ErrorContext(ctx, "failed to encode analysis for history", "error", err)
		} else if err := s.library.RecordAnalysis(ctx, owner, name, payload); err != nil {
			s.log.WarnContext(ctx, "failed to record analysis", "domain", name, "error", err)
		}
	}

	s.log.InfoContext(ctx, "domain analyzed",
		"domain", name, "sourced_from", string(analysis.SourcedFrom))
	return analysis, nil
}

// Logo draws a logo for prompt.
func (s *StudioService) Logo(ctx context.Context, prompt string) (models.Logo, error) {
	return s.orch.GenerateImage(ctx, prompt)
}

func (s *StudioService) owner(ctx context.Context) (uuid.UUID, bool) {
	if s.library == nil {
		return uuid.Nil, false
	}
	id, err := requestctx.OwnerIDFromCtx(ctx)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
