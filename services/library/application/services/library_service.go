package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	pkgcache "github.com/kenone20/domainogen/pkg/cache"
	"github.com/kenone20/domainogen/pkg/logger"
	pkgvalidator "github.com/kenone20/domainogen/pkg/validator"
	librarydomain "github.com/kenone20/domainogen/services/library/domain"
	"github.com/kenone20/domainogen/services/library/domain/models"
	"github.com/kenone20/domainogen/services/library/domain/repositories"
)

// AnalysisCache is the read model for an owner's latest analyses.
// Implemented by pkg/cache.AnalysisCache; Get misses return redis.Nil.
type AnalysisCache interface {
	Get(ctx context.Context, ownerID uuid.UUID, domain string) (*pkgcache.CachedAnalysis, error)
	Set(ctx context.Context, a *pkgcache.CachedAnalysis) error
	DeleteOwner(ctx context.Context, ownerID uuid.UUID) error
}

// Rechecker re-evaluates availability bypassing any cached verdict.
// Implemented by the availability context.
type Rechecker interface {
	Recheck(ctx context.Context, names []string) map[string]bool
}

// LibraryService owns an owner's history and favorites. Persistence and
// event publishing live in the repositories; the analysis cache is
// best-effort.
type LibraryService struct {
	history   repositories.HistoryRepository
	favorites repositories.FavoriteRepository
	cache     AnalysisCache
	avail     Rechecker
	temporal  client.Client
	taskQueue string
	limit     int
	log       logger.Logger
}

// Option configures a LibraryService.
type Option func(*LibraryService)

// WithAnalysisCache fronts LatestAnalysis with c.
func WithAnalysisCache(c AnalysisCache) Option { return func(s *LibraryService) { s.cache = c } }

// WithTemporal runs favorite re-checks as workflows on taskQueue.
func WithTemporal(c client.Client, taskQueue string) Option {
	return func(s *LibraryService) {
		s.temporal = c
		s.taskQueue = taskQueue
	}
}

// WithHistoryLimit sets how many entries are kept per owner.
func WithHistoryLimit(n int) Option {
	return func(s *LibraryService) {
		if n > 0 {
			s.limit = n
		}
	}
}

// NewLibraryService returns a LibraryService. With nil repositories every
// operation fails with ErrHistoryUnavailable.
func NewLibraryService(history repositories.HistoryRepository, favorites repositories.FavoriteRepository, avail Rechecker, log logger.Logger, opts ...Option) *LibraryService {
	s := &LibraryService{
		history:   history,
		favorites: favorites,
		avail:     avail,
		limit:     models.DefaultHistoryLimit,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether the history store is configured.
func (s *LibraryService) Available() bool {
	return s.history != nil && s.favorites != nil
}

// RecordGeneration appends a generation entry.
func (s *LibraryService) RecordGeneration(ctx context.Context, ownerID uuid.UUID, prompt, style string, tlds []string, suggestions json.RawMessage) error {
	if !s.Available() {
		return librarydomain.ErrHistoryUnavailable
	}
	entry, err := models.NewGenerationEntry(ownerID, prompt, style, tlds, suggestions)
	if err != nil {
		return fmt.Errorf("new generation entry: %w", err)
	}
	if err := s.history.Append(ctx, entry, s.limit); err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// RecordAnalysis appends an analysis entry unless the newest entry already
// is an analysis of the same domain.
func (s *LibraryService) RecordAnalysis(ctx context.Context, ownerID uuid.UUID, domain string, analysis json.RawMessage) error {
	if !s.Available() {
		return librarydomain.ErrHistoryUnavailable
	}
	entry, err := models.NewAnalysisEntry(ownerID, domain, analysis)
	if err != nil {
		return fmt.Errorf("new analysis entry: %w", err)
	}

	newest, err := s.history.Newest(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("read newest entry: %w", err)
	}
	if newest.Repeats(entry.Domain) {
		s.log.DebugContext(ctx, "skipping repeated analysis", "domain", entry.Domain)
		return nil
	}

	if err := s.history.Append(ctx, entry, s.limit); err != nil {
		return fmt.Errorf("record analysis: %w", err)
	}
	s.warm(ctx, entry)
	return nil
}

// History returns the owner's entries, newest first.
func (s *LibraryService) History(ctx context.Context, ownerID uuid.UUID) ([]*models.HistoryEntry, error) {
	if !s.Available() {
		return nil, librarydomain.ErrHistoryUnavailable
	}
	entries, err := s.history.List(ctx, ownerID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// ClearHistory removes every entry and cached analysis of the owner.
func (s *LibraryService) ClearHistory(ctx context.Context, ownerID uuid.UUID) error {
	if !s.Available() {
		return librarydomain.ErrHistoryUnavailable
	}
	if err := s.history.Clear(ctx, ownerID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.DeleteOwner(ctx, ownerID); err != nil {
			s.log.WarnContext(ctx, "analysis cache purge failed", "error", err)
		}
	}
	return nil
}

// LatestAnalysis returns the newest analysis of domain, read through the
// analysis cache. Returns ErrAnalysisNotFound when the owner never analyzed it.
func (s *LibraryService) LatestAnalysis(ctx context.Context, ownerID uuid.UUID, domain string) (json.RawMessage, time.Time, error) {
	if !s.Available() {
		return nil, time.Time{}, librarydomain.ErrHistoryUnavailable
	}
	domain = strings.ToLower(strings.TrimSpace(domain))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, ownerID, domain)
		if err == nil {
			return cached.Payload, cached.RecordedAt, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "analysis cache read failed", "domain", domain, "error", err)
		}
	}

	entry, err := s.history.LatestAnalysis(ctx, ownerID, domain)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("latest analysis: %w", err)
	}
	s.warm(ctx, entry)
	return entry.Payload, entry.CreatedAt, nil
}

// ToggleFavorite stars or un-stars domain and reports the new state. status
// is the availability shown to the user when starring.
func (s *LibraryService) ToggleFavorite(ctx context.Context, ownerID uuid.UUID, domain, status string) (bool, error) {
	if !s.Available() {
		return false, librarydomain.ErrHistoryUnavailable
	}
	domain = strings.ToLower(strings.TrimSpace(domain))
	if !pkgvalidator.IsDomain(domain) {
		return false, fmt.Errorf("%w: %q", librarydomain.ErrInvalidFavorite, domain)
	}

	starred, err := s.favorites.Toggle(ctx, models.NewFavorite(ownerID, domain, models.ParseFavoriteStatus(status)))
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	s.log.InfoContext(ctx, "favorite toggled", "domain", domain, "starred", starred)
	return starred, nil
}

// Favorites lists the owner's favorites, newest first.
func (s *LibraryService) Favorites(ctx context.Context, ownerID uuid.UUID) ([]*models.Favorite, error) {
	if !s.Available() {
		return nil, librarydomain.ErrHistoryUnavailable
	}
	favs, err := s.favorites.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

// FavoriteSet returns the subset of names the owner has starred.
func (s *LibraryService) FavoriteSet(ctx context.Context, ownerID uuid.UUID, names []string) (map[string]bool, error) {
	if !s.Available() {
		return nil, librarydomain.ErrHistoryUnavailable
	}
	set, err := s.favorites.Contains(ctx, ownerID, names)
	if err != nil {
		return nil, fmt.Errorf("favorite set: %w", err)
	}
	return set, nil
}

// RecheckFavorites re-evaluates the availability of every favorite and
// returns the updated list. With Temporal configured the re-check runs as a
// workflow; otherwise it runs inline.
func (s *LibraryService) RecheckFavorites(ctx context.Context, ownerID uuid.UUID) ([]*models.Favorite, error) {
	if !s.Available() {
		return nil, librarydomain.ErrHistoryUnavailable
	}

	if s.temporal != nil {
		if err := s.recheckWorkflow(ctx, ownerID); err != nil {
			return nil, err
		}
	} else {
		acts := &RecheckActivities{svc: s}
		names, err := acts.ListFavoriteDomains(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		verdicts, err := acts.RecheckDomains(ctx, names)
		if err != nil {
			return nil, err
		}
		if err := acts.StoreStatuses(ctx, StoreStatusesInput{OwnerID: ownerID, Verdicts: verdicts}); err != nil {
			return nil, err
		}
	}

	return s.Favorites(ctx, ownerID)
}

// recheckWorkflow runs one re-check per owner at a time. A request arriving
// while one is running waits on that run instead of starting another.
func (s *LibraryService) recheckWorkflow(ctx context.Context, ownerID uuid.UUID) error {
	run, err := s.temporal.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:                       recheckWorkflowID(ownerID),
		TaskQueue:                s.taskQueue,
		WorkflowIDConflictPolicy: enumspb.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING,
	}, RecheckFavoritesWorkflow, RecheckInput{OwnerID: ownerID})
	if err != nil {
		return fmt.Errorf("start recheck workflow: %w", err)
	}

	var res RecheckResult
	if err := run.Get(ctx, &res); err != nil {
		return fmt.Errorf("recheck workflow: %w", err)
	}
	s.log.InfoContext(ctx, "favorites rechecked",
		"workflow_id", run.GetID(), "checked", res.Checked, "available", res.Available)
	return nil
}

func recheckWorkflowID(ownerID uuid.UUID) string {
	return "recheck-favorites-" + ownerID.String()
}

// warm stores an analysis entry in the cache. Failures are logged.
func (s *LibraryService) warm(ctx context.Context, entry *models.HistoryEntry) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, &pkgcache.CachedAnalysis{
		OwnerID:    entry.OwnerID,
		Domain:     entry.Domain,
		Payload:    entry.Payload,
		RecordedAt: entry.CreatedAt,
	}); err != nil {
		s.log.WarnContext(ctx, "analysis cache write failed", "domain", entry.Domain, "error", err)
	}
}
