package services

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/kenone20/domainogen/pkg/cache"
	librarydomain "github.com/kenone20/domainogen/services/library/domain"
	"github.com/kenone20/domainogen/services/library/domain/models"
)

// memHistory is an in-memory HistoryRepository. Entries are kept newest first.
type memHistory struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]*models.HistoryEntry
}

func newMemHistory() *memHistory {
	return &memHistory{entries: map[uuid.UUID][]*models.HistoryEntry{}}
}

func (m *memHistory) Append(_ context.Context, e *models.HistoryEntry, limit int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := append([]*models.HistoryEntry{e}, m.entries[e.OwnerID]...)
	if len(list) > limit {
		list = list[:limit]
	}
	m.entries[e.OwnerID] = list
	return nil
}

func (m *memHistory) Newest(_ context.Context, owner uuid.UUID) (*models.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries[owner]) == 0 {
		return nil, nil
	}
	return m.entries[owner][0], nil
}

func (m *memHistory) List(_ context.Context, owner uuid.UUID, limit int) ([]*models.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.entries[owner]
	if len(list) > limit {
		list = list[:limit]
	}
	return slices.Clone(list), nil
}

func (m *memHistory) LatestAnalysis(_ context.Context, owner uuid.UUID, domain string) (*models.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries[owner] {
		if e.Kind == models.KindAnalysis && e.Domain == domain {
			return e, nil
		}
	}
	return nil, librarydomain.ErrAnalysisNotFound
}

func (m *memHistory) Clear(_ context.Context, owner uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, owner)
	return nil
}

// memFavorites is an in-memory FavoriteRepository.
type memFavorites struct {
	mu   sync.Mutex
	favs map[uuid.UUID][]*models.Favorite
}

func newMemFavorites() *memFavorites {
	return &memFavorites{favs: map[uuid.UUID][]*models.Favorite{}}
}

func (m *memFavorites) Toggle(_ context.Context, f *models.Favorite) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.favs[f.OwnerID]
	for i, existing := range list {
		if existing.Domain == f.Domain {
			m.favs[f.OwnerID] = slices.Delete(list, i, i+1)
			return false, nil
		}
	}
	m.favs[f.OwnerID] = append([]*models.Favorite{f}, list...)
	return true, nil
}

func (m *memFavorites) List(_ context.Context, owner uuid.UUID) ([]*models.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.favs[owner]), nil
}

func (m *memFavorites) Contains(_ context.Context, owner uuid.UUID, names []string) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]bool{}
	for _, f := range m.favs[owner] {
		if slices.Contains(names, f.Domain) {
			out[f.Domain] = true
		}
	}
	return out, nil
}

func (m *memFavorites) UpdateStatus(_ context.Context, owner uuid.UUID, domain string, status models.FavoriteStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.favs[owner] {
		if f.Domain == domain {
			f.Status = status
		}
	}
	return nil
}

// memAnalysisCache is an in-memory AnalysisCache.
type memAnalysisCache struct {
	mu   sync.Mutex
	data map[string]*pkgcache.CachedAnalysis
	gets int
	err  error
}

func newMemAnalysisCache() *memAnalysisCache {
	return &memAnalysisCache{data: map[string]*pkgcache.CachedAnalysis{}}
}

func (c *memAnalysisCache) Get(_ context.Context, owner uuid.UUID, domain string) (*pkgcache.CachedAnalysis, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.err != nil {
		return nil, c.err
	}
	a, ok := c.data[owner.String()+domain]
	if !ok {
		return nil, redis.Nil
	}
	return a, nil
}

func (c *memAnalysisCache) Set(_ context.Context, a *pkgcache.CachedAnalysis) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.data[a.OwnerID.String()+a.Domain] = a
	return nil
}

func (c *memAnalysisCache) DeleteOwner(_ context.Context, owner uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, a := range c.data {
		if a.OwnerID == owner {
			delete(c.data, k)
		}
	}
	return nil
}

// fixedRechecker reports the configured names as available.
type fixedRechecker struct {
	available map[string]bool
	calls     [][]string
	mu        sync.Mutex
}

func (r *fixedRechecker) Recheck(_ context.Context, names []string) map[string]bool {
	r.mu.Lock()
	r.calls = append(r.calls, names)
	r.mu.Unlock()
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = r.available[n]
	}
	return out
}
