package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/solemate/solemate-backend/internal/app/catalog"
	"github.com/solemate/solemate-backend/internal/app/model"
	"github.com/solemate/solemate-backend/internal/app/repository"
	"github.com/solemate/solemate-backend/pkg/logger"
	"github.com/solemate/solemate-backend/pkg/redis"
)

var (
	ErrShoeNotFound       = errors.New("shoe not found")
	ErrCatalogUnavailable = errors.New("catalog snapshot not loaded")
)

// ConditionSummary is the condition listing the filter UI reads. The slug is
// exposed as "id" because that is how the frontend addresses conditions.
type ConditionSummary struct {
	Slug        string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CatalogService interface {
	SearchShoes(ctx context.Context, query catalog.Query) ([]catalog.EnrichedShoe, error)
	GetShoeByID(id uint) (*catalog.EnrichedShoe, error)
	ListConditions() ([]ConditionSummary, error)
	ListStyles() ([]model.Style, error)
	// Reload swaps in a fresh snapshot from the database and drops any
	// cached search results derived from the previous one.
	Reload(ctx context.Context) error
}

type catalogService struct {
	catalogRepo  repository.CatalogRepository
	cacheEnabled bool
	cacheTTL     time.Duration

	mu       sync.RWMutex
	snapshot *catalog.Snapshot
}

func NewCatalogService(catalogRepo repository.CatalogRepository, cacheEnabled bool, cacheTTL time.Duration) CatalogService {
	return &catalogService{
		catalogRepo:  catalogRepo,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
	}
}

func (s *catalogService) currentSnapshot() (*catalog.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrCatalogUnavailable
	}
	return s.snapshot, nil
}

func (s *catalogService) Reload(ctx context.Context) error {
	logger.Info("Reloading catalog snapshot", nil)

	snapshot, err := s.catalogRepo.LoadSnapshot()
	if err != nil {
		logger.Error("Failed to reload catalog snapshot", err)
		return err
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	if s.cacheEnabled {
		// Best effort: a failed flush only means some results are served
		// stale until the TTL expires.
		if err := redis.FlushSearchCache(ctx); err != nil {
			logger.Warn("Failed to flush search cache after reload", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Catalog snapshot reloaded", map[string]interface{}{
		"shoes": snapshot.Size(),
	})
	return nil
}

func (s *catalogService) SearchShoes(ctx context.Context, query catalog.Query) ([]catalog.EnrichedShoe, error) {
	snapshot, err := s.currentSnapshot()
	if err != nil {
		return nil, err
	}

	cacheKey := query.CacheKey()
	if s.cacheEnabled {
		payload, hit, err := redis.GetCachedSearch(ctx, cacheKey)
		if err == nil && hit {
			var cached []catalog.EnrichedShoe
			if err := json.Unmarshal(payload, &cached); err == nil {
				logger.Debug("Search served from cache", map[string]interface{}{
					"query": cacheKey,
					"count": len(cached),
				})
				return cached, nil
			}
		}
	}

	results := snapshot.Match(query)

	logger.Debug("Search executed against snapshot", map[string]interface{}{
		"query": cacheKey,
		"count": len(results),
	})

	if s.cacheEnabled {
		if payload, err := json.Marshal(results); err == nil {
			if err := redis.CacheSearchResults(ctx, cacheKey, payload, s.cacheTTL); err != nil {
				logger.Warn("Failed to cache search results", map[string]interface{}{
					"query": cacheKey,
				})
			}
		}
	}

	return results, nil
}

func (s *catalogService) GetShoeByID(id uint) (*catalog.EnrichedShoe, error) {
	snapshot, err := s.currentSnapshot()
	if err != nil {
		return nil, err
	}

	shoe, ok := snapshot.ShoeByID(id)
	if !ok {
		return nil, ErrShoeNotFound
	}
	return &shoe, nil
}

func (s *catalogService) ListConditions() ([]ConditionSummary, error) {
	snapshot, err := s.currentSnapshot()
	if err != nil {
		return nil, err
	}

	conditions := snapshot.Conditions()
	summaries := make([]ConditionSummary, 0, len(conditions))
	for _, condition := range conditions {
		summaries = append(summaries, ConditionSummary{
			Slug:        catalog.Slugify(condition.Name),
			Name:        condition.Name,
			Description: condition.Description,
		})
	}
	return summaries, nil
}

func (s *catalogService) ListStyles() ([]model.Style, error) {
	snapshot, err := s.currentSnapshot()
	if err != nil {
		return nil, err
	}
	return snapshot.Styles(), nil
}
