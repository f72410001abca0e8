package service

import (
	"errors"
	"time"

	"github.com/solemate/solemate-backend/internal/app/catalog"
	"github.com/solemate/solemate-backend/internal/app/model"
	"github.com/solemate/solemate-backend/internal/app/repository"
	"github.com/solemate/solemate-backend/pkg/logger"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrShoeIDRequired = errors.New("shoe id is required")
)

// SavedMatch is a match joined against the catalog enrichment for display.
type SavedMatch struct {
	ID      uint                 `json:"id"`
	SavedAt time.Time            `json:"savedAt"`
	Shoe    catalog.EnrichedShoe `json:"shoe"`
}

type MatchService interface {
	SaveMatch(userID string, shoeID uint) (*model.Match, error)
	ListMatches(userID string) ([]SavedMatch, error)
	RemoveMatch(userID string, matchID uint) error
}

type matchService struct {
	matchRepo      repository.MatchRepository
	catalogService CatalogService
}

func NewMatchService(matchRepo repository.MatchRepository, catalogService CatalogService) MatchService {
	return &matchService{
		matchRepo:      matchRepo,
		catalogService: catalogService,
	}
}

// SaveMatch records a like. It succeeds for any non-zero shoe id, whether or
// not the shoe is currently in the catalog, and never dedupes: liking the
// same shoe twice yields two distinct matches. Both points are part of the
// store's contract.
func (s *matchService) SaveMatch(userID string, shoeID uint) (*model.Match, error) {
	if shoeID == 0 {
		logger.Warn("Cannot save match: missing shoe id", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrShoeIDRequired
	}

	match := &model.Match{
		UserID: userID,
		ShoeID: shoeID,
	}

	if err := s.matchRepo.Create(match); err != nil {
		logger.Error("Failed to save match", err, map[string]interface{}{
			"user_id": userID,
			"shoe_id": shoeID,
		})
		return nil, err
	}

	logger.Info("Match saved successfully", map[string]interface{}{
		"match_id": match.ID,
		"user_id":  userID,
		"shoe_id":  shoeID,
	})
	return match, nil
}

// ListMatches returns the user's matches in save order, each joined with the
// enriched shoe. A match whose shoe has left the catalog is silently dropped
// from the result, not an error.
func (s *matchService) ListMatches(userID string) ([]SavedMatch, error) {
	matches, err := s.matchRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to list matches", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	saved := make([]SavedMatch, 0, len(matches))
	dropped := 0
	for _, match := range matches {
		shoe, err := s.catalogService.GetShoeByID(match.ShoeID)
		if err != nil {
			if errors.Is(err, ErrShoeNotFound) {
				dropped++
				continue
			}
			return nil, err
		}
		saved = append(saved, SavedMatch{
			ID:      match.ID,
			SavedAt: match.CreatedAt,
			Shoe:    *shoe,
		})
	}

	if dropped > 0 {
		logger.Warn("Dropped matches referencing shoes no longer in catalog", map[string]interface{}{
			"user_id": userID,
			"dropped": dropped,
		})
	}

	logger.Info("Matches listed successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(saved),
	})
	return saved, nil
}

func (s *matchService) RemoveMatch(userID string, matchID uint) error {
	deleted, err := s.matchRepo.DeleteByIDForUser(userID, matchID)
	if err != nil {
		logger.Error("Failed to remove match", err, map[string]interface{}{
			"user_id":  userID,
			"match_id": matchID,
		})
		return err
	}

	if !deleted {
		logger.Warn("Match not found for removal", map[string]interface{}{
			"user_id":  userID,
			"match_id": matchID,
		})
		return ErrMatchNotFound
	}

	logger.Info("Match removed successfully", map[string]interface{}{
		"user_id":  userID,
		"match_id": matchID,
	})
	return nil
}
