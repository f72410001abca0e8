package repository

import (
	"github.com/solemate/solemate-backend/internal/app/model"
	"github.com/solemate/solemate-backend/pkg/logger"
	"gorm.io/gorm"
)

// MatchRepository is the storage abstraction behind the match store. Each
// operation is a single statement, which gives the per-user mutual exclusion
// the contract asks for regardless of concurrent saves and removes.
type MatchRepository interface {
	Create(match *model.Match) error
	FindByUserID(userID string) ([]model.Match, error)
	// DeleteByIDForUser removes the match only if it exists and belongs to
	// the user; it reports whether a row was deleted.
	DeleteByIDForUser(userID string, matchID uint) (bool, error)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(match *model.Match) error {
	logger.Debug("Creating match in database", map[string]interface{}{
		"user_id": match.UserID,
		"shoe_id": match.ShoeID,
	})

	// No uniqueness check: duplicate likes of the same shoe are allowed.
	if err := r.db.Create(match).Error; err != nil {
		logger.Error("Failed to create match in database", err, map[string]interface{}{
			"user_id": match.UserID,
			"shoe_id": match.ShoeID,
		})
		return err
	}

	logger.Debug("Match created in database", map[string]interface{}{
		"match_id": match.ID,
		"user_id":  match.UserID,
		"shoe_id":  match.ShoeID,
	})
	return nil
}

func (r *matchRepository) FindByUserID(userID string) ([]model.Match, error) {
	logger.Debug("Finding matches by user ID in database", map[string]interface{}{
		"user_id": userID,
	})

	var matches []model.Match
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		logger.Error("Failed to find matches by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Debug("Matches found by user ID in database", map[string]interface{}{
		"user_id": userID,
		"count":   len(matches),
	})
	return matches, nil
}

func (r *matchRepository) DeleteByIDForUser(userID string, matchID uint) (bool, error) {
	logger.Debug("Deleting match from database", map[string]interface{}{
		"user_id":  userID,
		"match_id": matchID,
	})

	result := r.db.Where("id = ? AND user_id = ?", matchID, userID).Delete(&model.Match{})
	if result.Error != nil {
		logger.Error("Failed to delete match from database", result.Error, map[string]interface{}{
			"user_id":  userID,
			"match_id": matchID,
		})
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		logger.Debug("Match not found for deletion", map[string]interface{}{
			"user_id":  userID,
			"match_id": matchID,
		})
		return false, nil
	}

	logger.Debug("Match deleted from database", map[string]interface{}{
		"user_id":  userID,
		"match_id": matchID,
	})
	return true, nil
}
