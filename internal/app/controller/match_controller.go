package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/solemate/solemate-backend/internal/app/service"
	apperrors "github.com/solemate/solemate-backend/internal/errors"
	"github.com/solemate/solemate-backend/internal/middleware"
)

type MatchController struct {
	matchService service.MatchService
}

func NewMatchController(matchService service.MatchService) *MatchController {
	return &MatchController{
		matchService: matchService,
	}
}

type CreateMatchRequest struct {
	ShoeID uint `json:"shoeId" binding:"required"`
}

// CreateMatch saves a liked shoe for the caller.
// POST /api/v1/user/matches
func (ctrl *MatchController) CreateMatch(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Error("Caller identity missing from context", nil, nil)
		apperrors.InternalError(c, "")
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid match creation request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Shoe ID is required")
		return
	}

	match, err := ctrl.matchService.SaveMatch(userID, req.ShoeID)
	if err != nil {
		if errors.Is(err, service.ErrShoeIDRequired) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Shoe ID is required")
			return
		}
		log.Error("Failed to save match", err, map[string]interface{}{
			"user_id": userID,
			"shoe_id": req.ShoeID,
		})
		apperrors.InternalError(c, "Failed to save match")
		return
	}

	log.Info("Match created successfully", map[string]interface{}{
		"match_id": match.ID,
		"user_id":  userID,
		"shoe_id":  match.ShoeID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"match":   match,
	})
}

// ListMatches returns the caller's saved shoes with full detail.
// GET /api/v1/user/matches
func (ctrl *MatchController) ListMatches(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Error("Caller identity missing from context", nil, nil)
		apperrors.InternalError(c, "")
		return
	}

	matches, err := ctrl.matchService.ListMatches(userID)
	if err != nil {
		log.Error("Failed to list matches", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Failed to fetch matches")
		return
	}

	log.Info("Matches fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(matches),
	})

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// DeleteMatch removes a saved shoe from the caller's matches.
// DELETE /api/v1/user/matches/:id
func (ctrl *MatchController) DeleteMatch(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Error("Caller identity missing from context", nil, nil)
		apperrors.InternalError(c, "")
		return
	}

	idStr := c.Param("id")
	matchID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid match ID format", map[string]interface{}{
			"user_id":  userID,
			"match_id": idStr,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid match ID")
		return
	}

	if err := ctrl.matchService.RemoveMatch(userID, uint(matchID)); err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			log.Warn("Match not found", map[string]interface{}{
				"user_id":  userID,
				"match_id": matchID,
			})
			apperrors.NotFound(c, apperrors.MatchNotFound, "Match not found")
			return
		}
		log.Error("Failed to delete match", err, map[string]interface{}{
			"user_id":  userID,
			"match_id": matchID,
		})
		apperrors.InternalError(c, "Failed to delete match")
		return
	}

	log.Info("Match deleted successfully", map[string]interface{}{
		"user_id":  userID,
		"match_id": matchID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
