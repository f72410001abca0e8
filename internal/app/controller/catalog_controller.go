package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/solemate/solemate-backend/internal/app/catalog"
	"github.com/solemate/solemate-backend/internal/app/service"
	apperrors "github.com/solemate/solemate-backend/internal/errors"
	"github.com/solemate/solemate-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// SearchShoes filters the catalog by the optional query parameters.
// GET /api/v1/shoes?condition=&style=&gender=&priceMin=&priceMax=
func (ctrl *CatalogController) SearchShoes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	// Unparseable price bounds degrade to "no bound" so the endpoint always
	// answers with best-effort filtering.
	query := catalog.Query{
		Condition: c.Query("condition"),
		Style:     c.Query("style"),
		Gender:    c.Query("gender"),
		PriceMin:  catalog.ParsePrice(c.Query("priceMin")),
		PriceMax:  catalog.ParsePrice(c.Query("priceMax")),
	}

	log.Debug("Searching shoes", map[string]interface{}{
		"condition": query.Condition,
		"style":     query.Style,
		"gender":    query.Gender,
		"query_key": query.CacheKey(),
	})

	shoes, err := ctrl.catalogService.SearchShoes(c.Request.Context(), query)
	if err != nil {
		log.Error("Failed to search shoes", err, nil)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.CatalogUnavailable, "Failed to search shoes")
		return
	}

	log.Info("Shoes searched successfully", map[string]interface{}{
		"count": len(shoes),
	})

	c.JSON(http.StatusOK, gin.H{
		"shoes": shoes,
		"count": len(shoes),
	})
}

// GetShoeByID returns a single enriched shoe.
// GET /api/v1/shoes/:id
func (ctrl *CatalogController) GetShoeByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid shoe ID format", map[string]interface{}{
			"shoe_id": idStr,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid shoe ID")
		return
	}

	shoe, err := ctrl.catalogService.GetShoeByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrShoeNotFound) {
			log.Warn("Shoe not found", map[string]interface{}{
				"shoe_id": id,
			})
			apperrors.NotFound(c, apperrors.ShoeNotFound, "Shoe not found")
			return
		}
		log.Error("Failed to fetch shoe", err, map[string]interface{}{
			"shoe_id": id,
		})
		apperrors.InternalError(c, "Failed to fetch shoe")
		return
	}

	log.Info("Shoe fetched successfully", map[string]interface{}{
		"shoe_id": shoe.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"shoe": shoe,
	})
}

// ListConditions returns the supported medical conditions.
// GET /api/v1/conditions
func (ctrl *CatalogController) ListConditions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	conditions, err := ctrl.catalogService.ListConditions()
	if err != nil {
		log.Error("Failed to list conditions", err, nil)
		apperrors.InternalError(c, "Failed to list conditions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conditions": conditions,
		"count":      len(conditions),
	})
}

// ListStyles returns the style table.
// GET /api/v1/styles
func (ctrl *CatalogController) ListStyles(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	styles, err := ctrl.catalogService.ListStyles()
	if err != nil {
		log.Error("Failed to list styles", err, nil)
		apperrors.InternalError(c, "Failed to list styles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"styles": styles,
		"count":  len(styles),
	})
}
