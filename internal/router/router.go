package router

import (
	"github.com/gin-gonic/gin"
	"github.com/solemate/solemate-backend/config"
	"github.com/solemate/solemate-backend/internal/app/controller"
	"github.com/solemate/solemate-backend/internal/middleware"
)

type Router struct {
	catalogController *controller.CatalogController
	matchController   *controller.MatchController
	config            *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	matchController *controller.MatchController,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController: catalogController,
		matchController:   matchController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(middleware.Identity())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "SoleMate API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		shoes := v1.Group("/shoes")
		{
			shoes.GET("", r.catalogController.SearchShoes)
			shoes.GET("/:id", r.catalogController.GetShoeByID)
		}

		v1.GET("/conditions", r.catalogController.ListConditions)
		v1.GET("/styles", r.catalogController.ListStyles)

		matches := v1.Group("/user/matches")
		{
			matches.POST("", r.matchController.CreateMatch)
			matches.GET("", r.matchController.ListMatches)
			matches.DELETE("/:id", r.matchController.DeleteMatch)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-User-ID, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
