package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fridge-finder/config"
	"github.com/pageza/fridge-finder/internal/api"
	"github.com/pageza/fridge-finder/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, finderHandler *api.FinderHandler) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), middleware.ErrorLogger())

	tmpl, err := api.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Form pages
	finderHandler.RegisterRoutes(router)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if len(cfg.CORSOrigins) > 0 {
		v1.Use(middleware.CORS(cfg.CORSOrigins))
	}
	finderHandler.RegisterAPIRoutes(v1)

	return router, nil
}
