package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fridge-finder/config"
	"github.com/pageza/fridge-finder/internal/api"
	"github.com/pageza/fridge-finder/internal/router"
	"github.com/pageza/fridge-finder/internal/service"
)

// Server represents the HTTP server of the form variant
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a server whose pages call recipes
func New(cfg *config.Config, recipes service.IRecipeService) (*Server, error) {
	if err := config.ValidateServer(cfg); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}
	gin.SetMode(config.GetEnvironment().GinMode())

	engine, err := router.SetupRouter(cfg, api.NewFinderHandler(recipes))
	if err != nil {
		return nil, err
	}

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: engine,
		},
	}, nil
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}
