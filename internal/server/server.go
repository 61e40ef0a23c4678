package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alkime/fastgenius/internal/config"
	"github.com/alkime/fastgenius/internal/generation"
	"github.com/alkime/fastgenius/internal/templates"
	"github.com/gin-gonic/gin"
)

// Generator turns a rendered prompt into a title/content pair.
// Implementations absorb upstream failures into the returned Outcome.
type Generator interface {
	Generate(ctx context.Context, prompt string) generation.Outcome
}

// Server represents the HTTP server
type Server struct {
	config    *config.Config
	logger    *slog.Logger
	router    *gin.Engine
	generator Generator
	templates *templates.Registry
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger, gen Generator, registry *templates.Registry) (*Server, error) {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Configure proxy trust for production (Fly.io)
	if cfg.IsProduction() {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	}
	// Development: no reverse proxy, uses direct client IP

	if registry == nil {
		registry = templates.Default()
	}

	server := &Server{
		config:    cfg,
		logger:    logger,
		router:    router,
		generator: gen,
		templates: registry,
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	if err := setupStatic(router); err != nil {
		return nil, err
	}
	server.setupRoutes()

	return server, nil
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.handleHealth)

	s.router.GET("/templates", s.handleTemplates)
	s.router.POST("/generate", recoverWith(s.logger, errGenerateFailed), s.handleGenerate)
	s.router.POST("/export", recoverWith(s.logger, errExportFailed), s.handleExport)
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "fastgenius",
	})
}
