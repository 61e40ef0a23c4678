package main

import (
	"log"

	"github.com/alkime/fastgenius/internal/config"
	"github.com/alkime/fastgenius/internal/generation"
	"github.com/alkime/fastgenius/internal/logger"
	"github.com/alkime/fastgenius/internal/server"
	"github.com/alkime/fastgenius/internal/templates"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	slogger := logger.SetupLogger(cfg)

	// Log startup information
	slogger.Info("Starting FastGenius server",
		"env", cfg.Env,
		"port", cfg.Port,
		"model", cfg.TogetherModel,
	)

	gen, err := generation.NewClient(generation.Settings{
		APIKey:  cfg.TogetherAPIKey,
		BaseURL: cfg.TogetherBaseURL,
		Model:   cfg.TogetherModel,
	}, slogger)
	if err != nil {
		slogger.Error("Failed to create generation client", "error", err)
		log.Fatalf("Fatal: %v", err)
	}

	srv, err := server.New(cfg, slogger, gen, templates.Default())
	if err != nil {
		slogger.Error("Failed to create server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}

	// Start server
	if err := server.Run(srv); err != nil {
		slogger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
