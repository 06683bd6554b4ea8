package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shelfscout/backend/config"
	httpDelivery "github.com/shelfscout/backend/internal/delivery/http"
	"github.com/shelfscout/backend/internal/infrastructure/memstore"
	"github.com/shelfscout/backend/internal/logging"
	"github.com/shelfscout/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log)
	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Msg("starting shelfscout backend")

	// In-memory collaborators; the scraping/persistence layer that feeds
	// them runs as a separate deployment.
	catalog := memstore.NewCatalog()
	pricing := memstore.NewPricing()

	engine := usecase.NewEngine(catalog, pricing, usecase.EngineConfig{
		ConfidenceThreshold: cfg.Matching.ConfidenceThreshold,
		MaxSuggestions:      cfg.Matching.MaxSuggestions,
		SuggestLimit:        cfg.Suggest.Limit,
	}, logger)

	if err := engine.Rebuild(context.Background()); err != nil {
		logger.Error().Err(err).Msg("initial index build failed; continuing with empty index")
	}

	logger.Info().
		Float64("confidence_threshold", cfg.Matching.ConfidenceThreshold).
		Int("max_suggestions", cfg.Matching.MaxSuggestions).
		Int("suggest_limit", cfg.Suggest.Limit).
		Msg("engine configured")

	handler := httpDelivery.NewHandler(engine)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
