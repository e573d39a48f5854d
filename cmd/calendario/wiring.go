package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/internal/config"
	"github.com/username/calendario/internal/insight"
)

// initializeHolidays returns the built-in table, overlaid by holidays.file when configured
func initializeHolidays(cfg *config.Config) calendar.Holidays {
	base := calendar.DefaultHolidays()
	if cfg.Holidays.File == "" {
		return base
	}

	logger.Info("Using holiday override file", zap.String("file", cfg.Holidays.File))
	composite := calendar.NewCompositeHolidays(
		calendar.NewFileHolidays(cfg.Holidays.File, logger),
		base,
		logger,
	)
	if err := composite.LoadPrimary(); err != nil {
		logger.Warn("Failed to load holiday override, continuing with built-in table",
			zap.Error(err))
	}
	return composite
}

// initializeFetcher wires the Gemini provider when insight is enabled and a key is present
func initializeFetcher(ctx context.Context, cfg *config.Config) *insight.Fetcher {
	if !cfg.Insight.Enabled {
		logger.Info("Insight disabled in config")
		return insight.NewFetcher(nil, 0, logger)
	}

	provider, err := insight.NewGeminiProvider(ctx, cfg.Insight.APIKey(), cfg.Insight.Model, logger)
	if err != nil {
		logger.Warn("Insight provider unavailable, using fallback",
			zap.String("api_key_env", cfg.Insight.APIKeyEnv),
			zap.Error(err))
		return insight.NewFetcher(nil, 0, logger)
	}

	return insight.NewFetcher(provider, cfg.Insight.GetTimeout(), logger)
}

func initializeBuilder(cfg *config.Config) *calendar.Builder {
	return calendar.NewBuilder(initializeHolidays(cfg), nil)
}
