// Package app wires configuration, storage, clients, and services into the
// shared application core.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/skundu/trademind/internal/clients/gemini"
	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/interfaces"
	"github.com/skundu/trademind/internal/services/analysis"
	"github.com/skundu/trademind/internal/services/market"
	"github.com/skundu/trademind/internal/services/watchlist"
	"github.com/skundu/trademind/internal/storage"
)

// App holds all initialized services, clients, and storage.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	GenAIClient      interfaces.GenAIClient
	AnalysisService  interfaces.AnalysisService
	MarketService    interfaces.MarketService
	WatchlistService interfaces.WatchlistService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, storage, the model client, and
// all services. configPath may be empty, in which case the default
// resolution logic is used.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	// Config resolution: provided path, TRADEMIND_CONFIG, binary dir, dev fallback
	if configPath == "" {
		configPath = os.Getenv("TRADEMIND_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "trademind.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/trademind.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLogger(config.Logging.Level)

	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	ctx := context.Background()

	apiKey, err := common.ResolveAPIKey(ctx, storageManager.PreferenceStorage(), config.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - analysis will be unavailable")
	}

	genaiClient, err := gemini.NewClient(ctx, apiKey,
		gemini.WithModel(config.Gemini.Model),
		gemini.WithTimeout(config.Gemini.GetTimeout()),
		gemini.WithRateLimit(config.Gemini.RateLimit),
		gemini.WithLogger(logger),
	)
	if err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	retry := common.RetryConfig{
		MaxAttempts:  config.Gemini.MaxAttempts,
		InitialDelay: config.Gemini.GetInitialDelay(),
	}

	a := &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		GenAIClient:      genaiClient,
		AnalysisService:  analysis.NewService(genaiClient, retry, logger),
		MarketService:    market.NewService(genaiClient, retry, logger),
		WatchlistService: watchlist.NewService(storageManager, logger),
		StartupTime:      time.Now(),
	}

	logger.Info().
		Str("model", config.Gemini.Model).
		Int("max_attempts", retry.MaxAttempts).
		Msg("Application initialized")

	return a, nil
}

// Close releases all resources.
func (a *App) Close() {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close storage")
		}
	}
}
