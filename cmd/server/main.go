package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/docqanda/backend/internal/api"
	"github.com/docqanda/backend/internal/completion"
	"github.com/docqanda/backend/internal/config"
	"github.com/docqanda/backend/internal/extract"
	"github.com/docqanda/backend/internal/logging"
	"github.com/docqanda/backend/internal/query"
	"github.com/docqanda/backend/internal/storage"
	"github.com/labstack/echo/v4"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Config lives in the working directory unless DOCQA_CONFIG points elsewhere
	configPath := os.Getenv("DOCQA_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	if err := cfg.EnsureDirectories(); err != nil {
		logger.Fatal().Err(err).Msg("failed to create directories")
	}

	store, err := storage.NewLocalStore(cfg.GetUploadDir(), cfg.Storage.RestrictFileNames)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	if !cfg.Storage.RestrictFileNames {
		logger.Warn().Msg("file names are used verbatim; set storage.restrict_file_names to reject path separators")
	}

	completer, err := completion.New(context.Background(), cfg.Completion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize completion client")
	}
	if cfg.Completion.APIKey == "" {
		// Queries still reach the provider and fail there with its auth error
		logger.Warn().Str("env", cfg.Completion.APIKeyEnv).Msg("completion API key is not set")
	}

	processor := query.NewProcessor(store, extract.NewRegistry(), completer, logger)

	e := echo.New()
	e.HideBanner = true

	api.SetupMiddleware(e, cfg, logger)
	api.RegisterRoutes(e, api.NewHandlers(&api.Dependencies{
		Store:          store,
		Querier:        processor,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		Provider:       completer.Provider(),
		Version:        Version,
		Logger:         logger,
	}))

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Print startup banner
	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           Document Q&A Server                             ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("║  Provider:   %-45s║\n", fmt.Sprintf("%s (%s)", completer.Provider(), cfg.Completion.Model))
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:    %-46s║\n", configPath)
	fmt.Printf("║  Listen:    http://%-38s║\n", cfg.GetServerAddr())
	fmt.Printf("║  Uploads:   %-46s║\n", store.Dir())
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")

	if err := e.StartServer(s); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
