package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/khrees2412/jobcards/internal/config"
	"github.com/khrees2412/jobcards/internal/database"
	"github.com/lmittmann/tint"
)

// App is the dependency container for the CLI application
type App struct {
	DB     *sql.DB
	Config *config.Config
	Logger *slog.Logger
}

// Options control how NewApp locates its inputs
type Options struct {
	ConfigPath string // defaults to ~/.jobcards/config.yaml
	InputsPath string // optional inputs.json overlay
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context, opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.GetConfigPath()
	}
	if err := config.InitializeFrom(path); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	if opts.InputsPath != "" {
		if err := config.LoadInputs(opts.InputsPath); err != nil {
			return nil, fmt.Errorf("failed to load inputs: %w", err)
		}
	}
	cfg := config.AppConfig

	logger := NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := database.Initialize(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &App{
		DB:     database.DB,
		Config: cfg,
		Logger: logger,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// NewLogger returns a colorized stderr logger at the named level
func NewLogger(level string) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.Kitchen,
	}))
}

// ParseLevel maps a config level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
