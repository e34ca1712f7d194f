package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"clil-ai/backend/internal/api"
	"clil-ai/backend/internal/config"
	"clil-ai/backend/internal/llm"
	"clil-ai/backend/internal/prompt"
	"clil-ai/backend/internal/service"
)

const defaultShutdownTimeout = 15 * time.Second

// App holds the wired HTTP server.
type App struct {
	Server *http.Server
}

// NewApp builds every dependency from cfg. The prompt library is validated here so
// a template that does not match its call site stops the process at startup.
func NewApp(cfg *config.Config) (*App, error) {
	prompts, err := prompt.LoadLibrary()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	if err := prompts.Validate(); err != nil {
		return nil, err
	}

	provider, err := llm.NewOpenAIProvider(llm.ProviderConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})
	if err != nil {
		return nil, err
	}

	relay := llm.NewRelay(provider, cfg.OpenAIModel)
	lessonService := service.NewLessonService(prompts, relay)
	lessonHandler := api.NewLessonHandler(lessonService)
	router := api.NewRouter(lessonHandler, cfg.StaticDir)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server}, nil
}

// Serve runs the server until ctx is cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context, shutdownTimeout time.Duration) error {
	errc := make(chan error, 1)
	go func() {
		errc <- a.Server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	slog.Info("Shutting down server", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Server.Shutdown(shutdownCtx)
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting server", "port", cfg.Port, "model", cfg.OpenAIModel, "base_url", cfg.OpenAIBaseURL)
	if err := app.Serve(ctx, cfg.ShutdownTimeout); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}

	slog.Info("Server stopped")
	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
