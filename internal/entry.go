// Package internal provides the fetch-and-apply run sequence for sowilo.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/sowilo/internal/apod"
	"github.com/starford/sowilo/internal/report"
	"github.com/starford/sowilo/internal/storage"
	"github.com/starford/sowilo/internal/wallpaper"
)

// DefaultDataDir is where artifacts land when no flag or environment
// override is given.
const DefaultDataDir = "data"

// FallbackError reports that the default wallpaper was applied after the
// live fetch-and-apply path failed. Cause is the error that triggered
// the fallback.
type FallbackError struct {
	Cause error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("fell back to default wallpaper: %v", e.Cause)
}

func (e *FallbackError) Unwrap() error {
	return e.Cause
}

// Run executes one fetch-and-apply cycle with the given options.
//
// The live path fetches the picture of the day, persists both artifacts
// and applies the image. Any error on that path triggers exactly one
// fallback: applying the configured default wallpaper with the same
// style. A successful fallback is still reported as a *FallbackError so
// the caller can exit non-zero.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		dataDir:  DefaultDataDir,
		out:      os.Stdout,
		logLevel: slog.LevelInfo,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured logs go to stderr; stdout carries only the success line
	// and the report.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: app.logLevel,
	}))
	slog.SetDefault(logger)

	// The style is checked before anything touches the network so a
	// configuration typo stays a configuration problem.
	style, err := wallpaper.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}

	logger.Info("Configuration loaded",
		slog.String("data_dir", app.dataDir),
		slog.String("style", string(style)),
		slog.String("log_level", app.logLevel.String()))

	if err := os.MkdirAll(app.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	store, err := storage.NewFS(app.dataDir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	client, err := apod.NewClient(app.baseURL)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}
	svc := apod.NewService(client, store, logger)

	sink := app.sink
	if sink == nil {
		sink = wallpaper.NewSink()
	}

	imagePath, meta, err := svc.Fetch(ctx, cfg.APIKey)
	if err == nil {
		logger.Info("Applying wallpaper", slog.String("image", imagePath))
		err = sink.Apply(imagePath, style)
	}
	if err != nil {
		logger.Warn("Live wallpaper failed, applying default",
			slog.String("fallback", cfg.DefaultWallpaper),
			slog.String("error", err.Error()))
		if fbErr := sink.Apply(cfg.DefaultWallpaper, style); fbErr != nil {
			return errors.Join(err, fbErr)
		}
		return &FallbackError{Cause: err}
	}

	fmt.Fprintln(app.out, "Wallpaper set successfully.")
	if err := report.Write(app.out, meta); err != nil {
		// The wallpaper is already set at this point, so an incomplete
		// document only costs the summary.
		logger.Warn("Report failed", slog.String("error", err.Error()))
	}
	return nil
}
