package internal

import (
	"io"
	"log/slog"

	"github.com/starford/sowilo/internal/wallpaper"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	dataDir  string
	baseURL  string
	sink     wallpaper.Sink
	out      io.Writer
	logLevel slog.Level
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithDataDir overrides the directory artifacts are written to.
func WithDataDir(dir string) Option {
	return func(a *application) {
		a.dataDir = dir
	}
}

// WithBaseURL overrides the metadata endpoint.
func WithBaseURL(rawURL string) Option {
	return func(a *application) {
		a.baseURL = rawURL
	}
}

// WithSink injects the wallpaper sink used to apply images.
func WithSink(sink wallpaper.Sink) Option {
	return func(a *application) {
		a.sink = sink
	}
}

// WithOutput redirects the success line and report.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}

// WithLogLevel sets the logging verbosity.
func WithLogLevel(level slog.Level) Option {
	return func(a *application) {
		a.logLevel = level
	}
}
