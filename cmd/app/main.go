package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/sowilo/internal"
	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/wallpaper"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg, err := internal.LoadOrInit(configPath)
	if err != nil {
		if errors.Is(err, apperr.ErrSetupRequired) {
			fmt.Printf("Config template created at %s. Fill it in and run again.\n", configPath)
			fmt.Println("You can generate a NASA API key at https://api.nasa.gov/")
			fmt.Printf("Available styles: %s.\n", strings.Join(wallpaper.Styles(), ", "))
		}
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithDataDir(cmd.String("data-dir")),
	}
	if cmd.Bool("verbose") {
		opts = append(opts, internal.WithLogLevel(slog.LevelDebug))
	}

	if err := internal.Run(ctx, opts...); err != nil {
		if errors.Is(err, apperr.ErrUnknownStyle) {
			fmt.Printf("Set a valid style in %s. Available styles: %s.\n",
				configPath, strings.Join(wallpaper.Styles(), ", "))
		}
		return err
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "sowilo",
		Usage:  "Fetch NASA's Astronomy Picture of the Day and set it as the desktop wallpaper",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: internal.DefaultConfigFile,
				Value:       internal.DefaultConfigFile,
				Sources:     cli.EnvVars("SOWILO_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Aliases:     []string{"d"},
				Usage:       "Directory the image and metadata are written to",
				DefaultText: internal.DefaultDataDir,
				Value:       internal.DefaultDataDir,
				Sources:     cli.EnvVars("SOWILO_DATA_DIR"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		stop()
		exit(err)
	}
}

// exit maps an error to the process exit code. A fresh config template
// and an unrecognized style are operator problems, not runtime faults,
// so both leave with code 0. A run that fell back to the default
// wallpaper leaves with code 2 to distinguish it from full success.
func exit(err error) {
	if errors.Is(err, apperr.ErrSetupRequired) || errors.Is(err, apperr.ErrUnknownStyle) {
		os.Exit(0)
	}

	slog.Error("application error", slog.String("error", err.Error()))

	var fallback *internal.FallbackError
	if errors.As(err, &fallback) {
		os.Exit(2)
	}
	os.Exit(1)
}
