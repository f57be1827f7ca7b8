package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/pkg/config"
)

// DefaultConfigFile is where the tool looks for its configuration when
// no flag or environment override is given.
const DefaultConfigFile = "config/config.json"

// Config represents the tool configuration.
//
// There is deliberately no Validate hook: an empty or missing value is
// not a load failure. An empty api_key surfaces as a rejected fetch and
// a bad style is caught before any network call.
type Config struct {
	APIKey           string `json:"api_key" yaml:"api_key"`
	DefaultWallpaper string `json:"default_wallpaper" yaml:"default_wallpaper"`
	Style            string `json:"style" yaml:"style"`
}

// LoadOrInit loads the configuration at path. When the file does not
// exist it writes a template with empty values and reports
// apperr.ErrSetupRequired so the caller can point the operator at it.
func LoadOrInit(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		var tpl Config
		if err := config.Save(path, &tpl); err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrConfig, err)
		}
		return nil, fmt.Errorf("%w: template written to %s", apperr.ErrSetupRequired, path)
	}

	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrConfig, err)
	}
	return &cfg, nil
}
