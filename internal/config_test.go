package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/sowilo/internal/apperr"
)

func TestLoadOrInit_FirstRunWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "config.json")

	_, err := LoadOrInit(path)
	if !errors.Is(err, apperr.ErrSetupRequired) {
		t.Fatalf("error = %v, want ErrSetupRequired", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("template not written: %v", err)
	}
	want := "{\n    \"api_key\": \"\",\n    \"default_wallpaper\": \"\",\n    \"style\": \"\"\n}"
	if string(data) != want {
		t.Errorf("template = %q, want %q", data, want)
	}
}

func TestLoadOrInit_UntouchedTemplateLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if _, err := LoadOrInit(path); !errors.Is(err, apperr.ErrSetupRequired) {
		t.Fatalf("first run error = %v, want ErrSetupRequired", err)
	}

	// An unfilled template is valid JSON. The empty style is caught
	// later, before any network call.
	cfg, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if cfg.APIKey != "" || cfg.DefaultWallpaper != "" || cfg.Style != "" {
		t.Errorf("config = %+v, want empty fields", cfg)
	}
}

func TestLoadOrInit_MalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadOrInit(path)
	if !errors.Is(err, apperr.ErrConfig) {
		t.Fatalf("error = %v, want ErrConfig", err)
	}
}

func TestLoadOrInit_ValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"api_key": "k", "default_wallpaper": "C:\\walls\\default.jpg", "style": "fill"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("LoadOrInit: %v", err)
	}
	if cfg.APIKey != "k" {
		t.Errorf("api_key = %q, want %q", cfg.APIKey, "k")
	}
	if cfg.DefaultWallpaper != `C:\walls\default.jpg` {
		t.Errorf("default_wallpaper = %q", cfg.DefaultWallpaper)
	}
	if cfg.Style != "fill" {
		t.Errorf("style = %q, want fill", cfg.Style)
	}
}

func TestLoadOrInit_YAMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "api_key: k\ndefault_wallpaper: /walls/default.jpg\nstyle: span\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("LoadOrInit: %v", err)
	}
	if cfg.APIKey != "k" || cfg.DefaultWallpaper != "/walls/default.jpg" || cfg.Style != "span" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadOrInit_ExpandsEnvironment(t *testing.T) {
	t.Setenv("NASA_API_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"api_key": "${NASA_API_KEY}", "default_wallpaper": "/walls/d.jpg", "style": "fit"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("LoadOrInit: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("api_key = %q, want %q", cfg.APIKey, "from-env")
	}
}
