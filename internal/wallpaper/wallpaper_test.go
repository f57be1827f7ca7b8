package wallpaper

import (
	"errors"
	"strings"
	"testing"

	"github.com/starford/sowilo/internal/apperr"
)

func TestStyleConfigTable(t *testing.T) {
	cases := []struct {
		style Style
		want  StyleConfig
	}{
		{StyleFill, StyleConfig{WallpaperStyle: "10", TileWallpaper: "0"}},
		{StyleFit, StyleConfig{WallpaperStyle: "6", TileWallpaper: "0"}},
		{StyleStretch, StyleConfig{WallpaperStyle: "2", TileWallpaper: "0"}},
		{StyleTile, StyleConfig{WallpaperStyle: "0", TileWallpaper: "1"}},
		{StyleCenter, StyleConfig{WallpaperStyle: "0", TileWallpaper: "0"}},
		{StyleSpan, StyleConfig{WallpaperStyle: "22", TileWallpaper: "0"}},
	}
	for _, tc := range cases {
		got, err := tc.style.Config()
		if err != nil {
			t.Fatalf("Config(%q): %v", tc.style, err)
		}
		if got != tc.want {
			t.Errorf("Config(%q) = %+v, want %+v", tc.style, got, tc.want)
		}
	}
}

func TestConfig_UnknownStyle(t *testing.T) {
	_, err := Style("sideways").Config()
	if !errors.Is(err, apperr.ErrUnknownStyle) {
		t.Fatalf("error = %v, want ErrUnknownStyle", err)
	}
}

func TestParseStyle(t *testing.T) {
	for _, name := range Styles() {
		got, err := ParseStyle(name)
		if err != nil {
			t.Fatalf("ParseStyle(%q): %v", name, err)
		}
		if string(got) != name {
			t.Errorf("ParseStyle(%q) = %q", name, got)
		}
	}
}

func TestParseStyle_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "Fill", "mosaic", " fill"} {
		_, err := ParseStyle(raw)
		if !errors.Is(err, apperr.ErrUnknownStyle) {
			t.Errorf("ParseStyle(%q) error = %v, want ErrUnknownStyle", raw, err)
		}
	}
}

func TestParseStyle_ErrorNamesValidSet(t *testing.T) {
	_, err := ParseStyle("mosaic")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range Styles() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %q", err, name)
		}
	}
}
