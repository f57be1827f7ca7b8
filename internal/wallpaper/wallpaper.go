// Package wallpaper applies an image as the desktop background together
// with its display style.
package wallpaper

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/sowilo/internal/apperr"
)

// Style is a desktop background display mode.
type Style string

// Recognized styles.
const (
	StyleFill    Style = "fill"
	StyleFit     Style = "fit"
	StyleStretch Style = "stretch"
	StyleTile    Style = "tile"
	StyleCenter  Style = "center"
	StyleSpan    Style = "span"
)

// StyleConfig holds the two registry values controlling how the image is
// arranged on the desktop.
type StyleConfig struct {
	WallpaperStyle string
	TileWallpaper  string
}

var styleTable = map[Style]StyleConfig{
	StyleFill:    {WallpaperStyle: "10", TileWallpaper: "0"},
	StyleFit:     {WallpaperStyle: "6", TileWallpaper: "0"},
	StyleStretch: {WallpaperStyle: "2", TileWallpaper: "0"},
	StyleTile:    {WallpaperStyle: "0", TileWallpaper: "1"},
	StyleCenter:  {WallpaperStyle: "0", TileWallpaper: "0"},
	StyleSpan:    {WallpaperStyle: "22", TileWallpaper: "0"},
}

// Styles returns the recognized style names in display order.
func Styles() []string {
	return []string{
		string(StyleFill),
		string(StyleFit),
		string(StyleStretch),
		string(StyleTile),
		string(StyleCenter),
		string(StyleSpan),
	}
}

// ParseStyle validates raw against the recognized set.
func ParseStyle(raw string) (Style, error) {
	err := validation.Validate(raw,
		validation.Required,
		validation.In(
			string(StyleFill),
			string(StyleFit),
			string(StyleStretch),
			string(StyleTile),
			string(StyleCenter),
			string(StyleSpan),
		),
	)
	if err != nil {
		return "", fmt.Errorf("wallpaper: %w: %q (available: %s)",
			apperr.ErrUnknownStyle, raw, strings.Join(Styles(), ", "))
	}
	return Style(raw), nil
}

// Config returns the registry value pair for s.
func (s Style) Config() (StyleConfig, error) {
	cfg, ok := styleTable[s]
	if !ok {
		return StyleConfig{}, fmt.Errorf("wallpaper: %w: %q", apperr.ErrUnknownStyle, s)
	}
	return cfg, nil
}

// Sink applies an image as the desktop background. Implementations
// resolve imagePath to an absolute path before handing it to the OS.
type Sink interface {
	Apply(imagePath string, style Style) error
}
