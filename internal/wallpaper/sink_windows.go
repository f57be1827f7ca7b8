package wallpaper

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateINIFile   = 0x01
	spifSendChange      = 0x02

	desktopKeyPath = `Control Panel\Desktop`
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

type windowsSink struct{}

// NewSink returns the native Windows sink.
func NewSink() Sink {
	return &windowsSink{}
}

// Apply sets the desktop background via SystemParametersInfo, asking the
// OS to persist the change in the user profile and broadcast it to the
// session, then writes the style values under HKCU\Control Panel\Desktop.
func (windowsSink) Apply(imagePath string, style Style) error {
	cfg, err := style.Config()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(imagePath)
	if err != nil {
		return fmt.Errorf("wallpaper: resolve image path: %w", err)
	}
	path, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return fmt.Errorf("wallpaper: encode image path: %w", err)
	}

	r1, _, callErr := procSystemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(path)),
		uintptr(spifUpdateINIFile|spifSendChange),
	)
	if r1 == 0 {
		return fmt.Errorf("wallpaper: SystemParametersInfo %s: %w", abs, callErr)
	}

	key, err := registry.OpenKey(registry.CURRENT_USER, desktopKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("wallpaper: open desktop key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue("WallpaperStyle", cfg.WallpaperStyle); err != nil {
		return fmt.Errorf("wallpaper: set WallpaperStyle: %w", err)
	}
	if err := key.SetStringValue("TileWallpaper", cfg.TileWallpaper); err != nil {
		return fmt.Errorf("wallpaper: set TileWallpaper: %w", err)
	}
	return nil
}
