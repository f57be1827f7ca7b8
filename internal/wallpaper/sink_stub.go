//go:build !windows

package wallpaper

import "fmt"

type unsupportedSink struct{}

// NewSink returns a sink that rejects every call. Setting the desktop
// background is only supported on Windows.
func NewSink() Sink {
	return &unsupportedSink{}
}

func (unsupportedSink) Apply(imagePath string, style Style) error {
	if _, err := style.Config(); err != nil {
		return err
	}
	return fmt.Errorf("wallpaper: setting the desktop background is only supported on windows")
}
