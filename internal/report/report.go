// Package report renders the end-of-run summary for the picture of the day.
package report

import (
	"fmt"
	"io"

	"github.com/starford/sowilo/internal/apod"
)

// Write renders a one-line header followed by the explanation text.
// All four fields are read before anything is written, so a missing key
// produces no partial output.
func Write(w io.Writer, meta apod.Metadata) error {
	date, err := meta.Field("date")
	if err != nil {
		return err
	}
	title, err := meta.Field("title")
	if err != nil {
		return err
	}
	copyright, err := meta.Field("copyright")
	if err != nil {
		return err
	}
	explanation, err := meta.Field("explanation")
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "[%s] %s | %s\n%s\n", date, title, copyright, explanation); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}
