package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/starford/sowilo/internal/apod"
	"github.com/starford/sowilo/internal/apperr"
)

func TestWrite(t *testing.T) {
	meta := apod.Metadata{
		"date":        "2024-01-01",
		"title":       "T",
		"copyright":   "C",
		"explanation": "E",
		"url":         "http://example/img.jpg",
	}
	var buf strings.Builder
	if err := Write(&buf, meta); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "[2024-01-01] T | C\nE\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWrite_MissingFieldProducesNoOutput(t *testing.T) {
	full := apod.Metadata{
		"date":        "2024-01-01",
		"title":       "T",
		"copyright":   "C",
		"explanation": "E",
	}
	for key := range full {
		meta := apod.Metadata{}
		for k, v := range full {
			if k != key {
				meta[k] = v
			}
		}
		var buf strings.Builder
		err := Write(&buf, meta)
		if !errors.Is(err, apperr.ErrMissingField) {
			t.Errorf("missing %q: error = %v, want ErrMissingField", key, err)
		}
		if buf.Len() != 0 {
			t.Errorf("missing %q: wrote %q, want nothing", key, buf.String())
		}
	}
}
