package apod

import (
	"encoding/json"
	"fmt"

	"github.com/starford/sowilo/internal/apperr"
)

// Metadata is the open-ended document returned by the metadata endpoint.
// Only a handful of fields are ever read; everything else is carried
// along and persisted untouched.
type Metadata map[string]any

// Field returns the string value stored under key.
func (m Metadata) Field(key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("apod: %w: %q", apperr.ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("apod: %w: %q is not a string", apperr.ErrMissingField, key)
	}
	return s, nil
}

// URL returns the image location the document points at.
func (m Metadata) URL() (string, error) {
	return m.Field("url")
}

// Document renders the metadata pretty-printed for persistence.
func (m Metadata) Document() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("apod: encode metadata: %w", err)
	}
	return data, nil
}
