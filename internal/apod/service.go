package apod

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/starford/sowilo/internal/checksum"
	"github.com/starford/sowilo/internal/storage"
)

// Artifact file names under the data directory. Each run overwrites both.
const (
	MetadataFile = "apod.json"
	ImageFile    = "apod.jpg"
)

// Service fetches the picture of the day and persists the artifacts.
type Service struct {
	client *Client
	store  storage.Provider
	logger *slog.Logger
}

// NewService creates a new fetch service.
func NewService(client *Client, store storage.Provider, logger *slog.Logger) *Service {
	return &Service{client: client, store: store, logger: logger}
}

// Fetch runs the retrieval sequence: metadata call, metadata file, image
// call, image file. It returns the absolute image path and the parsed
// document. When the image call fails the metadata file already written
// stays on disk referencing an image that was never downloaded; callers
// fall back rather than repair it.
func (s *Service) Fetch(ctx context.Context, apiKey string) (string, Metadata, error) {
	meta, err := s.client.FetchMetadata(ctx, apiKey)
	if err != nil {
		return "", nil, err
	}
	doc, err := meta.Document()
	if err != nil {
		return "", nil, err
	}
	if err := s.store.Write(MetadataFile, doc); err != nil {
		return "", nil, err
	}
	s.logger.Debug("metadata persisted",
		slog.String("file", MetadataFile),
		slog.Int("bytes", len(doc)),
		slog.String("checksum", checksum.Short(doc)))

	imageURL, err := meta.URL()
	if err != nil {
		return "", nil, err
	}
	img, err := s.client.FetchImage(ctx, imageURL)
	if err != nil {
		return "", nil, err
	}
	if err := s.store.Write(ImageFile, img); err != nil {
		return "", nil, err
	}
	s.logger.Debug("image persisted",
		slog.String("file", ImageFile),
		slog.Int("bytes", len(img)),
		slog.String("checksum", checksum.Short(img)))

	return filepath.Join(s.store.Root(), ImageFile), meta, nil
}
