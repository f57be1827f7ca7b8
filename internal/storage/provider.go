// Package storage defines the artifact file-system abstraction.
package storage

// Provider is the interface for artifact file operations.
type Provider interface {
	// Read returns the raw bytes of the file at path (relative to the data root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the data root).
	Write(path string, content []byte) error
	// Root returns the absolute path of the data directory.
	Root() string
}
