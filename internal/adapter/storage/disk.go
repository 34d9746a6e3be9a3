package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// BlobStore persists raw file bytes under opaque stored names.
type BlobStore interface {
	// Save writes the full stream to storage and returns the stored name
	// and the number of bytes actually written.
	Save(originalName string, r io.Reader) (storedName string, size int64, err error)

	// Open opens a stored blob for reading. A missing blob surfaces as an
	// error satisfying os.IsNotExist.
	Open(storedName string) (io.ReadCloser, error)

	// Remove deletes a stored blob. A blob already absent is not an error.
	Remove(storedName string) error
}

// DiskStore implements BlobStore on a local directory.
type DiskStore struct {
	dir string
	log *zap.Logger
	now func() time.Time
}

// NewDiskStore creates a DiskStore rooted at dir, creating the directory if
// absent.
func NewDiskStore(dir string, log *zap.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	log.Info("blob storage ready", zap.String("dir", dir))
	return &DiskStore{dir: dir, log: log, now: time.Now}, nil
}

// storedNameFor prefixes the original filename with a timestamp so that
// same-named uploads do not overwrite each other.
func (s *DiskStore) storedNameFor(originalName string) string {
	return fmt.Sprintf("%s_%s", s.now().Format("20060102_150405"), originalName)
}

// Save writes the stream to disk under a timestamp-prefixed name. The size
// is counted from bytes written, never from a client-declared header. A
// partial write is cleaned up and reported as an error.
func (s *DiskStore) Save(originalName string, r io.Reader) (string, int64, error) {
	storedName := s.storedNameFor(originalName)
	path := s.Path(storedName)

	f, err := os.Create(path)
	if err != nil {
		s.log.Error("failed to create blob file", zap.String("path", path), zap.Error(err))
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		s.log.Error("failed to write blob file", zap.String("path", path), zap.Error(err))
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	s.log.Info("blob stored", zap.String("stored_name", storedName), zap.Int64("size", size))
	return storedName, size, nil
}

// Open opens a stored blob for reading.
func (s *DiskStore) Open(storedName string) (io.ReadCloser, error) {
	return os.Open(s.Path(storedName))
}

// Remove deletes a stored blob, tolerating blobs already absent from disk.
func (s *DiskStore) Remove(storedName string) error {
	err := os.Remove(s.Path(storedName))
	if err != nil && !os.IsNotExist(err) {
		s.log.Error("failed to remove blob", zap.String("stored_name", storedName), zap.Error(err))
		return fmt.Errorf("failed to remove file: %w", err)
	}
	if os.IsNotExist(err) {
		s.log.Warn("blob already absent on remove", zap.String("stored_name", storedName))
	}
	return nil
}

// Path resolves a stored name inside the storage directory.
func (s *DiskStore) Path(storedName string) string {
	return filepath.Join(s.dir, storedName)
}
