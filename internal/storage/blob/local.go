// Package blob stores raw video payloads as one file per record under a
// single local directory, publicly reachable at a fixed URL prefix.
package blob

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/teachertube/backend/internal/catalog/models"
)

// LocalStorage writes blobs into baseDir and maps them to baseURL/<fileName>.
// The fileName→URL mapping is deterministic and stable for the life of a record.
type LocalStorage struct {
	baseDir  string
	baseURL  string
	maxBytes int64
	log      zerolog.Logger
}

func NewLocalStorage(baseDir, baseURL string, maxBytes int64, log zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob directory %s: %w", baseDir, err)
	}
	return &LocalStorage{
		baseDir:  baseDir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
		log:      log.With().Str("component", "blob_storage").Logger(),
	}, nil
}

// Save streams src into a blob named fileName. Payloads beyond the configured
// ceiling fail with models.ErrPayloadTooLarge; any failure removes the partial
// file, so a failed save never leaves an orphaned blob behind.
func (s *LocalStorage) Save(fileName string, src io.Reader) error {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return fmt.Errorf("%w: bad blob name %q", models.ErrInvalidArgument, fileName)
	}

	dstPath := filepath.Join(s.baseDir, fileName)
	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create blob %s: %w", dstPath, err)
	}

	// Read one byte past the limit so an exactly-at-limit payload passes.
	written, err := io.Copy(dst, io.LimitReader(src, s.maxBytes+1))
	closeErr := dst.Close()

	switch {
	case err != nil:
		_ = os.Remove(dstPath)
		return fmt.Errorf("write blob %s: %w", dstPath, err)
	case closeErr != nil:
		_ = os.Remove(dstPath)
		return fmt.Errorf("close blob %s: %w", dstPath, closeErr)
	case written > s.maxBytes:
		_ = os.Remove(dstPath)
		return fmt.Errorf("%w: payload exceeds %d bytes", models.ErrPayloadTooLarge, s.maxBytes)
	}

	s.log.Debug().Str("file", fileName).Int64("bytes", written).Msg("blob stored")
	return nil
}

// Remove deletes the blob if present. A missing blob is not an error: delete
// is idempotent with respect to filesystem state.
func (s *LocalStorage) Remove(fileName string) error {
	if fileName == "" {
		return nil
	}
	dstPath := filepath.Join(s.baseDir, filepath.Base(fileName))
	if err := os.Remove(dstPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Str("file", fileName).Msg("blob to delete already absent")
			return nil
		}
		return fmt.Errorf("remove blob %s: %w", dstPath, err)
	}
	return nil
}

// URL returns the public access path for a stored blob.
func (s *LocalStorage) URL(fileName string) string {
	return s.baseURL + "/" + fileName
}

// Path returns the filesystem location of a stored blob.
func (s *LocalStorage) Path(fileName string) string {
	return filepath.Join(s.baseDir, filepath.Base(fileName))
}

// Dir returns the directory the HTTP layer should serve under the URL prefix.
func (s *LocalStorage) Dir() string {
	return s.baseDir
}
