// Package jsonfile persists each record collection as a single pretty-printed
// JSON array on disk. Reads degrade to an empty collection when the file is
// absent or unreadable; writes rewrite the whole file and fail loudly.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

type store[T any] struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

func newStore[T any](path string, log zerolog.Logger) *store[T] {
	return &store[T]{path: path, log: log.With().Str("collection", path).Logger()}
}

// load reads the whole collection. It never fails: a missing, unreadable or
// malformed file yields an empty collection so reads stay available.
// Callers must hold s.mu.
func (s *store[T]) load() []T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Msg("collection unreadable, treating as empty")
		}
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn().Err(err).Msg("collection malformed, treating as empty")
		return nil
	}
	return records
}

// save overwrites the backing file with the full collection. Unlike load,
// a failed write propagates: silent loss of a write is worse than silent
// loss of a corrupt read. Callers must hold s.mu.
func (s *store[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	return nil
}

// All returns a snapshot of the collection.
func (s *store[T]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update funnels a load→mutate→save sequence through the collection lock,
// so concurrent writers cannot interleave and clobber each other's saves.
// The mutation either returns the new full collection to persist, or an
// error to abort without writing.
func (s *store[T]) Update(fn func(records []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := fn(s.load())
	if err != nil {
		return err
	}
	return s.save(out)
}
