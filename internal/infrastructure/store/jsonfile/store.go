// Package jsonfile persists each entity collection as a single
// pretty-printed JSON document of shape {"<entities>": [...]} under a
// data directory. Every mutation is a full read-modify-write of the
// document, serialized per entity behind a mutex, with the write going
// through a temp file and rename so a crash never leaves a torn file.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"portfolio-api/internal/api/metrics"
)

// Store owns the data directory and the per-entity locks.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

// New creates the data directory if needed and returns a Store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.RWMutex)}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string { return s.dir }

// locker returns the lock serializing access to one entity file.
func (s *Store) locker(entity string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[entity]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[entity] = l
	}
	return l
}

func (s *Store) path(entity string) string {
	return filepath.Join(s.dir, entity+".json")
}

// read decodes the entity array into out (a pointer to a slice). An
// absent file leaves out untouched, so the store is self-initializing.
// Malformed JSON is a fatal read error propagated to the caller.
func (s *Store) read(entity string, out any) error {
	data, err := os.ReadFile(s.path(entity))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", entity, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", entity, err)
	}
	raw, ok := doc[entity]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", entity, err)
	}
	return nil
}

// write serializes the full collection back to disk, pretty-printed with
// a 2-space indent, via temp file and rename.
func (s *Store) write(entity string, records any) error {
	start := time.Now()
	defer func() {
		metrics.StoreWriteDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
	}()

	doc := map[string]any{entity: records}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", entity, err)
	}
	data = append(data, '\n')

	tmp := s.path(entity) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", entity, err)
	}
	if err := os.Rename(tmp, s.path(entity)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", entity, err)
	}
	return nil
}
