// Package cache implements the file-backed TTL store that shields the scoring
// layer from source latency and outages. One JSON file per key under a
// configured directory; entries survive process restarts and expire only by
// age, never by eviction.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/causentia/backend/pkg/logger"
)

// envelope is the on-disk shape: fetch timestamp plus opaque payload
type envelope struct {
	Timestamp float64         `json:"ts"` // unix seconds
	Payload   json.RawMessage `json:"payload"`
}

// Store is a file-per-key cache with a single process-wide TTL
type Store struct {
	dir    string
	ttl    time.Duration
	logger *logger.Logger

	// now is swapped in tests to simulate clock advance
	now func() time.Time
}

// New creates a Store rooted at dir, creating the directory if needed
func New(dir string, ttl time.Duration, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	return &Store{
		dir:    dir,
		ttl:    ttl,
		logger: log,
		now:    time.Now,
	}, nil
}

// TTL returns the store's time-to-live
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get reads the payload for key into dest. It returns false when the key is
// missing or its entry is older than the TTL; the freshness check uses the
// timestamp read from the same entry, so read-then-check is atomic per entry.
func (s *Store) Get(key string, dest interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		// Missing file is a plain miss
		return false, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Corrupt entry is treated as absent; the next Set overwrites it
		s.logger.WithError(err).WithField("key", key).Warn("Discarding corrupt cache entry")
		return false, nil
	}

	fetchedAt := time.Unix(0, int64(env.Timestamp*float64(time.Second)))
	if s.now().Sub(fetchedAt) >= s.ttl {
		return false, nil
	}

	if err := json.Unmarshal(env.Payload, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal failed: %w", err)
	}

	return true, nil
}

// Set stores value under key with the current timestamp. Concurrent writers
// of the same key are last-write-wins via rename.
func (s *Store) Set(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	data, err := json.Marshal(envelope{
		Timestamp: float64(s.now().UnixNano()) / float64(time.Second),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("cache envelope marshal failed: %w", err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("cache rename failed: %w", err)
	}

	return nil
}

// GetOrSet reads key into dest, calling fn to populate the cache on a miss
func (s *Store) GetOrSet(key string, dest interface{}, fn func() (interface{}, error)) error {
	found, err := s.Get(key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	value, err := fn()
	if err != nil {
		return err
	}

	if err := s.Set(key, value); err != nil {
		// A failed write only costs a refetch later
		s.logger.WithError(err).WithField("key", key).Warn("Cache write failed")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return json.Unmarshal(data, dest)
}

// Clear removes every entry
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("recreate cache dir: %w", err)
	}
	return nil
}

// path maps a key to its file, sanitizing anything unsafe for a filename
func (s *Store) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_' || r == '-' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, safe+".json")
}
