// Package prefs provides the durable key/value preference store and the
// persisted model selection.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// Store is a durable string key/value mapping.
//
// Implementations must be safe for concurrent use: writes are serialized so
// that two callers never lose each other's updates.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set persists value under key before returning.
	Set(key, value string) error
}

// FileStore keeps preferences in a single JSON object on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the JSON file at path.
// The file and its directory are created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Get reads key from the backing file
func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read preferences: %w", err)
	}

	if len(data) == 0 {
		return "", false, nil
	}
	if !gjson.ValidBytes(data) {
		return "", false, fmt.Errorf("failed to parse preferences: invalid JSON in %s", s.path)
	}

	res := gjson.GetBytes(data, escapePath(key))
	if !res.Exists() || res.Type != gjson.String {
		return "", false, nil
	}
	return res.String(), true, nil
}

// Set writes key and flushes the file to disk before returning
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := map[string]string{}
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil && len(data) > 0:
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse preferences: %w", err)
		}
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	values[key] = value

	out, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	return writeFileSync(s.path, out)
}

// writeFileSync replaces path atomically via a synced temp file and rename.
func writeFileSync(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close preferences: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("failed to set preferences mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}
	return nil
}

// escapePath makes key a literal gjson path.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MemoryStore is an in-process Store, used by tests and ephemeral sessions.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Len returns the number of stored keys
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
