package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// File is a Store backed by a single JSON file.
// Concurrent CLI invocations are serialized with an advisory file lock so
// two processes toggling preferences do not clobber each other
type File struct {
	path string
	lock *flock.Flock
	mu   sync.Mutex
}

// NewFile returns a file-backed store at path.
// The parent directory is created on first write, not here
func NewFile(path string) *File {
	return &File{path: path, lock: flock.New(path + ".lock")}
}

// Get reads the payload for key. Corrupt or unreadable files read as empty
func (s *File) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.read()
	raw, ok := m[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

// Set stores payload under key and rewrites the file atomically
func (s *File) Set(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = s.lock.Unlock() }()

	m := s.read()
	m[key] = json.RawMessage(payload)
	return s.write(m)
}

// Delete removes key and rewrites the file
func (s *File) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = s.lock.Unlock() }()

	m := s.read()
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.write(m)
}

// read loads the whole file; any error yields an empty map so callers
// degrade to defaults instead of failing
func (s *File) read() map[string]json.RawMessage {
	m := make(map[string]json.RawMessage)
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return m
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return make(map[string]json.RawMessage)
	}
	return m
}

// write persists the map via a temp file rename
func (s *File) write(m map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
