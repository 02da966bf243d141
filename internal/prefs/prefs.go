// Package prefs provides a small persisted key-value preference port.
// Table column visibility (and any other per-user UI preference) goes
// through a Store so the logic stays testable without a real filesystem
package prefs

import (
	"sync"
)

// Store persists named preference payloads across sessions.
// Implementations must treat missing keys as "no preference" and must
// never fail a read because of corrupt content; corrupt entries read as
// absent so callers fall back to their defaults
type Store interface {
	// Get returns the payload for key and whether one was stored
	Get(key string) ([]byte, bool)
	// Set stores the payload for key, replacing any previous value
	Set(key string, payload []byte) error
	// Delete removes the payload for key if present
	Delete(key string) error
}

// Memory is an in-process Store for tests and ephemeral sessions
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory { return &Memory{m: make(map[string][]byte)} }

// Get returns the stored payload for key
func (s *Memory) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

// Set stores payload under key
func (s *Memory) Set(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.m[key] = cp
	return nil
}

// Delete removes key
func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
