// Package mocks provides shared test doubles for msyskit packages.
package mocks

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Store implements config.Store over an in-memory map.
// Use NewStore() to create instances with a fluent builder API.
type Store struct {
	mu     sync.Mutex
	values map[string]any

	// Reads counts GetString/GetBool/IsSet calls (thread-safe).
	reads int32
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// With sets a string setting.
func (s *Store) With(key, value string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[strings.ToLower(key)] = value
	return s
}

// WithBool sets a boolean setting.
func (s *Store) WithBool(key string, value bool) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[strings.ToLower(key)] = value
	return s
}

// Unset removes a setting.
func (s *Store) Unset(key string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, strings.ToLower(key))
	return s
}

// GetString returns the string value of key, or "".
func (s *Store) GetString(key string) string {
	atomic.AddInt32(&s.reads, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	v, _ := s.values[strings.ToLower(key)].(string)
	return v
}

// GetBool returns the boolean value of key, or false.
func (s *Store) GetBool(key string) bool {
	atomic.AddInt32(&s.reads, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	v, _ := s.values[strings.ToLower(key)].(bool)
	return v
}

// IsSet reports whether key has a value.
func (s *Store) IsSet(key string) bool {
	atomic.AddInt32(&s.reads, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[strings.ToLower(key)]
	return ok
}

// Reads returns how many lookups the store has served.
func (s *Store) Reads() int {
	return int(atomic.LoadInt32(&s.reads))
}
