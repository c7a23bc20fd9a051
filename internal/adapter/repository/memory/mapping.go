// Package memory provides process-local storage for short code mappings and
// their access logs. Both stores are append-only and safe for concurrent use.
package memory

import (
	"fmt"
	"sync"

	"github.com/vadimbarashkov/url-shortener/internal/entity"
)

// MappingStore binds short codes to original URLs.
type MappingStore struct {
	mu   sync.RWMutex
	urls map[string]string
}

func NewMappingStore() *MappingStore {
	return &MappingStore{urls: make(map[string]string)}
}

// InsertIfAbsent binds shortCode to originalURL unless shortCode is already
// bound. It reports whether the insert happened. The check and the write are
// performed under a single lock.
func (s *MappingStore) InsertIfAbsent(shortCode, originalURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.urls[shortCode]; ok {
		return false
	}

	s.urls[shortCode] = originalURL
	return true
}

func (s *MappingStore) Get(shortCode string) (string, error) {
	const op = "adapter.repository.memory.MappingStore.Get"

	s.mu.RLock()
	originalURL, ok := s.urls[shortCode]
	s.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	return originalURL, nil
}

// Len returns the number of stored mappings.
func (s *MappingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.urls)
}
