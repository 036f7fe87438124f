package repository

import (
	"context"
	"sync"
	"time"

	"github.com/reshetovitsme/chat-moderator/internal/modules/admincache/domain"
)

type memoryKey struct {
	chatID int64
	userID int64
}

// MemoryStore keeps entries in process memory for single-instance deployments
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[memoryKey]domain.Entry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[memoryKey]domain.Entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, chatID, userID int64) (*domain.Entry, bool, error) {
	key := memoryKey{chatID: chatID, userID: userID}

	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !entry.Valid(s.now()) {
		s.mu.Lock()
		// Only drop it if nobody refreshed it meanwhile
		if cur, ok := s.entries[key]; ok && !cur.Valid(s.now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}

	return &entry, true, nil
}

func (s *MemoryStore) Set(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[memoryKey{chatID: entry.ChatID, userID: entry.UserID}] = entry
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, chatID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, memoryKey{chatID: chatID, userID: userID})
	return nil
}

// Len returns the number of stored entries, expired ones included
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
