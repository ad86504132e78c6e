package memory

import (
	"context"
	"sync"
	"time"

	"github.com/soham-0510/vyapar-sathi-final/internal/application/auth"
)

var _ auth.TokenStore = (*TokenStore)(nil)

type tokenEntry struct {
	userID    string
	expiresAt time.Time
}

// TokenStore keeps refresh tokens in a map with per-token expiry.
// Suitable for tests and single-instance deployments without Redis.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]tokenEntry
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]tokenEntry)}
}

func (s *TokenStore) Save(_ context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = tokenEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *TokenStore) Get(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	entry, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return "", nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
		return "", nil
	}
	return entry.userID, nil
}

func (s *TokenStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
