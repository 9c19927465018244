// Package client is the consumer SDK for the ativos API. It bundles the
// credential store, the session guard with proactive token refresh, and a
// typed API client covering categories, schemas and assets.
package client

import "sync"

// CredentialStore holds the process-wide access/refresh token pair. All
// reads and writes go through it; last write wins.
type CredentialStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

// NewCredentialStore creates an empty credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// SetPair stores both tokens. Called after a successful login.
func (s *CredentialStore) SetPair(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
}

// SetAccess replaces only the access token. Called after a successful
// refresh; the refresh token is never touched here.
func (s *CredentialStore) SetAccess(access string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
}

// Clear drops both tokens. Called at logout.
func (s *CredentialStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
}

// Access returns the stored access token, or "" when absent.
func (s *CredentialStore) Access() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// Refresh returns the stored refresh token, or "" when absent.
func (s *CredentialStore) Refresh() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}
