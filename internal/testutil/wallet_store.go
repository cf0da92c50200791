package testutil

import (
	"context"
	"event_ticketing/internal/domain"
	"sync"
)

// MemoryWalletStore is an in-process WalletStore. The mutex plays the role of
// the database's row lock so every call is atomic.
type MemoryWalletStore struct {
	mu      sync.Mutex
	nextID  uint
	wallets map[string]*domain.Wallet
	Inserts int // Number of wallets created
}

// NewMemoryWalletStore creates an empty store
func NewMemoryWalletStore() *MemoryWalletStore {
	return &MemoryWalletStore{wallets: map[string]*domain.Wallet{}}
}

// FindOrCreate returns a copy of the wallet, inserting it on first use
func (s *MemoryWalletStore) FindOrCreate(_ context.Context, userID string) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.upsertLocked(userID)
	cp := *w
	return &cp, nil
}

// Increment adds delta under the store lock, like a single UPDATE
func (s *MemoryWalletStore) Increment(_ context.Context, userID string, delta float64) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.upsertLocked(userID)
	w.Balance += delta
	cp := *w
	return &cp, nil
}

// Count returns the number of stored wallets
func (s *MemoryWalletStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.wallets)
}

func (s *MemoryWalletStore) upsertLocked(userID string) *domain.Wallet {
	w, ok := s.wallets[userID]
	if !ok {
		s.nextID++
		w = &domain.Wallet{ID: s.nextID, UserID: userID}
		s.wallets[userID] = w
		s.Inserts++
	}
	return w
}
