package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RevocationRegistry is the set of tokens explicitly invalidated before
// their natural expiry. Presence means reject, even if the signature and
// embedded expiry would otherwise pass. Entries hold the exact serialized
// token, not a derived key.
type RevocationRegistry interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// MemoryRegistry is a process-local concurrent set. A background sweep
// evicts entries whose embedded expiry has passed; an expired token
// fails validation on its own, so eviction never readmits a token.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	done    chan struct{}
	once    sync.Once
}

func NewMemoryRegistry(sweepInterval time.Duration) *MemoryRegistry {

	r := &MemoryRegistry{
		entries: make(map[string]time.Time),
		done:    make(chan struct{}),
	}

	go r.sweep(sweepInterval)

	return r
}

func (r *MemoryRegistry) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[token] = expiresAt

	return nil
}

func (r *MemoryRegistry) IsRevoked(_ context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[token]

	return ok, nil
}

func (r *MemoryRegistry) sweep(interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			now := time.Now()
			removed := 0

			r.mu.Lock()
			for token, expiresAt := range r.entries {
				if expiresAt.Before(now) {
					delete(r.entries, token)
					removed++
				}
			}
			r.mu.Unlock()

			if removed > 0 {
				slog.Debug("Swept expired revocation entries", slog.Int("removed", removed))
			}
		}
	}
}

// Close stops the sweep goroutine. Safe to call more than once.
func (r *MemoryRegistry) Close() {
	r.once.Do(func() {
		close(r.done)
	})
}

// size is test-only.
func (r *MemoryRegistry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
