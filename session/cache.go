package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
)

// CacheStore keeps sessions JSON-encoded in an in-process bigcache.
// Sessions idle for longer than the TTL read as not found; the cache
// drops them on its next clean.
type CacheStore struct {
	cache *bigcache.BigCache
}

// NewCacheStore creates a cache-backed store with the given idle TTL.
func NewCacheStore(ctx context.Context, ttl time.Duration) (*CacheStore, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.CleanWindow = ttl / 2
	cfg.Verbose = false

	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating session cache: %w", err)
	}
	return &CacheStore{cache: cache}, nil
}

func (s *CacheStore) Get(ctx context.Context, id string) (*State, error) {
	b, info, err := s.cache.GetWithInfo(id)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading session %s: %w", id, err)
	}
	if info.EntryStatus == bigcache.Expired {
		return nil, ErrNotFound
	}

	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}
	return &st, nil
}

func (s *CacheStore) Save(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now()

	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", state.ID, err)
	}
	if err := s.cache.Set(state.ID, b); err != nil {
		return fmt.Errorf("writing session %s: %w", state.ID, err)
	}
	return nil
}

func (s *CacheStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(id); err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}

// Len returns the number of cached sessions.
func (s *CacheStore) Len() int {
	return s.cache.Len()
}

// Close stops the cache's background cleanup.
func (s *CacheStore) Close() error {
	return s.cache.Close()
}
