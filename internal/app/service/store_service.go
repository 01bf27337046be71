package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/zubalebr/contestacoes-backend/pkg/logger"
	"github.com/zubalebr/contestacoes-backend/pkg/redis"
)

// StoreSource supplies the raw store column, in sheet order, duplicates
// and blanks included. pkg/sheets and the XLSX reader both satisfy it.
type StoreSource interface {
	FetchStoreColumn(ctx context.Context) ([]string, error)
}

// StoreService serves the list of valid store names.
type StoreService interface {
	ListStores(ctx context.Context) ([]string, error)
	Contains(ctx context.Context, name string) (bool, error)
	Refresh(ctx context.Context) error
}

type storeService struct {
	source StoreSource
	ttl    time.Duration

	mu        sync.RWMutex
	cached    []string
	fetchedAt time.Time
}

// NewStoreService creates the read-through store list: in-process copy
// first, then Redis, then the source. Both caches share the same TTL.
func NewStoreService(source StoreSource, ttl time.Duration) StoreService {
	return &storeService{
		source: source,
		ttl:    ttl,
	}
}

// ListStores returns the distinct, trimmed, lexically sorted store names.
func (s *storeService) ListStores(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		stores := s.cached
		s.mu.RUnlock()
		return stores, nil
	}
	s.mu.RUnlock()

	// Redis survives process restarts and is shared across replicas.
	if stores, err := redis.GetStoreList(ctx); err == nil && stores != nil {
		s.store(stores)
		return stores, nil
	}

	raw, err := s.source.FetchStoreColumn(ctx)
	if err != nil {
		// Serve a stale in-process copy over failing the caller.
		s.mu.RLock()
		stale := s.cached
		s.mu.RUnlock()
		if stale != nil {
			logger.Warn("Store list source failed, serving stale cache", map[string]interface{}{
				"error": err.Error(),
				"age":   time.Since(s.fetchedAt).String(),
			})
			return stale, nil
		}
		logger.Error("Failed to load store list", err)
		return nil, err
	}

	stores := NormalizeStores(raw)
	s.store(stores)
	if err := redis.SetStoreList(ctx, stores, s.ttl); err != nil {
		logger.Warn("Failed to write store list to Redis", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return stores, nil
}

// Contains reports whether name is an exact member of the store list.
func (s *storeService) Contains(ctx context.Context, name string) (bool, error) {
	stores, err := s.ListStores(ctx)
	if err != nil {
		return false, err
	}
	for _, store := range stores {
		if store == name {
			return true, nil
		}
	}
	return false, nil
}

// Refresh bypasses both caches and repopulates them from the source.
// The cron scheduler calls this hourly.
func (s *storeService) Refresh(ctx context.Context) error {
	raw, err := s.source.FetchStoreColumn(ctx)
	if err != nil {
		logger.Error("Store list refresh failed", err)
		return err
	}

	stores := NormalizeStores(raw)
	s.store(stores)
	if err := redis.SetStoreList(ctx, stores, s.ttl); err != nil {
		logger.Warn("Failed to write store list to Redis", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Store list refreshed", map[string]interface{}{
		"count": len(stores),
	})
	return nil
}

func (s *storeService) store(stores []string) {
	s.mu.Lock()
	s.cached = stores
	s.fetchedAt = time.Now()
	s.mu.Unlock()
}

// NormalizeStores trims, drops blanks, de-duplicates and sorts the raw
// column values. cmd/storesync applies the same normalization.
func NormalizeStores(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	stores := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		stores = append(stores, name)
	}
	sort.Strings(stores)
	return stores
}
