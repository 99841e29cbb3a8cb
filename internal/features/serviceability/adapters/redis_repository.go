package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"proculator/internal/core/cache"
	"proculator/internal/features/serviceability/domain"
)

const tableCacheKey = "serviceability_table"

// RedisRepository implements ports.Repository using the cache adapter. The
// whole table lives under a single key so Replace and Clear are atomic.
type RedisRepository struct {
	cache cache.Cache
}

// NewRedisRepository creates a new RedisRepository.
func NewRedisRepository(c cache.Cache) *RedisRepository {
	return &RedisRepository{
		cache: c,
	}
}

// Replace stores the given records as the current table, discarding any
// previous one.
func (r *RedisRepository) Replace(ctx context.Context, records map[string]domain.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal serviceability table: %w", err)
	}

	// TTL 0: the table stays until replaced or cleared.
	if err := r.cache.Set(ctx, tableCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save serviceability table: %w", err)
	}

	return nil
}

// Get retrieves the record for a pincode. It returns nil, nil when no table
// is loaded or the table has no row for the pincode.
func (r *RedisRepository) Get(ctx context.Context, pincode string) (*domain.Record, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		return nil, nil
	}

	rec, ok := records[pincode]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Loaded reports whether a table has been ingested.
func (r *RedisRepository) Loaded(ctx context.Context) (bool, error) {
	_, err := r.cache.Get(ctx, tableCacheKey)
	if errors.Is(err, cache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check serviceability table: %w", err)
	}
	return true, nil
}

// Clear removes the stored table.
func (r *RedisRepository) Clear(ctx context.Context) error {
	if err := r.cache.Delete(ctx, tableCacheKey); err != nil {
		return fmt.Errorf("failed to clear serviceability table: %w", err)
	}
	return nil
}

// load fetches and unmarshals the whole table, or nil when none is stored.
func (r *RedisRepository) load(ctx context.Context) (map[string]domain.Record, error) {
	data, err := r.cache.Get(ctx, tableCacheKey)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get serviceability table: %w", err)
	}

	var records map[string]domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal serviceability table: %w", err)
	}
	return records, nil
}
