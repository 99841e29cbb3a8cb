package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"proculator/internal/core/cache"
	"proculator/internal/core/logger"
	"proculator/internal/features/pincode/domain"
	"proculator/internal/features/pincode/ports"

	"go.uber.org/zap"
)

const cacheKeyPrefix = "pincode:"

// CachedProvider decorates a LookupProvider with a cache. Only successful
// resolutions are cached; unknown pincodes always hit the upstream.
type CachedProvider struct {
	inner  ports.LookupProvider
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProvider creates a new CachedProvider.
func NewCachedProvider(inner ports.LookupProvider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		cache:  c,
		ttl:    ttl,
		logger: logger.Named("pincode_cache"),
	}
}

// Lookup implements ports.LookupProvider. Cache failures degrade to the
// upstream lookup instead of failing the request.
func (p *CachedProvider) Lookup(ctx context.Context, pincode string) (*domain.Location, error) {
	key := cacheKeyPrefix + pincode

	data, err := p.cache.Get(ctx, key)
	if err == nil {
		var loc domain.Location
		if err := json.Unmarshal(data, &loc); err == nil {
			return &loc, nil
		}
		p.logger.Warn("discarding corrupt cache entry", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		p.logger.Warn("pincode cache unavailable", zap.Error(err))
	}

	loc, err := p.inner.Lookup(ctx, pincode)
	if err != nil || loc == nil {
		return loc, err
	}

	if data, err := json.Marshal(loc); err == nil {
		if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
			p.logger.Warn("failed to cache pincode lookup", zap.Error(err))
		}
	}

	return loc, nil
}
