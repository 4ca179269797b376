package cache

import (
	"context"
	"errors"
	"fmt"
	"log"

	"trail-itinerary-service/internal/ports"
)

// CachingDaylightProvider wraps a DaylightProvider with a read-through cache.
//
// Cache failures are logged and fall through to the model: a broken cache
// degrades performance, never correctness.
type CachingDaylightProvider struct {
	model ports.DaylightProvider
	cache ports.DaylightCache
}

func NewCachingDaylightProvider(model ports.DaylightProvider, cache ports.DaylightCache) (*CachingDaylightProvider, error) {
	if model == nil {
		return nil, errors.New("caching daylight provider: model must be non-nil")
	}
	if cache == nil {
		return nil, errors.New("caching daylight provider: cache must be non-nil")
	}
	return &CachingDaylightProvider{model: model, cache: cache}, nil
}

func (p *CachingDaylightProvider) Daylight(
	ctx context.Context,
	latitudeDeg float64,
	dayOfYear int,
) (ports.DaylightResult, error) {
	if res, ok, err := p.cache.Get(ctx, latitudeDeg, dayOfYear); err != nil {
		log.Printf("daylight cache get failed lat=%.4f doy=%d err=%v", latitudeDeg, dayOfYear, err)
	} else if ok {
		return res, nil
	}

	res, err := p.model.Daylight(ctx, latitudeDeg, dayOfYear)
	if err != nil {
		return ports.DaylightResult{}, fmt.Errorf("caching daylight provider: %w", err)
	}

	if err := p.cache.Put(ctx, latitudeDeg, dayOfYear, res); err != nil {
		log.Printf("daylight cache put failed lat=%.4f doy=%d err=%v", latitudeDeg, dayOfYear, err)
	}

	return res, nil
}
