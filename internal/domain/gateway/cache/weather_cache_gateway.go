package cache

import (
	"context"

	"weather-app/internal/domain/model"
)

// WeatherCacheGateway stores finished weather reports per city and period
type WeatherCacheGateway interface {
	// Get returns the cached report, or nil without error on a miss
	Get(ctx context.Context, city string, days int) (*model.WeatherResponse, error)

	// Put stores the report with the configured TTL
	Put(ctx context.Context, city string, days int, response *model.WeatherResponse) error
}

// HealthCacheGateway reports the state of the cache backend
type HealthCacheGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
