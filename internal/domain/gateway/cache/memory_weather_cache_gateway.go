package cache

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"weather-app/internal/domain/model"
)

// MemoryWeatherCacheGateway keeps reports in process memory, for single-instance setups without redis
type MemoryWeatherCacheGateway struct {
	cache *gocache.Cache
}

var _ WeatherCacheGateway = (*MemoryWeatherCacheGateway)(nil)

func NewMemoryWeatherCacheGateway(ttl time.Duration) *MemoryWeatherCacheGateway {
	return &MemoryWeatherCacheGateway{cache: gocache.New(ttl, 2*ttl)}
}

func (gateway *MemoryWeatherCacheGateway) Get(_ context.Context, city string, days int) (*model.WeatherResponse, error) {
	value, found := gateway.cache.Get(memoryKey(city, days))
	if !found {
		return nil, nil
	}
	response := value.(model.WeatherResponse)
	return &response, nil
}

// Put stores a shallow copy of the report
func (gateway *MemoryWeatherCacheGateway) Put(_ context.Context, city string, days int, response *model.WeatherResponse) error {
	gateway.cache.SetDefault(memoryKey(city, days), *response)
	return nil
}

func memoryKey(city string, days int) string {
	return WeatherCacheName + "::" + cacheKey(city, days)
}

type MemoryHealthCacheGateway struct {
	gateway *MemoryWeatherCacheGateway
}

var _ HealthCacheGateway = (*MemoryHealthCacheGateway)(nil)

func NewMemoryHealthCacheGateway(gateway *MemoryWeatherCacheGateway) *MemoryHealthCacheGateway {
	return &MemoryHealthCacheGateway{gateway: gateway}
}

func (health *MemoryHealthCacheGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"provider": "memory",
			"items":    strconv.Itoa(health.gateway.cache.ItemCount()),
		},
	}
}
