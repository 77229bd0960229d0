package cache

import (
	"context"
	"strings"
	"time"

	cachegateway "weather-app/internal/domain/gateway/cache"
	"weather-app/pkg/log"
	"weather-app/pkg/redis"
	"weather-app/pkg/resource"
)

const (
	ProviderRedis  = "redis"
	ProviderMemory = "memory"
)

// Provider bundles the gateways of the configured weather cache backend
type Provider struct {
	Name    string
	Weather cachegateway.WeatherCacheGateway
	Health  cachegateway.HealthCacheGateway
	// Redis is nil for the memory provider
	Redis *redis.Client
}

// NewProvider picks the cache backend from app.weather.cache.provider, redis by default
func NewProvider(ctx context.Context) *Provider {
	name := strings.ToLower(resource.GetStringOrDefault("app.weather.cache.provider", ProviderRedis))
	switch name {
	case ProviderMemory:
		gateway := cachegateway.NewMemoryWeatherCacheGateway(
			resource.GetDurationOrDefault("app.redis.cache.weather.ttl", time.Hour))
		return &Provider{
			Name:    ProviderMemory,
			Weather: gateway,
			Health:  cachegateway.NewMemoryHealthCacheGateway(gateway),
		}
	case ProviderRedis:
	default:
		log.Warnf("Unknown cache provider %q, using %s", name, ProviderRedis)
	}

	client := NewRedisClient(ctx)
	return &Provider{
		Name:    ProviderRedis,
		Weather: cachegateway.NewRedisWeatherCacheGateway(client),
		Health:  cachegateway.NewRedisHealthCacheGateway(client),
		Redis:   client,
	}
}

func (p *Provider) Close() error {
	if p.Redis == nil {
		return nil
	}
	return p.Redis.Close()
}
