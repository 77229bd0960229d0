package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-app/internal/domain/model"
	"weather-app/pkg/redis"
)

// WeatherCacheName is the redis key namespace of cached weather reports
const WeatherCacheName = "weather"

type RedisWeatherCacheGateway struct {
	cache *redis.Cache
}

var _ WeatherCacheGateway = (*RedisWeatherCacheGateway)(nil)

func NewRedisWeatherCacheGateway(client *redis.Client) *RedisWeatherCacheGateway {
	return &RedisWeatherCacheGateway{
		cache: redis.NewCache(client, redis.NewCacheOptions().WithCacheName(WeatherCacheName)),
	}
}

func (gateway *RedisWeatherCacheGateway) Get(ctx context.Context, city string, days int) (*model.WeatherResponse, error) {
	var response model.WeatherResponse
	err := gateway.cache.Get(ctx, cacheKey(city, days), &response)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (gateway *RedisWeatherCacheGateway) Put(ctx context.Context, city string, days int, response *model.WeatherResponse) error {
	return gateway.cache.Set(ctx, cacheKey(city, days), response)
}

// cacheKey is case-insensitive on the city, so "Paris" and "paris" share an entry
func cacheKey(city string, days int) string {
	return fmt.Sprintf("%s:%d", strings.ToLower(strings.TrimSpace(city)), days)
}

type RedisHealthCacheGateway struct {
	checker *redis.HealthChecker
}

var _ HealthCacheGateway = (*RedisHealthCacheGateway)(nil)

func NewRedisHealthCacheGateway(client *redis.Client) *RedisHealthCacheGateway {
	return &RedisHealthCacheGateway{checker: redis.NewHealthChecker(client)}
}

func (gateway *RedisHealthCacheGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}
