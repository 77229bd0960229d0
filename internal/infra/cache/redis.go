package cache

import (
	"context"
	"time"

	cachegateway "weather-app/internal/domain/gateway/cache"
	"weather-app/pkg/log"
	"weather-app/pkg/redis"
	"weather-app/pkg/resource"
)

// NewRedisClient builds the redis client from the app.redis.* properties.
// An unreachable server is logged, not fatal: the weather cache degrades to pass-through.
func NewRedisClient(ctx context.Context) *redis.Client {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(cachegateway.WeatherCacheName, resource.GetDurationOrDefault("app.redis.cache.weather.ttl", time.Hour))
	// a single host:port, as container platforms usually provide it, wins over host and port
	if address := resource.GetString("app.redis.address"); address != "" {
		config.WithAddress(address)
	}

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid redis configuration: %v", err)
	}

	client := redis.NewClient(config)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		log.Warnf("Redis at %s:%d is not reachable, weather cache disabled until it is: %v", config.Host, config.Port, err)
	}

	return client
}
