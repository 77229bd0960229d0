package cache

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cachegateway "weather-app/internal/domain/gateway/cache"
	"weather-app/pkg/resource"
)

func TestNewRedisClientFromProperties(t *testing.T) {
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	t.Setenv("WEATHER_TEST_REDIS_PORT", server.Port())
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(`app:
  redis:
    host: "`+server.Host()+`"
    port: "${WEATHER_TEST_REDIS_PORT:6379}"
    database: 2
    cache:
      weather:
        ttl: 5m
`), 0o600))
	resource.Init(path)

	client := NewRedisClient(context.Background())
	defer client.Close()

	config := client.GetConfig()
	assert.Equal(t, server.Host(), config.Host)
	assert.Equal(t, port, config.Port)
	assert.Equal(t, 2, config.Database)
	assert.Equal(t, 5*time.Minute, config.CacheTTLs[cachegateway.WeatherCacheName])
	assert.NoError(t, client.Ping(context.Background()))
}

func TestMemoryProviderHasNoRedisClient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(`app:
  weather:
    cache:
      provider: MEMORY
`), 0o600))
	resource.Init(path)

	provider := NewProvider(context.Background())
	defer provider.Close()

	assert.Equal(t, ProviderMemory, provider.Name)
	assert.Nil(t, provider.Redis)
	assert.IsType(t, &cachegateway.MemoryWeatherCacheGateway{}, provider.Weather)
	assert.Equal(t, "memory", provider.Health.Health(context.Background()).Details["provider"])
}

func TestRedisProviderIsTheDefault(t *testing.T) {
	server := miniredis.RunT(t)
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(`app:
  weather:
    cache:
      provider: ""
  redis:
    address: ""
    host: "`+server.Host()+`"
    port: "`+server.Port()+`"
`), 0o600))
	resource.Init(path)

	provider := NewProvider(context.Background())
	defer provider.Close()

	assert.Equal(t, ProviderRedis, provider.Name)
	require.NotNil(t, provider.Redis)
	assert.Equal(t, server.Host(), provider.Redis.GetConfig().Host)
}

func TestRedisAddressOverridesHostAndPort(t *testing.T) {
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(`app:
  redis:
    address: "`+server.Addr()+`"
    host: "unreachable.invalid"
    port: 1
`), 0o600))
	resource.Init(path)

	client := NewRedisClient(context.Background())
	defer client.Close()

	assert.Equal(t, server.Host(), client.GetConfig().Host)
	assert.Equal(t, port, client.GetConfig().Port)
	assert.NoError(t, client.Ping(context.Background()))
}
