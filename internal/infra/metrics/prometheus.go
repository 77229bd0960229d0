package metrics

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cachegateway "weather-app/internal/domain/gateway/cache"
	"weather-app/internal/domain/model"
)

// Namespace prefixes every metric of the service
const Namespace = "weather"

// NewRegistry returns a registry with the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// Handler exposes the registry in the Prometheus text format
func Handler(registry *prometheus.Registry) echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
}

// CacheLookups counts weather cache reads by result: hit, miss or error
type CacheLookups struct {
	lookups *prometheus.CounterVec
	writes  *prometheus.CounterVec
}

func NewCacheLookups(registerer prometheus.Registerer) *CacheLookups {
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Weather cache reads by result.",
	}, []string{"result"})
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "cache",
		Name:      "writes_total",
		Help:      "Weather cache writes by result.",
	}, []string{"result"})
	registerer.MustRegister(lookups, writes)

	return &CacheLookups{lookups: lookups, writes: writes}
}

// Wrap returns a gateway that counts every Get and Put of gateway
func (m *CacheLookups) Wrap(gateway cachegateway.WeatherCacheGateway) cachegateway.WeatherCacheGateway {
	return &instrumentedWeatherCache{next: gateway, metrics: m}
}

type instrumentedWeatherCache struct {
	next    cachegateway.WeatherCacheGateway
	metrics *CacheLookups
}

func (c *instrumentedWeatherCache) Get(ctx context.Context, city string, days int) (*model.WeatherResponse, error) {
	response, err := c.next.Get(ctx, city, days)
	switch {
	case err != nil:
		c.metrics.lookups.WithLabelValues("error").Inc()
	case response == nil:
		c.metrics.lookups.WithLabelValues("miss").Inc()
	default:
		c.metrics.lookups.WithLabelValues("hit").Inc()
	}
	return response, err
}

func (c *instrumentedWeatherCache) Put(ctx context.Context, city string, days int, response *model.WeatherResponse) error {
	err := c.next.Put(ctx, city, days, response)
	if err != nil {
		c.metrics.writes.WithLabelValues("error").Inc()
	} else {
		c.metrics.writes.WithLabelValues("ok").Inc()
	}
	return err
}
