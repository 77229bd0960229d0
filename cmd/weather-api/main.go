package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-app/configs"
	"weather-app/docs"
	"weather-app/internal/application/controller"
	"weather-app/internal/application/middleware"
	"weather-app/internal/application/schedule"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/usecase/health"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/internal/infra/cache"
	"weather-app/internal/infra/metrics"
	"weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/resource"
)

// @title Weather API
// @version 1.0
// @description Historical weather analysis and next-day forecast by city name.
// @BasePath /
func main() {
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	registry := metrics.NewRegistry()
	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e, registry)

	contextPath := resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath)
	group := e.Group(contextPath)
	if contextPath != "" {
		docs.SwaggerInfo.BasePath = contextPath
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", metrics.Handler(registry))

	cacheProvider := cache.NewProvider(ctx)
	defer func() { _ = cacheProvider.Close() }()
	log.Infof("Weather cache provider: %s", cacheProvider.Name)

	// Init Gateways
	openMeteoGateway := api.NewOpenMeteoGateway(
		resource.GetStringOrDefault("app.weather.geocoding-url", "https://geocoding-api.open-meteo.com"),
		resource.GetStringOrDefault("app.weather.archive-url", "https://archive-api.open-meteo.com"),
		resource.GetStringOrDefault("app.weather.language", "ru"),
		http.ClientOptions{
			ReadTimeout: resource.GetDurationOrDefault("app.weather.timeout", 30*time.Second),
			Logger:      http.NewZapLogger("open-meteo"),
		},
	)
	weatherCacheGateway := metrics.NewCacheLookups(registry).Wrap(cacheProvider.Weather)

	// Init UseCase
	days := weather.ClampDays(resource.GetIntOrDefault("app.weather.days", 30))
	weatherUseCase := weather.NewWeatherUseCase(openMeteoGateway, weatherCacheGateway)
	healthUseCase := health.NewHealthUseCase(cacheProvider.Health)

	// Init Controller
	weatherController := controller.NewWeatherController(group, weatherUseCase, days)
	healthController := controller.NewHealthController(group, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	weatherScheduler := schedule.NewWeatherScheduler(weatherUseCase, cacheProvider.Redis, schedule.WeatherSchedulerConfig{
		CronExpression: resource.GetString("app.weather.warmup.cron"),
		Cities:         resource.GetCSV("app.weather.warmup.cities"),
		Days:           days,
		LockTTL:        resource.GetDurationOrDefault("app.weather.warmup.lock-ttl", 10*time.Minute),
	})
	if err := weatherScheduler.InitWeatherScheduleTasks(ctx); err != nil {
		log.Fatalf("Failed to initialize weather cache warm-up: %v", err)
	}
	defer weatherScheduler.Stop()

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("Server stopped unexpectedly: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stop"))
}
