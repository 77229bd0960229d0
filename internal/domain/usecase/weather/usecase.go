package weather

import (
	"context"
	"errors"

	"weather-app/internal/domain/model"
	"weather-app/pkg/util/numberutils"
)

const (
	// MinDays and MaxDays bound the analyzed period
	MinDays = 1
	MaxDays = 92
)

var (
	ErrEmptyCity          = errors.New("city is empty")
	ErrCityNotFound       = errors.New("city not found")
	ErrWeatherUnavailable = errors.New("weather data unavailable")
)

type UseCase interface {
	// GetWeather returns the report of the last days for city, served from cache when present
	GetWeather(ctx context.Context, city string, days int) (*model.WeatherResponse, error)

	// RefreshWeather rebuilds the report for city from upstream and overwrites the cached entry
	RefreshWeather(ctx context.Context, city string, days int) (*model.WeatherResponse, error)

	// RefreshCities refreshes every city in turn and joins the failures
	RefreshCities(ctx context.Context, requestID string, cities []string, days int) error
}

// ClampDays keeps days within [MinDays, MaxDays]
func ClampDays(days int) int {
	return numberutils.ClampInt(days, MinDays, MaxDays)
}
