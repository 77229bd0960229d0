package api

import (
	"context"

	"weather-app/internal/domain/model"
)

// WeatherServiceGateway is the client side of POST /get_weather
type WeatherServiceGateway interface {
	// GetWeather sends exactly one request for city. Failures are returned
	// as *model.WeatherError with kind RequestFailed or TransportOrParseFailure.
	GetWeather(ctx context.Context, city string) (*model.WeatherResponse, error)
}
