package api

import (
	"context"
	"time"

	"weather-app/internal/domain/model/external"
)

// OpenMeteoGateway defines the external calls used to build a weather report
type OpenMeteoGateway interface {
	// SearchCity resolves a city name to its first geocoding match.
	// Returns nil without error when nothing matches.
	SearchCity(ctx context.Context, name string) (*external.GeocodingResult, error)

	// GetDailyArchive fetches daily max/min temperature and precipitation
	// between start and end, inclusive, in the location's timezone
	GetDailyArchive(ctx context.Context, latitude, longitude float64, start, end time.Time) (*external.ArchiveResponse, error)
}
