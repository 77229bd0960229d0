package weather

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/cache"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// sharedBuildTimeout bounds an upstream build that no longer depends on the request that started it
const sharedBuildTimeout = time.Minute

type weatherUseCase struct {
	apiGateway   api.OpenMeteoGateway
	cacheGateway cache.WeatherCacheGateway
	now          func() time.Time
	// inflight joins concurrent misses on the same city and period into one upstream build
	inflight singleflight.Group
}

func NewWeatherUseCase(apiGateway api.OpenMeteoGateway, cacheGateway cache.WeatherCacheGateway) UseCase {
	return &weatherUseCase{
		apiGateway:   apiGateway,
		cacheGateway: cacheGateway,
		now:          time.Now,
	}
}

// GetWeather returns the cached report or builds and caches a new one
func (uc *weatherUseCase) GetWeather(ctx context.Context, city string, days int) (*model.WeatherResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}
	days = ClampDays(days)

	cached, err := uc.cacheGateway.Get(ctx, city, days)
	if err != nil {
		log.Warn("Failed to read weather cache", zap.String("city", city), zap.Int("days", days), zap.Error(err))
	}
	if cached != nil {
		log.Debug(msg.GetMessage("weather.cache.hit", city), zap.Int("days", days))
		return cached, nil
	}
	log.Debug(msg.GetMessage("weather.cache.miss", city), zap.Int("days", days))

	// the shared build outlives any single caller; each caller still stops waiting on its own context
	results := uc.inflight.DoChan(strings.ToLower(city)+":"+strconv.Itoa(days), func() (any, error) {
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedBuildTimeout)
		defer cancel()
		return uc.RefreshWeather(buildCtx, city, days)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		if result.Shared {
			log.Debug("Weather report shared between concurrent requests", zap.String("city", city), zap.Int("days", days))
		}
		return result.Val.(*model.WeatherResponse), nil
	}
}

// RefreshWeather builds the report from upstream and stores it
func (uc *weatherUseCase) RefreshWeather(ctx context.Context, city string, days int) (*model.WeatherResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}
	days = ClampDays(days)

	response, err := uc.buildReport(ctx, city, days)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheGateway.Put(ctx, city, days, response); err != nil {
		log.Warn("Failed to write weather cache", zap.String("city", city), zap.Int("days", days), zap.Error(err))
	}

	return response, nil
}

// RefreshCities refreshes each city sequentially, stopping early only on context cancellation
func (uc *weatherUseCase) RefreshCities(ctx context.Context, requestID string, cities []string, days int) error {
	var errs []error
	refreshed := 0

	for _, city := range cities {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if _, err := uc.RefreshWeather(ctx, city, days); err != nil {
			log.Warn("Failed to refresh weather",
				zap.String("request_id", requestID),
				zap.String("city", city),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", city, err))
			continue
		}
		refreshed++
	}

	log.Info("Weather refresh finished",
		zap.String("request_id", requestID),
		zap.Int("total", len(cities)),
		zap.Int("refreshed", refreshed),
		zap.Int("failed", len(cities)-refreshed))

	return errors.Join(errs...)
}

// buildReport geocodes the city, fetches the archive and analyzes it
func (uc *weatherUseCase) buildReport(ctx context.Context, city string, days int) (*model.WeatherResponse, error) {
	location, err := uc.apiGateway.SearchCity(ctx, city)
	if err != nil {
		log.Warn("Geocoding failed", zap.String("city", city), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCityNotFound, err)
	}
	if location == nil {
		return nil, ErrCityNotFound
	}

	end := uc.now()
	start := end.AddDate(0, 0, -days)

	archive, err := uc.apiGateway.GetDailyArchive(ctx, location.Latitude, location.Longitude, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}
	if archive == nil || archive.Daily == nil {
		return nil, fmt.Errorf("%w: archive has no daily block", ErrWeatherUnavailable)
	}

	records := toDailyRecords(archive.Daily)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no complete day in archive", ErrWeatherUnavailable)
	}

	tempsMax := make([]float64, len(records))
	tempsMin := make([]float64, len(records))
	precipitation := make([]float64, len(records))
	for i, record := range records {
		tempsMax[i] = record.TempMax
		tempsMin[i] = record.TempMin
		precipitation[i] = record.Precipitation
	}

	return &model.WeatherResponse{
		CityName:    location.Name,
		Country:     location.Country,
		WeatherData: records,
		Analysis:    Analyze(tempsMax, tempsMin, precipitation),
	}, nil
}

// toDailyRecords keeps the days that have both temperatures; missing precipitation counts as zero
func toDailyRecords(daily *external.ArchiveDaily) []model.DailyRecord {
	records := make([]model.DailyRecord, 0, len(daily.Time))
	for i, date := range daily.Time {
		tempMax := valueAt(daily.Temperature2mMax, i)
		tempMin := valueAt(daily.Temperature2mMin, i)
		if tempMax == nil || tempMin == nil {
			continue
		}

		precipitation := 0.0
		if p := valueAt(daily.PrecipitationSum, i); p != nil {
			precipitation = *p
		}

		records = append(records, model.DailyRecord{
			Date:          date,
			TempMax:       *tempMax,
			TempMin:       *tempMin,
			Precipitation: precipitation,
		})
	}
	return records
}

func valueAt(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}
