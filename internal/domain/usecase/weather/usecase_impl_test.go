package weather

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/model/external"
)

type MockOpenMeteoGateway struct {
	mock.Mock
}

func (m *MockOpenMeteoGateway) SearchCity(ctx context.Context, name string) (*external.GeocodingResult, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.GeocodingResult), args.Error(1)
}

func (m *MockOpenMeteoGateway) GetDailyArchive(ctx context.Context, latitude, longitude float64, start, end time.Time) (*external.ArchiveResponse, error) {
	args := m.Called(ctx, latitude, longitude, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.ArchiveResponse), args.Error(1)
}

type MockWeatherCacheGateway struct {
	mock.Mock
}

func (m *MockWeatherCacheGateway) Get(ctx context.Context, city string, days int) (*model.WeatherResponse, error) {
	args := m.Called(ctx, city, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeatherResponse), args.Error(1)
}

func (m *MockWeatherCacheGateway) Put(ctx context.Context, city string, days int, response *model.WeatherResponse) error {
	args := m.Called(ctx, city, days, response)
	return args.Error(0)
}

var fixedNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(apiGateway *MockOpenMeteoGateway, cacheGateway *MockWeatherCacheGateway) *weatherUseCase {
	return &weatherUseCase{
		apiGateway:   apiGateway,
		cacheGateway: cacheGateway,
		now:          func() time.Time { return fixedNow },
	}
}

func ptr(v float64) *float64 { return &v }

var moscow = &external.GeocodingResult{Name: "Москва", Country: "Россия", Latitude: 55.75, Longitude: 37.62}

func TestGetWeatherBuildsAndCachesReport(t *testing.T) {
	ctx := context.Background()
	apiGateway := new(MockOpenMeteoGateway)
	cacheGateway := new(MockWeatherCacheGateway)

	archive := &external.ArchiveResponse{Daily: &external.ArchiveDaily{
		Time:             []string{"2024-01-30", "2024-01-31", "2024-02-01"},
		Temperature2mMax: []*float64{ptr(1.26), nil, ptr(3)},
		Temperature2mMin: []*float64{ptr(-2), ptr(-1), ptr(0)},
		PrecipitationSum: []*float64{nil, ptr(1), ptr(0.5)},
	}}

	cacheGateway.On("Get", ctx, "Москва", 30).Return(nil, nil)
	apiGateway.On("SearchCity", mock.Anything, "Москва").Return(moscow, nil)
	apiGateway.On("GetDailyArchive", mock.Anything, 55.75, 37.62, fixedNow.AddDate(0, 0, -30), fixedNow).Return(archive, nil)
	cacheGateway.On("Put", mock.Anything, "Москва", 30, mock.AnythingOfType("*model.WeatherResponse")).Return(nil)

	response, err := newTestUseCase(apiGateway, cacheGateway).GetWeather(ctx, "  Москва ", 30)

	require.NoError(t, err)
	assert.Equal(t, "Москва", response.CityName)
	assert.Equal(t, "Россия", response.Country)
	assert.Equal(t, []model.DailyRecord{
		{Date: "2024-01-30", TempMax: 1.26, TempMin: -2, Precipitation: 0},
		{Date: "2024-02-01", TempMax: 3, TempMin: 0, Precipitation: 0.5},
	}, response.WeatherData)
	assert.Equal(t, 2, response.Analysis.DaysAnalyzed)
	apiGateway.AssertExpectations(t)
	cacheGateway.AssertExpectations(t)
}

func TestGetWeatherServesCacheHit(t *testing.T) {
	ctx := context.Background()
	apiGateway := new(MockOpenMeteoGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	cached := &model.WeatherResponse{CityName: "Paris"}

	cacheGateway.On("Get", ctx, "Paris", 92).Return(cached, nil)

	response, err := newTestUseCase(apiGateway, cacheGateway).GetWeather(ctx, "Paris", 400)

	require.NoError(t, err)
	assert.Same(t, cached, response)
	apiGateway.AssertNotCalled(t, "SearchCity", mock.Anything, mock.Anything)
}

func TestGetWeatherProceedsWhenCacheFails(t *testing.T) {
	ctx := context.Background()
	apiGateway := new(MockOpenMeteoGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	archive := &external.ArchiveResponse{Daily: &external.ArchiveDaily{
		Time:             []string{"2024-02-01"},
		Temperature2mMax: []*float64{ptr(3)},
		Temperature2mMin: []*float64{ptr(1)},
		PrecipitationSum: []*float64{ptr(0)},
	}}

	cacheGateway.On("Get", ctx, "Москва", 1).Return(nil, errors.New("connection refused"))
	apiGateway.On("SearchCity", mock.Anything, "Москва").Return(moscow, nil)
	apiGateway.On("GetDailyArchive", mock.Anything, 55.75, 37.62, mock.Anything, mock.Anything).Return(archive, nil)
	cacheGateway.On("Put", mock.Anything, "Москва", 1, mock.Anything).Return(errors.New("connection refused"))

	response, err := newTestUseCase(apiGateway, cacheGateway).GetWeather(ctx, "Москва", 1)

	require.NoError(t, err)
	assert.Len(t, response.WeatherData, 1)
}

func TestGetWeatherJoinsConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	apiGateway := new(MockOpenMeteoGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	archive := &external.ArchiveResponse{Daily: &external.ArchiveDaily{
		Time:             []string{"2024-02-01"},
		Temperature2mMax: []*float64{ptr(3)},
		Temperature2mMin: []*float64{ptr(1)},
		PrecipitationSum: []*float64{ptr(0)},
	}}

	var lookups sync.WaitGroup
	lookups.Add(2)
	release := make(chan struct{})

	cacheGateway.On("Get", ctx, "Москва", 30).Return(nil, nil).Run(func(mock.Arguments) { lookups.Done() })
	apiGateway.On("SearchCity", mock.Anything, "Москва").Return(moscow, nil).Once().Run(func(mock.Arguments) { <-release })
	apiGateway.On("GetDailyArchive", mock.Anything, 55.75, 37.62, mock.Anything, mock.Anything).Return(archive, nil).Once()
	cacheGateway.On("Put", mock.Anything, "Москва", 30, mock.Anything).Return(nil).Once()

	useCase := newTestUseCase(apiGateway, cacheGateway)
	results := make(chan *model.WeatherResponse, 2)
	for i := 0; i < 2; i++ {
		go func() {
			response, err := useCase.GetWeather(ctx, "Москва", 30)
			assert.NoError(t, err)
			results <- response
		}()
	}

	lookups.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)

	first, second := <-results, <-results
	require.NotNil(t, first)
	assert.Same(t, first, second)
	apiGateway.AssertNumberOfCalls(t, "SearchCity", 1)
	cacheGateway.AssertNumberOfCalls(t, "Put", 1)
}

func TestGetWeatherSharedBuildSurvivesFirstCallerCancel(t *testing.T) {
	apiGateway := new(MockOpenMeteoGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	archive := &external.ArchiveResponse{Daily: &external.ArchiveDaily{
		Time:             []string{"2024-02-01"},
		Temperature2mMax: []*float64{ptr(3)},
		Temperature2mMin: []*float64{ptr(1)},
		PrecipitationSum: []*float64{ptr(0)},
	}}

	var lookups sync.WaitGroup
	lookups.Add(2)
	started := make(chan struct{})
	release := make(chan struct{})
	var upstreamErr error

	cacheGateway.On("Get", mock.Anything, "Москва", 30).Return(nil, nil).Run(func(mock.Arguments) { lookups.Done() })
	apiGateway.On("SearchCity", mock.Anything, "Москва").Return(moscow, nil).Once().Run(func(args mock.Arguments) {
		close(started)
		<-release
		upstreamErr = args.Get(0).(context.Context).Err()
	})
	apiGateway.On("GetDailyArchive", mock.Anything, 55.75, 37.62, mock.Anything, mock.Anything).Return(archive, nil).Once()
	cacheGateway.On("Put", mock.Anything, "Москва", 30, mock.Anything).Return(nil).Once()

	useCase := newTestUseCase(apiGateway, cacheGateway)
	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := useCase.GetWeather(firstCtx, "Москва", 30)
		firstErr <- err
	}()
	<-started

	second := make(chan *model.WeatherResponse, 1)
	go func() {
		response, err := useCase.GetWeather(context.Background(), "Москва", 30)
		assert.NoError(t, err)
		second <- response
	}()
	lookups.Wait()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)
	close(release)

	response := <-second
	require.NotNil(t, response)
	assert.Equal(t, "Москва", response.CityName)
	assert.NoError(t, upstreamErr)
	apiGateway.AssertNumberOfCalls(t, "SearchCity", 1)
	cacheGateway.AssertExpectations(t)
}

func TestGetWeatherErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty city", func(t *testing.T) {
		_, err := newTestUseCase(new(MockOpenMeteoGateway), new(MockWeatherCacheGateway)).GetWeather(ctx, "   ", 30)
		assert.ErrorIs(t, err, ErrEmptyCity)
	})

	t.Run("city not found", func(t *testing.T) {
		apiGateway := new(MockOpenMeteoGateway)
		cacheGateway := new(MockWeatherCacheGateway)
		cacheGateway.On("Get", ctx, "Xyz", 30).Return(nil, nil)
		apiGateway.On("SearchCity", mock.Anything, "Xyz").Return(nil, nil)

		_, err := newTestUseCase(apiGateway, cacheGateway).GetWeather(ctx, "Xyz", 30)
		assert.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run("geocoding failure reads as not found", func(t *testing.T) {
		apiGateway := new(MockOpenMeteoGateway)
		cacheGateway := new(MockWeatherCacheGateway)
		cacheGateway.On("Get", ctx, "Paris", 30).Return(nil, nil)
		apiGateway.On("SearchCity", mock.Anything, "Paris").Return(nil, errors.New("timeout"))

		_, err := newTestUseCase(apiGateway, cacheGateway).GetWeather(ctx, "Paris", 30)
		assert.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run("archive failure", func(t *testing.T) {
		apiGateway := new(MockOpenMeteoGateway)
		cacheGateway := new(MockWeatherCacheGateway)
		cacheGateway.On("Get", ctx, "Москва", 30).Return(nil, nil)
		apiGateway.On("SearchCity", mock.Anything, "Москва").Return(moscow, nil)
		apiGateway.On("GetDailyArchive", mock.Anything, 55.75, 37.62, mock.Anything, mock.Anything).Return(nil, errors.New("502"))

		_, err := newTestUseCase(apiGateway, cacheGateway).GetWeather(ctx, "Москва", 30)
		assert.ErrorIs(t, err, ErrWeatherUnavailable)
		cacheGateway.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing daily block", func(t *testing.T) {
		apiGateway := new(MockOpenMeteoGateway)
		cacheGateway := new(MockWeatherCacheGateway)
		cacheGateway.On("Get", ctx, "Москва", 30).Return(nil, nil)
		apiGateway.On("SearchCity", mock.Anything, "Москва").Return(moscow, nil)
		apiGateway.On("GetDailyArchive", mock.Anything, 55.75, 37.62, mock.Anything, mock.Anything).Return(&external.ArchiveResponse{}, nil)

		_, err := newTestUseCase(apiGateway, cacheGateway).GetWeather(ctx, "Москва", 30)
		assert.ErrorIs(t, err, ErrWeatherUnavailable)
	})

	t.Run("no complete day", func(t *testing.T) {
		apiGateway := new(MockOpenMeteoGateway)
		cacheGateway := new(MockWeatherCacheGateway)
		cacheGateway.On("Get", ctx, "Москва", 30).Return(nil, nil)
		apiGateway.On("SearchCity", mock.Anything, "Москва").Return(moscow, nil)
		apiGateway.On("GetDailyArchive", mock.Anything, 55.75, 37.62, mock.Anything, mock.Anything).Return(&external.ArchiveResponse{
			Daily: &external.ArchiveDaily{
				Time:             []string{"2024-02-01"},
				Temperature2mMax: []*float64{nil},
				Temperature2mMin: []*float64{ptr(1)},
			},
		}, nil)

		_, err := newTestUseCase(apiGateway, cacheGateway).GetWeather(ctx, "Москва", 30)
		assert.ErrorIs(t, err, ErrWeatherUnavailable)
	})
}

func TestRefreshCitiesJoinsFailures(t *testing.T) {
	ctx := context.Background()
	apiGateway := new(MockOpenMeteoGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	archive := &external.ArchiveResponse{Daily: &external.ArchiveDaily{
		Time:             []string{"2024-02-01"},
		Temperature2mMax: []*float64{ptr(3)},
		Temperature2mMin: []*float64{ptr(1)},
		PrecipitationSum: []*float64{ptr(0)},
	}}

	apiGateway.On("SearchCity", mock.Anything, "Москва").Return(moscow, nil)
	apiGateway.On("SearchCity", mock.Anything, "Atlantis").Return(nil, nil)
	apiGateway.On("GetDailyArchive", mock.Anything, 55.75, 37.62, mock.Anything, mock.Anything).Return(archive, nil)
	cacheGateway.On("Put", mock.Anything, "Москва", 30, mock.Anything).Return(nil)

	err := newTestUseCase(apiGateway, cacheGateway).RefreshCities(ctx, "req-1", []string{"Москва", "Atlantis"}, 30)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCityNotFound)
	assert.Contains(t, err.Error(), "Atlantis")
	cacheGateway.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	cacheGateway.AssertNumberOfCalls(t, "Put", 1)
}

func TestRefreshCitiesStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	apiGateway := new(MockOpenMeteoGateway)
	err := newTestUseCase(apiGateway, new(MockWeatherCacheGateway)).RefreshCities(ctx, "req-2", []string{"Москва"}, 30)

	assert.ErrorIs(t, err, context.Canceled)
	apiGateway.AssertNotCalled(t, "SearchCity", mock.Anything, mock.Anything)
}
