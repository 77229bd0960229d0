package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/redis"
)

const (
	warmUpLockKey       = "weather_cache_warmup"
	warmUpLockNamespace = "weather_schedules"
)

// WeatherSchedulerConfig holds configuration for the weather cache warm-up
type WeatherSchedulerConfig struct {
	CronExpression string
	Cities         []string
	Days           int
	LockTTL        time.Duration
}

// WeatherScheduler refreshes the cached reports of configured cities on a cron schedule.
// Only one instance runs a given tick when a redis client is set.
type WeatherScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      WeatherSchedulerConfig
}

// NewWeatherScheduler creates a new weather scheduler; redisClient may be nil to run without locking
func NewWeatherScheduler(useCase weather.UseCase, redisClient *redis.Client, config WeatherSchedulerConfig) *WeatherScheduler {
	return &WeatherScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitWeatherScheduleTasks registers the warm-up job and starts the cron.
// An empty expression or city list leaves the scheduler off.
func (s *WeatherScheduler) InitWeatherScheduleTasks(ctx context.Context) error {
	if s.config.CronExpression == "" || len(s.config.Cities) == 0 {
		log.Info(msg.GetMessage("weather.warmup.disabled"))
		return nil
	}

	_, err := s.cron.AddFunc(s.config.CronExpression, func() {
		s.ExecuteScheduledTask(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Weather cache warm-up scheduled with cron expression: %s", s.config.CronExpression)
	return nil
}

// ExecuteScheduledTask refreshes every configured city once
func (s *WeatherScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("weather.warmup.start"), zap.String("request_id", requestID), zap.Strings("cities", s.config.Cities))

	refresh := func() error {
		return s.useCase.RefreshCities(ctx, requestID, s.config.Cities, s.config.Days)
	}

	var err error
	if s.redisClient == nil {
		err = refresh()
	} else {
		opts := redis.NewLockOptions().
			WithTTL(s.getLockTTL()).
			WithMaxRetries(0).
			WithLockNamespace(warmUpLockNamespace)
		err = redis.LockWithFunc(ctx, s.redisClient, warmUpLockKey, opts, refresh)
	}

	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		log.Info("Weather cache warm-up skipped, another instance holds the lock", zap.String("request_id", requestID))
	case err != nil:
		log.Error("Weather cache warm-up finished with failures", zap.String("request_id", requestID), zap.Error(err))
	default:
		log.Info(msg.GetMessage("weather.warmup.end"), zap.String("request_id", requestID))
	}
}

// Stop gracefully stops the scheduler
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *WeatherScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}
