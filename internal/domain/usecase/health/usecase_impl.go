package health

import (
	"context"

	"weather-app/internal/domain/gateway/cache"
	"weather-app/internal/domain/model"
)

type healthUseCase struct {
	cacheGateway cache.HealthCacheGateway
}

func NewHealthUseCase(cacheGateway cache.HealthCacheGateway) UseCase {
	return &healthUseCase{
		cacheGateway: cacheGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cacheGateway.Health(ctx)

	overallStatus := model.StatusUp
	if cacheHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Cache:  cacheHealth,
	}
}
