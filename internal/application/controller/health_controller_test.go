package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-app/internal/domain/model"
)

type stubHealthUseCase struct {
	response model.HealthResponse
}

func (s stubHealthUseCase) CheckHealth(context.Context) model.HealthResponse {
	return s.response
}

func TestCheckHealth(t *testing.T) {
	cases := map[model.HealthStatus]int{
		model.StatusUp:   http.StatusOK,
		model.StatusDown: http.StatusServiceUnavailable,
	}

	for status, code := range cases {
		e := echo.New()
		useCase := stubHealthUseCase{response: model.HealthResponse{
			Status: status,
			Cache:  model.ComponentHealthStatus{Status: status, Details: map[string]string{"host": "localhost"}},
		}}
		NewHealthController(e.Group("/api"), useCase).InitHealthRoutes()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, code, rec.Code)
		var body model.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, status, body.Status)
		assert.Equal(t, "localhost", body.Cache.Details["host"])
	}
}
