package handler

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// View is what the handler drives while a fetch runs
type View interface {
	ShowLoading()
	HideLoading()
	ShowResult(response *model.WeatherResponse)
	ShowError(message string)
	SetTriggerEnabled(enabled bool)
}

// WeatherRequestHandler turns one user trigger into one weather request and renders the outcome
type WeatherRequestHandler struct {
	gateway  api.WeatherServiceGateway
	view     View
	inFlight atomic.Bool
}

func NewWeatherRequestHandler(gateway api.WeatherServiceGateway, view View) *WeatherRequestHandler {
	return &WeatherRequestHandler{gateway: gateway, view: view}
}

// Fetch validates input, requests the weather once and shows either the result or the error.
// Loading is hidden and the trigger re-enabled on every exit, panics included.
// While a fetch is running, further calls return model.ErrTriggerDisabled and touch nothing.
func (h *WeatherRequestHandler) Fetch(ctx context.Context, input string) error {
	if !h.inFlight.CompareAndSwap(false, true) {
		return model.ErrTriggerDisabled
	}
	defer h.inFlight.Store(false)

	city := strings.TrimSpace(input)
	if city == "" {
		message := msg.GetMessage("weather.error.empty-city")
		h.view.ShowError(message)
		return &model.WeatherError{Kind: model.EmptyInput, Message: message}
	}

	h.view.ShowLoading()
	h.view.SetTriggerEnabled(false)
	defer func() {
		h.view.HideLoading()
		h.view.SetTriggerEnabled(true)
	}()

	response, err := h.gateway.GetWeather(ctx, city)
	if err != nil {
		weatherErr := toWeatherError(err)
		log.Debug("Weather fetch failed",
			zap.String("city", city),
			zap.String("kind", string(weatherErr.Kind)),
			zap.Int("status", weatherErr.Status),
			zap.Error(weatherErr.Err))
		h.view.ShowError(weatherErr.Message)
		return weatherErr
	}

	h.view.ShowResult(response)
	return nil
}

func toWeatherError(err error) *model.WeatherError {
	var weatherErr *model.WeatherError
	if !errors.As(err, &weatherErr) {
		weatherErr = &model.WeatherError{Kind: model.TransportOrParseFailure, Message: err.Error(), Err: err}
	}
	if weatherErr.Message == "" {
		weatherErr.Message = msg.GetMessage("weather.error.fallback")
	}
	return weatherErr
}
