package api

import (
	"context"
	"errors"

	"weather-app/internal/domain/model"
	"weather-app/pkg/http"
	"weather-app/pkg/msg"
)

const getWeatherPath = "/get_weather"

var errEmptyReport = errors.New("response has no weather report")

type weatherServiceGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherServiceGateway creates a gateway to the weather backend at baseURL
func NewWeatherServiceGateway(baseURL string, clientOptions http.ClientOptions) WeatherServiceGateway {
	// a 404 carries an error body the user must see
	clientOptions.Dismiss404 = false
	clientOptions.ForceJSON = true
	clientOptions.DefaultHeaders = map[string]string{"Accept": "application/json"}

	return &weatherServiceGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

// GetWeather posts the city and classifies the outcome
func (g *weatherServiceGatewayImpl) GetWeather(ctx context.Context, city string) (*model.WeatherResponse, error) {
	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath(getWeatherPath).
		WithBody(model.WeatherRequestDTO{City: city}).
		WithSuccessResp(&model.WeatherResponse{}).
		WithErrorResp(&model.ErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*model.WeatherResponse)
		// a JSON null or an empty object decodes without error but carries no report
		if response.CityName == "" && len(response.WeatherData) == 0 {
			return nil, &model.WeatherError{
				Kind:    model.TransportOrParseFailure,
				Message: msg.GetMessage("weather.error.empty-response"),
				Status:  status,
				Err:     errEmptyReport,
			}
		}
		return response, nil
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		message := msg.GetMessage("weather.error.fallback")
		if body, ok := errResp.(*model.ErrorResponse); ok && body.Error != "" {
			message = body.Error
		}
		return nil, &model.WeatherError{
			Kind:    model.RequestFailed,
			Message: message,
			Status:  statusErr.StatusCode,
			Err:     err,
		}
	}

	return nil, &model.WeatherError{
		Kind:    model.TransportOrParseFailure,
		Message: err.Error(),
		Status:  status,
		Err:     err,
	}
}
