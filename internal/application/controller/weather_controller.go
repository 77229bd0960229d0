package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/util/numberutils"
)

type WeatherController struct {
	api         *echo.Group
	useCase     weather.UseCase
	defaultDays int
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, defaultDays int) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, defaultDays: defaultDays}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.POST("/get_weather", controller.GetWeather)
}

// GetWeather godoc
// @Summary Get weather analysis for a city
// @Description Geocode the city, fetch its daily history and return the period analysis with a forecast for tomorrow
// @Tags weather
// @Accept json
// @Produce json
// @Param request body model.WeatherRequestDTO true "City to analyze"
// @Param days query int false "Number of past days to analyze (1-92)" default(30)
// @Success 200 {object} model.WeatherResponse "Weather data and analysis"
// @Failure 400 {object} model.ErrorResponse "Empty city or invalid request body"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 500 {object} model.ErrorResponse "Weather data unavailable"
// @Router /get_weather [post]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	var dto model.WeatherRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("weather.error.invalid-request")})
	}

	city := strings.TrimSpace(dto.City)
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), controller.defaultDays)

	response, err := controller.useCase.GetWeather(c.Request().Context(), city, days)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, response)
	case errors.Is(err, weather.ErrEmptyCity):
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("weather.error.empty-city")})
	case errors.Is(err, weather.ErrCityNotFound):
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: msg.GetMessage("weather.error.city-not-found", city)})
	default:
		log.Error("Failed to build weather report", zap.String("city", city), zap.Int("days", days), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("weather.error.unavailable")})
	}
}
