package model

// WeatherRequestDTO is the body accepted by POST /get_weather
type WeatherRequestDTO struct {
	City string `json:"city" example:"Москва"`
}

// DailyRecord is one observed day of the analyzed period
type DailyRecord struct {
	Date          string  `json:"date" example:"2024-01-01"`
	TempMax       float64 `json:"temp_max" example:"5.26"`
	TempMin       float64 `json:"temp_min" example:"1.1"`
	Precipitation float64 `json:"precipitation" example:"0"`
}

// Analysis holds the summary and the next-day forecast computed over the period
type Analysis struct {
	ForecastTomorrowMax   float64 `json:"forecast_tomorrow_max"`
	ForecastTomorrowMin   float64 `json:"forecast_tomorrow_min"`
	ForecastTomorrowAvg   float64 `json:"forecast_tomorrow_avg"`
	ForecastPrecipitation float64 `json:"forecast_precipitation"`
	DaysAnalyzed          int     `json:"days_analyzed"`
	AvgTempAll            float64 `json:"avg_temp_all"`
	Trend                 string  `json:"trend" example:"потепление"`
	MaxTemp               float64 `json:"max_temp"`
	MinTemp               float64 `json:"min_temp"`
	TrendValue            float64 `json:"trend_value"`
	RainyDays             int     `json:"rainy_days"`
	TotalPrecipitation    float64 `json:"total_precipitation"`
}

// WeatherResponse is the successful body of POST /get_weather
type WeatherResponse struct {
	CityName    string        `json:"city_name" example:"Москва"`
	Country     string        `json:"country" example:"Россия"`
	WeatherData []DailyRecord `json:"weather_data"`
	Analysis    Analysis      `json:"analysis"`
}

// ErrorResponse is the failure body of the weather API
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}
