package view

import (
	"bytes"
	"math"
	"strconv"
	"text/template"

	"weather-app/internal/domain/model"
	"weather-app/pkg/msg"
)

// Row is one rendered line of the results table: date, max, min, precipitation
type Row [4]string

// Page is the state of every element the weather form displays.
// The zero value is not ready for use; call NewPage.
type Page struct {
	CityInput      string
	TriggerEnabled bool
	LoadingHidden  bool
	ResultHidden   bool
	ErrorHidden    bool
	Heading        string
	Rows           []Row
	Forecast       string
	ErrorText      string
}

// NewPage returns the initial state: trigger enabled, everything else hidden
func NewPage() *Page {
	return &Page{
		TriggerEnabled: true,
		LoadingHidden:  true,
		ResultHidden:   true,
		ErrorHidden:    true,
	}
}

func (p *Page) ShowLoading() {
	p.LoadingHidden = false
	p.ResultHidden = true
	p.ErrorHidden = true
}

func (p *Page) HideLoading() {
	p.LoadingHidden = true
}

func (p *Page) SetTriggerEnabled(enabled bool) {
	p.TriggerEnabled = enabled
}

// ShowResult replaces the heading, the table rows and the forecast panel, then reveals the result
func (p *Page) ShowResult(response *model.WeatherResponse) {
	p.Heading = msg.GetMessage("weather.title", response.CityName, response.Country)

	rows := make([]Row, 0, len(response.WeatherData))
	for _, day := range response.WeatherData {
		rows = append(rows, Row{
			day.Date,
			FormatTemperature(day.TempMax),
			FormatTemperature(day.TempMin),
			FormatPrecipitation(day.Precipitation),
		})
	}
	p.Rows = rows
	p.Forecast = renderForecast(response.Analysis)

	p.ResultHidden = false
}

func (p *Page) ShowError(message string) {
	p.ErrorText = "❌ " + message
	p.ErrorHidden = false
	p.ResultHidden = true
}

// FormatTemperature rounds the stored binary value to one decimal and appends the unit,
// e.g. 5.26 -> "5.3°C", 1.45 -> "1.4°C". Exact ties (x.25, x.75) go away from zero.
func FormatTemperature(value float64) string {
	if quarters := value * 4; quarters == math.Trunc(quarters) && math.Mod(quarters, 2) != 0 {
		value = math.Round(value*10) / 10
	}
	return strconv.FormatFloat(value, 'f', 1, 64) + "°C"
}

// FormatPrecipitation keeps the value as given, e.g. 0 -> "0 мм"
func FormatPrecipitation(value float64) string {
	return formatNumber(value) + " мм"
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

var forecastTemplate = template.Must(template.New("forecast").
	Funcs(template.FuncMap{"num": formatNumber}).
	Parse(`📊 Прогноз на завтра
Максимальная: {{num .ForecastTomorrowMax}}°C
Минимальная: {{num .ForecastTomorrowMin}}°C
Средняя: {{num .ForecastTomorrowAvg}}°C
Осадки: {{num .ForecastPrecipitation}} мм
Анализ за {{.DaysAnalyzed}} дней: средняя {{num .AvgTempAll}}°C, тенденция - {{.Trend}}`))

func renderForecast(analysis model.Analysis) string {
	var buf bytes.Buffer
	if err := forecastTemplate.Execute(&buf, analysis); err != nil {
		return err.Error()
	}
	return buf.String()
}
