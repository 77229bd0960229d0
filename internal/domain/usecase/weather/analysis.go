package weather

import (
	"math"

	"weather-app/internal/domain/model"
	"weather-app/pkg/msg"
)

// forecastWindow is how many trailing days feed the next-day forecast
const forecastWindow = 7

// trendWeight scales the half-period trend added to the forecast
const trendWeight = 0.3

// Analyze summarizes the period and forecasts the next day.
// The three series are parallel and must hold at least one day.
func Analyze(tempsMax, tempsMin, precipitation []float64) model.Analysis {
	n := len(tempsMax)

	half := n / 2
	firstMax, secondMax := halves(tempsMax, half)
	firstMin, secondMin := halves(tempsMin, half)

	var trend string
	var trendValueMax, trendValueMin float64
	if mean(secondMax) > mean(firstMax) {
		trend = msg.GetMessage("weather.trend.warming")
		trendValueMax = mean(secondMax) - mean(firstMax)
		trendValueMin = mean(secondMin) - mean(firstMin)
	} else {
		trend = msg.GetMessage("weather.trend.cooling")
		trendValueMax = mean(firstMax) - mean(secondMax)
		trendValueMin = mean(firstMin) - mean(secondMin)
	}

	forecastMax := mean(lastDays(tempsMax)) + trendValueMax*trendWeight
	forecastMin := mean(lastDays(tempsMin)) + trendValueMin*trendWeight
	forecastPrecipitation := math.Max(0, mean(lastDays(precipitation)))

	rainyDays := 0
	total := 0.0
	for _, p := range precipitation {
		if p > 0 {
			rainyDays++
		}
		total += p
	}

	return model.Analysis{
		ForecastTomorrowMax:   round1(forecastMax),
		ForecastTomorrowMin:   round1(forecastMin),
		ForecastTomorrowAvg:   round1((forecastMax + forecastMin) / 2),
		ForecastPrecipitation: round1(forecastPrecipitation),
		DaysAnalyzed:          n,
		AvgTempAll:            round1(mean(tempsMax)),
		Trend:                 trend,
		MaxTemp:               round1(maxOf(tempsMax)),
		MinTemp:               round1(minOf(tempsMin)),
		TrendValue:            round1(trendValueMax),
		RainyDays:             rainyDays,
		TotalPrecipitation:    round1(total),
	}
}

// halves splits values at half. A single day has no first half, so the
// whole series stands in for it.
func halves(values []float64, half int) ([]float64, []float64) {
	if half == 0 {
		return values, values
	}
	return values[:half], values[half:]
}

func lastDays(values []float64) []float64 {
	if len(values) > forecastWindow {
		return values[len(values)-forecastWindow:]
	}
	return values
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	result := math.Inf(-1)
	for _, v := range values {
		result = math.Max(result, v)
	}
	return result
}

func minOf(values []float64) float64 {
	result := math.Inf(1)
	for _, v := range values {
		result = math.Min(result, v)
	}
	return result
}

// round1 rounds to one decimal, halves away from zero
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
