package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"weather-lookup/api/openweather"
	"weather-lookup/config"
	"weather-lookup/models"
	"weather-lookup/models/view"
)

// metersPerSecondToKmh converts the metric wind speed to km/h.
const metersPerSecondToKmh = 3.6

// WeatherDataAdapter turns forecast payloads into WeatherViewState values.
type WeatherDataAdapter struct {
	openWeatherAPI openweather.OpenWeatherAPI
}

// NewWeatherDataAdapter constructs a WeatherDataAdapter over the given API.
func NewWeatherDataAdapter(openWeatherAPI openweather.OpenWeatherAPI) *WeatherDataAdapter {
	return &WeatherDataAdapter{openWeatherAPI: openWeatherAPI}
}

// FetchByCity loads and normalizes the forecast for a city name.
func (a *WeatherDataAdapter) FetchByCity(ctx context.Context, name string) (view.WeatherViewState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return view.WeatherViewState{}, fmt.Errorf("%w: %w", ErrFetchFailed, ErrEmptyCity)
	}

	resp, err := a.openWeatherAPI.GetForecastByCity(ctx, name)
	if err != nil {
		log.Printf("[WeatherDataAdapter] Forecast request for city=%q failed: %v", name, err)
		return view.WeatherViewState{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return normalize(resp)
}

// FetchByCoordinates loads and normalizes the forecast for a coordinate pair.
func (a *WeatherDataAdapter) FetchByCoordinates(ctx context.Context, lat, lon float64) (view.WeatherViewState, error) {
	if !isFinite(lat) || !isFinite(lon) {
		return view.WeatherViewState{}, fmt.Errorf("%w: %w", ErrFetchFailed, ErrInvalidCoordinates)
	}

	resp, err := a.openWeatherAPI.GetForecastByCoordinates(ctx, lat, lon)
	if err != nil {
		log.Printf("[WeatherDataAdapter] Forecast request for lat=%.4f lon=%.4f failed: %v", lat, lon, err)
		return view.WeatherViewState{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return normalize(resp)
}

func normalize(resp *models.ForecastResponse) (view.WeatherViewState, error) {
	state, err := NormalizeForecast(resp)
	if err != nil {
		log.Printf("[WeatherDataAdapter] Unusable forecast payload: %v", err)
		return view.WeatherViewState{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return state, nil
}

// NormalizeForecast maps a raw payload to the view-model. The first entry is
// the current conditions; the forecast keeps the first entry of each distinct
// weekday, in payload order, up to config.FORECAST_DAYS days.
func NormalizeForecast(resp *models.ForecastResponse) (view.WeatherViewState, error) {
	if resp == nil || len(resp.List) == 0 {
		return view.WeatherViewState{}, ErrEmptyForecast
	}

	loc := cityLocation(resp.City)
	current := resp.List[0]
	condition := primaryCondition(current)
	temperature := roundInt(current.Main.Temp)

	state := view.WeatherViewState{
		City:        resp.City.Name,
		Temperature: temperature,
		FeelsLike:   roundInt(current.Main.FeelsLike),
		Condition:   condition.Main,
		Description: condition.Description,
		Icon:        IconForCondition(condition.Main),
		Humidity:    clampPercent(current.Main.Humidity),
		WindSpeed:   roundInt(current.Wind.Speed * metersPerSecondToKmh),
		Pressure:    current.Main.Pressure,
		Tip:         TipForTemperature(temperature),
		Forecast:    summarizeDays(resp.List, loc, config.FORECAST_DAYS),
	}
	if current.Visibility != nil {
		km := float64(*current.Visibility) / 1000
		state.Visibility = &km
	}
	return state, nil
}

func summarizeDays(entries []models.ForecastEntry, loc *time.Location, maxDays int) []view.ForecastDay {
	seen := make(map[string]struct{}, maxDays)
	days := make([]view.ForecastDay, 0, maxDays)
	for _, entry := range entries {
		if len(days) == maxDays {
			break
		}
		label := time.Unix(entry.Dt, 0).In(loc).Format("Mon")
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		days = append(days, view.ForecastDay{
			Day:         label,
			Temperature: roundInt(entry.Main.Temp),
			Icon:        IconForCondition(primaryCondition(entry).Main),
		})
	}
	return days
}

// cityLocation uses the payload's UTC shift so weekdays follow the city's calendar.
func cityLocation(city models.ForecastCity) *time.Location {
	if city.Timezone == 0 {
		return time.UTC
	}
	return time.FixedZone(city.Name, city.Timezone)
}

func primaryCondition(entry models.ForecastEntry) models.WeatherCondition {
	if len(entry.Weather) == 0 {
		return models.WeatherCondition{}
	}
	return entry.Weather[0]
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
