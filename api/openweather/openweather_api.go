package openweather

import (
	"context"

	"weather-lookup/models"
)

// OpenWeatherAPI defines the interface for interacting with the OpenWeatherMap API
type OpenWeatherAPI interface {
	GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error)
	GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error)
	GetGeocodingResults(ctx context.Context, query string, limit int) ([]models.GeocodingResult, error)
	SetCredentials(apiKey string)
}
