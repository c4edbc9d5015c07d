package openweather

import (
	"context"
	"fmt"
	"log"
	"strings"

	"weather-lookup/models"
	"weather-lookup/util"
)

// OpenWeatherApiClientMock answers from JSON fixtures on disk. It is used in
// the dev environment so the client runs without a credential.
type OpenWeatherApiClientMock struct {
	forecastPath  string
	geocodingPath string
}

// NewOpenWeatherApiClientMock creates a new instance of OpenWeatherApiClientMock
func NewOpenWeatherApiClientMock(forecastPath, geocodingPath string) *OpenWeatherApiClientMock {
	return &OpenWeatherApiClientMock{
		forecastPath:  forecastPath,
		geocodingPath: geocodingPath,
	}
}

// SetCredentials is a no-op for the mock
func (c *OpenWeatherApiClientMock) SetCredentials(apiKey string) {}

// GetForecastByCity returns the fixture forecast renamed to the requested city
func (c *OpenWeatherApiClientMock) GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error) {
	response, err := util.ReadForecastResponseFromJSON(c.forecastPath)
	if err != nil {
		log.Println("[OpenWeatherApiClientMock] Could not read forecast response from json")
		return nil, err
	}

	response.City.Name = city
	return response, nil
}

// GetForecastByCoordinates returns the fixture forecast moved to the requested coordinates
func (c *OpenWeatherApiClientMock) GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error) {
	response, err := util.ReadForecastResponseFromJSON(c.forecastPath)
	if err != nil {
		log.Println("[OpenWeatherApiClientMock] Could not read forecast response from json")
		return nil, err
	}

	response.City.Coord = models.Coord{Lat: lat, Lon: lon}
	return response, nil
}

// GetGeocodingResults returns the fixture places whose name contains the query
func (c *OpenWeatherApiClientMock) GetGeocodingResults(ctx context.Context, query string, limit int) ([]models.GeocodingResult, error) {
	results, err := util.ReadGeocodingResultsFromJSON(c.geocodingPath)
	if err != nil {
		log.Println("[OpenWeatherApiClientMock] Could not read geocoding response from json")
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit %d", limit)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matches []models.GeocodingResult
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Name), q) {
			matches = append(matches, r)
		}
		if len(matches) == limit {
			break
		}
	}
	return matches, nil
}
