package openweather

import (
	"context"
	"net/url"
	"strconv"

	"weather-lookup/api"
	"weather-lookup/config"
	"weather-lookup/models"
)

// OpenWeatherApiClient embeds the common HTTPClient
type OpenWeatherApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewOpenWeatherApiClient creates a new instance of OpenWeatherApiClient
func NewOpenWeatherApiClient(httpClient *api.HTTPClient) *OpenWeatherApiClient {
	return &OpenWeatherApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the appid sent with every request. An empty key is
// still sent; the upstream answers 401.
func (c *OpenWeatherApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// GetForecastByCity retrieves the 5 day forecast for a free-text city name
func (c *OpenWeatherApiClient) GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error) {
	query := c.forecastQuery()
	query.Set("q", city)
	return c.getForecast(ctx, query)
}

// GetForecastByCoordinates retrieves the 5 day forecast for a coordinate pair
func (c *OpenWeatherApiClient) GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error) {
	query := c.forecastQuery()
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.getForecast(ctx, query)
}

// GetGeocodingResults resolves a free-text query into at most limit candidate places
func (c *OpenWeatherApiClient) GetGeocodingResults(ctx context.Context, query string, limit int) ([]models.GeocodingResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("appid", c.apiKey)

	var response []models.GeocodingResult
	if err := c.Request(ctx, "GET", config.OPENWEATHER_GEOCODING_ENDPOINT, params, nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *OpenWeatherApiClient) getForecast(ctx context.Context, query url.Values) (*models.ForecastResponse, error) {
	var response models.ForecastResponse
	if err := c.Request(ctx, "GET", config.OPENWEATHER_FORECAST_ENDPOINT, query, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *OpenWeatherApiClient) forecastQuery() url.Values {
	query := url.Values{}
	query.Set("units", config.OPENWEATHER_UNITS)
	query.Set("appid", c.apiKey)
	return query
}
