package util

import (
	"encoding/json"
	"fmt"
	"os"

	"weather-lookup/models"
)

// ReadForecastResponseFromJSON loads a ForecastResponse from JSON on disk.
func ReadForecastResponseFromJSON(filePath string) (*models.ForecastResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ForecastResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ForecastResponse: %w", err)
	}
	return &resp, nil
}

// ReadGeocodingResultsFromJSON loads a geocoding result array from JSON on disk.
func ReadGeocodingResultsFromJSON(filePath string) ([]models.GeocodingResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var results []models.GeocodingResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeocodingResult list: %w", err)
	}
	return results, nil
}
