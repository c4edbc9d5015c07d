package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadForecastResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"cnt": 1,
		"list": [
			{
				"dt": 1717372800,
				"main": {"temp": 20.4, "feels_like": 19.9, "pressure": 1013, "humidity": 61},
				"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
				"wind": {"speed": 2.5, "deg": 180},
				"visibility": 9000
			}
		],
		"city": {"id": 1, "name": "Recife", "country": "BR", "timezone": -10800}
	}`
	path := createTempFile(t, content)

	// Act
	resp, err := ReadForecastResponseFromJSON(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Recife", resp.City.Name)
	assert.Equal(t, -10800, resp.City.Timezone)
	require.Len(t, resp.List, 1)
	assert.Equal(t, 20.4, resp.List[0].Main.Temp)
	assert.Equal(t, "Clear", resp.List[0].Weather[0].Main)
	require.NotNil(t, resp.List[0].Visibility)
	assert.Equal(t, 9000, *resp.List[0].Visibility)
}

func TestReadForecastResponseFromJSON_MissingFile(t *testing.T) {
	_, err := ReadForecastResponseFromJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestReadGeocodingResultsFromJSON(t *testing.T) {
	content := `[
		{"name": "London", "country": "GB", "state": "England", "lat": 51.5, "lon": -0.12},
		{"name": "London", "country": "CA"}
	]`
	path := createTempFile(t, content)

	results, err := ReadGeocodingResultsFromJSON(path)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "England", results[0].State)
	require.NotNil(t, results[0].Lat)
	assert.Equal(t, 51.5, *results[0].Lat)
	assert.Nil(t, results[1].Lat)
}

func TestReadGeocodingResultsFromJSON_Malformed(t *testing.T) {
	path := createTempFile(t, `{"name": "London"}`)

	_, err := ReadGeocodingResultsFromJSON(path)

	assert.Error(t, err)
}

func TestFixturesInResources(t *testing.T) {
	forecast, err := ReadForecastResponseFromJSON(filepath.Join("..", "resources", "forecast_response.json"))
	require.NoError(t, err)
	assert.Len(t, forecast.List, 40)

	places, err := ReadGeocodingResultsFromJSON(filepath.Join("..", "resources", "geocoding_response.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, places)
}
