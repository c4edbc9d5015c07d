package services

import (
	"context"
	"sync"

	"weather-lookup/models"
	"weather-lookup/models/view"
)

// fakeOpenWeatherAPI records calls and answers through the configured funcs.
type fakeOpenWeatherAPI struct {
	mu             sync.Mutex
	cityCalls      []string
	coordCalls     [][2]float64
	geocodeCalls   []string
	forecastByCity func(city string) (*models.ForecastResponse, error)
	forecastByLoc  func(lat, lon float64) (*models.ForecastResponse, error)
	geocode        func(query string, limit int) ([]models.GeocodingResult, error)
}

func (f *fakeOpenWeatherAPI) GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error) {
	f.mu.Lock()
	f.cityCalls = append(f.cityCalls, city)
	fn := f.forecastByCity
	f.mu.Unlock()
	if fn == nil {
		return &models.ForecastResponse{}, nil
	}
	return fn(city)
}

func (f *fakeOpenWeatherAPI) GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error) {
	f.mu.Lock()
	f.coordCalls = append(f.coordCalls, [2]float64{lat, lon})
	fn := f.forecastByLoc
	f.mu.Unlock()
	if fn == nil {
		return &models.ForecastResponse{}, nil
	}
	return fn(lat, lon)
}

func (f *fakeOpenWeatherAPI) GetGeocodingResults(ctx context.Context, query string, limit int) ([]models.GeocodingResult, error) {
	f.mu.Lock()
	f.geocodeCalls = append(f.geocodeCalls, query)
	fn := f.geocode
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(query, limit)
}

func (f *fakeOpenWeatherAPI) SetCredentials(apiKey string) {}

func (f *fakeOpenWeatherAPI) geocodeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.geocodeCalls)
}

// fakeWeatherFetcher stands in for the weather data adapter.
type fakeWeatherFetcher struct {
	mu         sync.Mutex
	cityCalls  []string
	coordCalls [][2]float64
	byCity     func(name string) (view.WeatherViewState, error)
	byCoords   func(lat, lon float64) (view.WeatherViewState, error)
}

func (f *fakeWeatherFetcher) FetchByCity(ctx context.Context, name string) (view.WeatherViewState, error) {
	f.mu.Lock()
	f.cityCalls = append(f.cityCalls, name)
	fn := f.byCity
	f.mu.Unlock()
	if fn == nil {
		return view.WeatherViewState{City: name}, nil
	}
	return fn(name)
}

func (f *fakeWeatherFetcher) FetchByCoordinates(ctx context.Context, lat, lon float64) (view.WeatherViewState, error) {
	f.mu.Lock()
	f.coordCalls = append(f.coordCalls, [2]float64{lat, lon})
	fn := f.byCoords
	f.mu.Unlock()
	if fn == nil {
		return view.WeatherViewState{City: "somewhere"}, nil
	}
	return fn(lat, lon)
}

func (f *fakeWeatherFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cityCalls) + len(f.coordCalls)
}

// fakeSuggester stands in for the suggestion adapter.
type fakeSuggester struct {
	mu      sync.Mutex
	queries []string
	respond func(query string) []view.SuggestionCity
}

func (f *fakeSuggester) FetchSuggestions(ctx context.Context, query string) []view.SuggestionCity {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	fn := f.respond
	f.mu.Unlock()
	if fn == nil {
		return []view.SuggestionCity{}
	}
	return fn(query)
}

func (f *fakeSuggester) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func suggestion(name, country string) view.SuggestionCity {
	return view.SuggestionCity{Name: name, Country: country, DisplayLabel: name + ", " + country}
}

func floatPtr(v float64) *float64 { return &v }
