package services

import (
	"context"
	"log"
	"strings"

	"weather-lookup/models/view"
)

// LookupSession composes the search box and the weather panel: it turns the
// user's submit and pick intents into weather loads.
type LookupSession struct {
	Weather *WeatherCoordinator
	Search  *SearchCoordinator

	defaultCity   string
	popularCities []string
}

// NewLookupSession constructs a LookupSession over both coordinators.
func NewLookupSession(
	weather *WeatherCoordinator,
	search *SearchCoordinator,
	defaultCity string,
	popularCities []string,
) *LookupSession {
	return &LookupSession{
		Weather:       weather,
		Search:        search,
		defaultCity:   defaultCity,
		popularCities: append([]string(nil), popularCities...),
	}
}

// Start seeds the search box with the default city and loads it.
func (s *LookupSession) Start(ctx context.Context) view.WeatherViewState {
	log.Printf("[LookupSession] Loading default city %q", s.defaultCity)
	s.Search.SetQuery(s.defaultCity)
	return s.Weather.LoadCity(ctx, s.defaultCity)
}

// Submit loads the typed query. A blank query is ignored and reports false.
func (s *LookupSession) Submit(ctx context.Context) (view.WeatherViewState, bool) {
	query, ok := s.Search.Submit()
	if !ok {
		return s.Weather.State(), false
	}
	return s.Weather.LoadCity(ctx, query), true
}

// PickSuggestion loads a picked suggestion, by coordinates when it has them.
func (s *LookupSession) PickSuggestion(ctx context.Context, suggestion view.SuggestionCity) view.WeatherViewState {
	s.Search.SelectSuggestion(suggestion)
	if suggestion.HasCoordinates() {
		return s.Weather.LoadCoordinates(ctx, *suggestion.Latitude, *suggestion.Longitude)
	}
	return s.Weather.LoadCity(ctx, suggestion.Name)
}

// PickQuickCity loads one of the popular cities, or any name passed in.
func (s *LookupSession) PickQuickCity(ctx context.Context, name string) view.WeatherViewState {
	name = strings.TrimSpace(name)
	s.Search.SetQuery(name)
	return s.Weather.LoadCity(ctx, name)
}

// PopularCities returns the quick-pick list.
func (s *LookupSession) PopularCities() []string {
	return append([]string(nil), s.popularCities...)
}

// DefaultCity is the city loaded at start; it is always a valid resubmit.
func (s *LookupSession) DefaultCity() string {
	return s.defaultCity
}

// Snapshot returns both states for rendering.
func (s *LookupSession) Snapshot() view.Snapshot {
	return view.Snapshot{
		Weather: s.Weather.State(),
		Search:  s.Search.State(),
	}
}

// Close releases the search coordinator's timer.
func (s *LookupSession) Close() {
	s.Search.Close()
}
