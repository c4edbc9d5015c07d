package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"weather-lookup/api/openweather"
	"weather-lookup/config"
	"weather-lookup/models"
	"weather-lookup/models/view"
)

// SuggestionAdapter turns geocoding payloads into typeahead candidates.
type SuggestionAdapter struct {
	openWeatherAPI openweather.OpenWeatherAPI
}

// NewSuggestionAdapter constructs a SuggestionAdapter over the given API.
func NewSuggestionAdapter(openWeatherAPI openweather.OpenWeatherAPI) *SuggestionAdapter {
	return &SuggestionAdapter{openWeatherAPI: openWeatherAPI}
}

// IsSearchable reports whether a query is long enough to be geocoded.
func IsSearchable(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= config.MIN_QUERY_LENGTH
}

// FetchSuggestions returns at most config.SUGGESTIONS_LIMIT candidates for the
// query. Short queries never reach the network and failures yield nothing.
func (a *SuggestionAdapter) FetchSuggestions(ctx context.Context, query string) []view.SuggestionCity {
	if !IsSearchable(query) {
		return []view.SuggestionCity{}
	}

	results, err := a.openWeatherAPI.GetGeocodingResults(ctx, strings.TrimSpace(query), config.SUGGESTIONS_LIMIT)
	if err != nil {
		log.Printf("[SuggestionAdapter] %v", fmt.Errorf("%w: query=%q: %w", ErrSuggestionFailed, query, err))
		return []view.SuggestionCity{}
	}
	return NormalizeSuggestions(results)
}

// NormalizeSuggestions builds display labels and drops repeated labels,
// keeping the first occurrence.
func NormalizeSuggestions(results []models.GeocodingResult) []view.SuggestionCity {
	seen := make(map[string]struct{}, len(results))
	out := make([]view.SuggestionCity, 0, min(len(results), config.SUGGESTIONS_LIMIT))
	for _, r := range results {
		if len(out) == config.SUGGESTIONS_LIMIT {
			break
		}
		label := displayLabel(r)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, view.SuggestionCity{
			Name:         r.Name,
			Country:      r.Country,
			DisplayLabel: label,
			Latitude:     r.Lat,
			Longitude:    r.Lon,
		})
	}
	return out
}

func displayLabel(r models.GeocodingResult) string {
	parts := []string{r.Name}
	if r.State != "" {
		parts = append(parts, r.State)
	}
	if r.Country != "" {
		parts = append(parts, r.Country)
	}
	return strings.Join(parts, ", ")
}
