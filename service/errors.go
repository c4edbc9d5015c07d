package services

import "errors"

// FetchFailedMessage is the only weather error the user ever sees.
const FetchFailedMessage = "Failed to load weather data. Please try again."

var (
	// ErrFetchFailed wraps every weather fetch failure: transport, non-2xx,
	// undecodable or empty payloads and rejected input.
	ErrFetchFailed = errors.New("weather fetch failed")
	// ErrSuggestionFailed wraps geocoding failures. It is logged, never surfaced.
	ErrSuggestionFailed = errors.New("suggestion fetch failed")

	ErrEmptyCity          = errors.New("city name is empty")
	ErrInvalidCoordinates = errors.New("coordinates must be finite")
	ErrEmptyForecast      = errors.New("forecast payload has no entries")
)
