package view

// SearchState is what the search box renders.
type SearchState struct {
	QueryText          string           `json:"query_text"`
	Suggestions        []SuggestionCity `json:"suggestions"`
	SuggestionsVisible bool             `json:"suggestions_visible"`
}

// Snapshot pairs both coordinator states for the presentation layer.
type Snapshot struct {
	Weather WeatherViewState `json:"weather"`
	Search  SearchState      `json:"search"`
}
