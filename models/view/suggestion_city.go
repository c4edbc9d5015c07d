package view

// SuggestionCity is a typeahead candidate. DisplayLabel is its identity.
type SuggestionCity struct {
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	DisplayLabel string   `json:"display_label"`
	Latitude     *float64 `json:"lat,omitempty"`
	Longitude    *float64 `json:"lon,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are known.
func (s SuggestionCity) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
