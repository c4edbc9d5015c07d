package models

// GeocodingResult is one candidate place returned by /geo/1.0/direct.
// State is only present for some countries; coordinates may be missing
// from third-party sources that reuse this shape.
type GeocodingResult struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	State   string   `json:"state,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}
