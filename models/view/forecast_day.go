package view

// ForecastDay is one entry of the multi-day summary.
type ForecastDay struct {
	Day         string `json:"day"`
	Temperature int    `json:"temperature"`
	Icon        string `json:"icon"`
}
