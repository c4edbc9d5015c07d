package view

// WeatherViewState is the display-ready current conditions plus forecast.
// Loading and Error are mutually exclusive; a successful load clears both.
// WindSpeed is km/h, Pressure hPa and Visibility km.
type WeatherViewState struct {
	City        string        `json:"city"`
	Temperature int           `json:"temperature"`
	FeelsLike   int           `json:"feels_like"`
	Condition   string        `json:"condition"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Humidity    int           `json:"humidity"`
	WindSpeed   int           `json:"wind_speed"`
	Pressure    int           `json:"pressure"`
	Visibility  *float64      `json:"visibility,omitempty"`
	Tip         string        `json:"tip"`
	Forecast    []ForecastDay `json:"forecast"`
	Loading     bool          `json:"loading"`
	Error       string        `json:"error,omitempty"`
}
