// models/forecast_response.go

package models

// ForecastResponse matches the 5 day / 3 hour forecast payload of /data/2.5/forecast.
type ForecastResponse struct {
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City ForecastCity    `json:"city"`
}

// ForecastEntry is one time-ordered sample in the 'list' array.
type ForecastEntry struct {
	Dt         int64              `json:"dt"`
	Main       ForecastMain       `json:"main"`
	Weather    []WeatherCondition `json:"weather"`
	Wind       Wind               `json:"wind"`
	Visibility *int               `json:"visibility,omitempty"` // meters, capped at 10000 upstream
	DtTxt      string             `json:"dt_txt"`
}

// ForecastMain holds the 'main' block. Temperatures are in the requested units.
type ForecastMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WeatherCondition is an element of the 'weather' array.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind speed is m/s with metric units.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// ForecastCity is the resolved place the forecast belongs to.
type ForecastCity struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"` // shift in seconds from UTC
	Coord    Coord  `json:"coord"`
}

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
