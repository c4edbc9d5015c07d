package util

import (
	"fmt"
	"io"

	"weather-lookup/models/view"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderForecastChart writes an HTML page with a line chart of the forecast
// temperatures, one point per day, labeled with the condition icon.
func RenderForecastChart(w io.Writer, state view.WeatherViewState) error {
	days := make([]string, 0, len(state.Forecast))
	points := make([]opts.LineData, 0, len(state.Forecast))
	for _, d := range state.Forecast {
		days = append(days, d.Day)
		points = append(points, opts.LineData{Name: d.Icon, Value: d.Temperature})
	}

	title := "Forecast"
	if state.City != "" {
		title = "Forecast for " + state.City
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("Now %d°C, %s", state.Temperature, state.Condition),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "°C"}),
	)

	line.SetXAxis(days).AddSeries("Temperature", points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{c}°C",
		}),
	)

	return line.Render(w)
}
