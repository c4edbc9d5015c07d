package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"

	"weather-lookup/models/view"
	services "weather-lookup/service"
	"weather-lookup/util"
)

type cityRequest struct {
	Name string `json:"name"`
}

type coordinatesRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// WeatherHandler exposes the weather panel of a LookupSession.
type WeatherHandler struct {
	session     *services.LookupSession
	renderChart func(w io.Writer, state view.WeatherViewState) error
}

func NewWeatherHandler(session *services.LookupSession) *WeatherHandler {
	return &WeatherHandler{session: session, renderChart: util.RenderForecastChart}
}

// Ping handles GET /ping
func (h *WeatherHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// GetState handles GET /v1/state
func (h *WeatherHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// GetWeather handles GET /v1/weather
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Weather.State())
}

// LoadCity handles POST /v1/weather/city. Fetch failures are reported in the
// returned state, not as an HTTP error.
func (h *WeatherHandler) LoadCity(w http.ResponseWriter, r *http.Request) {
	var req cityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Invalid argument name")
		return
	}
	writeJSON(w, http.StatusOK, h.session.Weather.LoadCity(loadContext(r), req.Name))
}

// LoadCoordinates handles POST /v1/weather/coordinates
func (h *WeatherHandler) LoadCoordinates(w http.ResponseWriter, r *http.Request) {
	var req coordinatesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body: "+err.Error())
		return
	}
	if req.Lat == nil {
		writeError(w, http.StatusBadRequest, "Invalid argument lat")
		return
	}
	if req.Lon == nil {
		writeError(w, http.StatusBadRequest, "Invalid argument lon")
		return
	}
	writeJSON(w, http.StatusOK, h.session.Weather.LoadCoordinates(loadContext(r), *req.Lat, *req.Lon))
}

// GetChart handles GET /v1/weather/chart and renders the current forecast.
func (h *WeatherHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	var page bytes.Buffer
	if err := h.renderChart(&page, h.session.Weather.State()); err != nil {
		log.Println("Error rendering forecast chart:", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := page.WriteTo(w); err != nil {
		log.Println("Error writing forecast chart:", err)
	}
}
