package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// WeatherRoutes serves the weather panel endpoints.
type WeatherRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	GetState(w http.ResponseWriter, r *http.Request)
	GetWeather(w http.ResponseWriter, r *http.Request)
	LoadCity(w http.ResponseWriter, r *http.Request)
	LoadCoordinates(w http.ResponseWriter, r *http.Request)
	GetChart(w http.ResponseWriter, r *http.Request)
}

// SearchRoutes serves the search box and quick-city endpoints.
type SearchRoutes interface {
	GetSearch(w http.ResponseWriter, r *http.Request)
	TextChanged(w http.ResponseWriter, r *http.Request)
	Focus(w http.ResponseWriter, r *http.Request)
	Dismiss(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Select(w http.ResponseWriter, r *http.Request)
	GetCities(w http.ResponseWriter, r *http.Request)
	PickCity(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	weatherHandler WeatherRoutes
	searchHandler  SearchRoutes
	streamHandler  http.Handler
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	weatherHandler WeatherRoutes,
	searchHandler SearchRoutes,
	streamHandler http.Handler,
	router *mux.Router) *Router {
	return &Router{
		weatherHandler: weatherHandler,
		searchHandler:  searchHandler,
		streamHandler:  streamHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.weatherHandler.Ping).Methods("GET")
	r.router.HandleFunc("/v1/state", r.weatherHandler.GetState).Methods("GET")

	r.router.HandleFunc("/v1/weather", r.weatherHandler.GetWeather).Methods("GET")
	// expects {"name": string}
	r.router.HandleFunc("/v1/weather/city", r.weatherHandler.LoadCity).Methods("POST")
	// expects {"lat": float, "lon": float}
	r.router.HandleFunc("/v1/weather/coordinates", r.weatherHandler.LoadCoordinates).Methods("POST")
	r.router.HandleFunc("/v1/weather/chart", r.weatherHandler.GetChart).Methods("GET")

	r.router.HandleFunc("/v1/search", r.searchHandler.GetSearch).Methods("GET")
	// expects {"text": string}
	r.router.HandleFunc("/v1/search/text", r.searchHandler.TextChanged).Methods("POST")
	r.router.HandleFunc("/v1/search/focus", r.searchHandler.Focus).Methods("POST")
	r.router.HandleFunc("/v1/search/dismiss", r.searchHandler.Dismiss).Methods("POST")
	r.router.HandleFunc("/v1/search/submit", r.searchHandler.Submit).Methods("POST")
	// expects a suggestion as returned by GET /v1/search
	r.router.HandleFunc("/v1/search/select", r.searchHandler.Select).Methods("POST")

	r.router.HandleFunc("/v1/cities", r.searchHandler.GetCities).Methods("GET")
	r.router.HandleFunc("/v1/cities/{name}", r.searchHandler.PickCity).Methods("POST")

	r.router.Handle("/v1/stream", r.streamHandler).Methods("GET")
}
