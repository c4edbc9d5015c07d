package di

import (
	"context"
	"log"

	"weather-lookup/api"
	"weather-lookup/api/openweather"
	"weather-lookup/config"
	"weather-lookup/server"
	"weather-lookup/server/handlers"
	services "weather-lookup/service"

	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	OpenWeatherAPI          openweather.OpenWeatherAPI
	ChangeFeed              *services.ChangeFeed
	WeatherDataAdapter      *services.WeatherDataAdapter
	SuggestionAdapter       *services.SuggestionAdapter
	WeatherCoordinator      *services.WeatherCoordinator
	SearchCoordinator       *services.SearchCoordinator
	LookupSession           *services.LookupSession
	WeatherHandler          *handlers.WeatherHandler
	SearchHandler           *handlers.SearchHandler
	StreamHandler           *handlers.StreamHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	WeatherLookupHttpServer *server.WeatherLookupHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)

	var openWeatherAPI openweather.OpenWeatherAPI
	if cfg.Env != config.ENV_PROD {
		openWeatherAPI = openweather.NewOpenWeatherApiClientMock(
			config.GetResourcePath(config.FORECAST_RESPONSE_RESOURCE),
			config.GetResourcePath(config.GEOCODING_RESPONSE_RESOURCE),
		)
		log.Printf("Using mock openweather api")
	} else {
		log.Printf("Using prod openweather api at %s", cfg.BaseURL)
		httpClient := api.NewHTTPClient(cfg.BaseURL)

		openWeatherAPI = openweather.NewOpenWeatherApiClient(httpClient)
		openWeatherAPI.SetCredentials(cfg.APIKey)
	}

	changeFeed := services.NewChangeFeed()

	weatherDataAdapter := services.NewWeatherDataAdapter(openWeatherAPI)
	suggestionAdapter := services.NewSuggestionAdapter(openWeatherAPI)

	weatherCoordinator := services.NewWeatherCoordinator(weatherDataAdapter, changeFeed)
	searchCoordinator := services.NewSearchCoordinator(ctx, suggestionAdapter, cfg.DebounceInterval, changeFeed)

	lookupSession := services.NewLookupSession(weatherCoordinator, searchCoordinator, cfg.DefaultCity, cfg.PopularCities)

	weatherHandler := handlers.NewWeatherHandler(lookupSession)
	searchHandler := handlers.NewSearchHandler(lookupSession)
	streamHandler := handlers.NewStreamHandler(lookupSession, changeFeed)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	router := server.NewRouter(weatherHandler, searchHandler, streamHandler, muxRouter)

	weatherLookupHttpServer := server.NewWeatherLookupHttpServer(router, muxRouter, ":"+cfg.Port)

	return &Container{
		Config:                  cfg,
		OpenWeatherAPI:          openWeatherAPI,
		ChangeFeed:              changeFeed,
		WeatherDataAdapter:      weatherDataAdapter,
		SuggestionAdapter:       suggestionAdapter,
		WeatherCoordinator:      weatherCoordinator,
		SearchCoordinator:       searchCoordinator,
		LookupSession:           lookupSession,
		WeatherHandler:          weatherHandler,
		SearchHandler:           searchHandler,
		StreamHandler:           streamHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		WeatherLookupHttpServer: weatherLookupHttpServer,
	}
}
