package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// OpenWeather API config
const OPENWEATHER_ENDPOINT_BASE = "https://api.openweathermap.org"
const OPENWEATHER_FORECAST_ENDPOINT = "/data/2.5/forecast"
const OPENWEATHER_GEOCODING_ENDPOINT = "/geo/1.0/direct"
const OPENWEATHER_UNITS = "metric"

// Lookup behaviour
const SUGGESTIONS_LIMIT = 5
const FORECAST_DAYS = 5
const MIN_QUERY_LENGTH = 2
const SEARCH_DEBOUNCE_MILLISECONDS = 300
const DEFAULT_CITY = "New York"

// Server config
const DEFAULT_PORT = "8080"

// Environments
const ENV_PROD = "prod"
const ENV_DEV = "dev"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const FORECAST_RESPONSE_RESOURCE = "forecast_response.json"
const GEOCODING_RESPONSE_RESOURCE = "geocoding_response.json"

// PopularCities are the quick-pick cities offered under the forecast.
var PopularCities = []string{"London", "Tokyo", "Paris", "Sydney", "Dubai"}

// Config is the runtime configuration, read from the environment.
type Config struct {
	Env              string
	APIKey           string
	BaseURL          string
	DefaultCity      string
	PopularCities    []string
	DebounceInterval time.Duration
	Port             string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] .env not loaded, using process environment")
	}

	cfg := &Config{
		Env:              getEnv("WEATHER_LOOKUP_ENV", ENV_PROD),
		APIKey:           os.Getenv("OPENWEATHER_API_KEY"),
		BaseURL:          getEnv("OPENWEATHER_BASE_URL", OPENWEATHER_ENDPOINT_BASE),
		DefaultCity:      getEnv("WEATHER_DEFAULT_CITY", DEFAULT_CITY),
		PopularCities:    PopularCities,
		DebounceInterval: SEARCH_DEBOUNCE_MILLISECONDS * time.Millisecond,
		Port:             getEnv("PORT", DEFAULT_PORT),
	}

	if v := os.Getenv("WEATHER_POPULAR_CITIES"); v != "" {
		if cities := splitList(v); len(cities) > 0 {
			cfg.PopularCities = cities
		}
	}

	if v := os.Getenv("SEARCH_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.DebounceInterval = time.Duration(ms) * time.Millisecond
		} else {
			log.Printf("[Config] ignoring invalid SEARCH_DEBOUNCE_MS=%q", v)
		}
	}

	if cfg.Env == ENV_PROD && cfg.APIKey == "" {
		log.Println("[Config] OPENWEATHER_API_KEY is not set, upstream calls will be rejected")
	}

	return cfg
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
