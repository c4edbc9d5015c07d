package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"weather-lookup/models/view"
)

// WeatherFetcher is the contract of the weather data adapter.
type WeatherFetcher interface {
	FetchByCity(ctx context.Context, name string) (view.WeatherViewState, error)
	FetchByCoordinates(ctx context.Context, lat, lon float64) (view.WeatherViewState, error)
}

// WeatherCoordinator owns the single WeatherViewState. Every load takes a new
// request token; a resolution whose token is no longer the latest is dropped,
// so an older request can never overwrite a newer one.
type WeatherCoordinator struct {
	fetcher WeatherFetcher
	feed    *ChangeFeed

	mu    sync.Mutex
	seq   uint64
	state view.WeatherViewState
}

// NewWeatherCoordinator starts in the loading state; the first load is
// expected right after construction. feed may be nil.
func NewWeatherCoordinator(fetcher WeatherFetcher, feed *ChangeFeed) *WeatherCoordinator {
	return &WeatherCoordinator{
		fetcher: fetcher,
		feed:    feed,
		state:   view.WeatherViewState{Loading: true, Forecast: []view.ForecastDay{}},
	}
}

// State returns a copy of the current view state.
func (c *WeatherCoordinator) State() view.WeatherViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyWeatherState(c.state)
}

// LoadCity fetches by name and returns the state visible once it settles.
func (c *WeatherCoordinator) LoadCity(ctx context.Context, name string) view.WeatherViewState {
	token := c.begin()
	data, err := c.safeFetch(func() (view.WeatherViewState, error) {
		return c.fetcher.FetchByCity(ctx, name)
	})
	return c.finish(token, data, err)
}

// LoadCoordinates fetches by coordinates and returns the state visible once it settles.
func (c *WeatherCoordinator) LoadCoordinates(ctx context.Context, lat, lon float64) view.WeatherViewState {
	token := c.begin()
	data, err := c.safeFetch(func() (view.WeatherViewState, error) {
		return c.fetcher.FetchByCoordinates(ctx, lat, lon)
	})
	return c.finish(token, data, err)
}

// begin flags loading, clears the error and keeps the previous data on display.
func (c *WeatherCoordinator) begin() uint64 {
	c.mu.Lock()
	c.seq++
	token := c.seq
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()

	c.feed.Notify()
	return token
}

func (c *WeatherCoordinator) finish(token uint64, data view.WeatherViewState, err error) view.WeatherViewState {
	c.mu.Lock()
	if token != c.seq {
		log.Printf("[WeatherCoordinator] Discarding stale result for request %d (latest is %d)", token, c.seq)
		state := copyWeatherState(c.state)
		c.mu.Unlock()
		return state
	}

	if err != nil {
		log.Printf("[WeatherCoordinator] Request %d failed: %v", token, err)
		c.state.Loading = false
		c.state.Error = FetchFailedMessage
	} else {
		data.Loading = false
		data.Error = ""
		if data.Forecast == nil {
			data.Forecast = []view.ForecastDay{}
		}
		c.state = data
	}
	state := copyWeatherState(c.state)
	c.mu.Unlock()

	c.feed.Notify()
	return state
}

// safeFetch turns a panicking adapter into an ordinary fetch failure.
func (c *WeatherCoordinator) safeFetch(fetch func() (view.WeatherViewState, error)) (data view.WeatherViewState, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: adapter panic: %v", ErrFetchFailed, r)
		}
	}()
	return fetch()
}

func copyWeatherState(s view.WeatherViewState) view.WeatherViewState {
	out := s
	out.Forecast = append([]view.ForecastDay(nil), s.Forecast...)
	if out.Forecast == nil {
		out.Forecast = []view.ForecastDay{}
	}
	if s.Visibility != nil {
		v := *s.Visibility
		out.Visibility = &v
	}
	return out
}
