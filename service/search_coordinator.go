package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"weather-lookup/models/view"
)

// Suggester is the contract of the suggestion adapter.
type Suggester interface {
	FetchSuggestions(ctx context.Context, query string) []view.SuggestionCity
}

// SearchCoordinator owns the search box: query text, the debounce timer and
// suggestion visibility.
//
// Each text change takes a new settle token and replaces the pending timer.
// Only the timer callback holding the current token may fetch or publish, so
// bursts of typing produce exactly one settled evaluation.
type SearchCoordinator struct {
	suggester Suggester
	debounce  time.Duration
	feed      *ChangeFeed
	ctx       context.Context
	cancel    context.CancelFunc

	mu     sync.Mutex
	token  uint64
	timer  *time.Timer
	active bool
	closed bool
	state  view.SearchState
	// last computed result, reused when focus returns after an outside dismissal
	last []view.SuggestionCity
}

// NewSearchCoordinator creates a coordinator whose settled fetches run under ctx.
// feed may be nil.
func NewSearchCoordinator(ctx context.Context, suggester Suggester, debounce time.Duration, feed *ChangeFeed) *SearchCoordinator {
	ctx, cancel := context.WithCancel(ctx)
	return &SearchCoordinator{
		suggester: suggester,
		debounce:  debounce,
		feed:      feed,
		ctx:       ctx,
		cancel:    cancel,
		state:     view.SearchState{Suggestions: []view.SuggestionCity{}},
	}
}

// State returns a copy of the current search state.
func (c *SearchCoordinator) State() view.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySearchState(c.state)
}

// TextChanged stores the text right away and restarts the debounce window.
// Text below the minimum length clears the suggestions without waiting.
func (c *SearchCoordinator) TextChanged(text string) {
	c.mu.Lock()
	c.state.QueryText = text
	c.active = true
	c.token++
	c.stopTimerLocked()
	// the remembered result belongs to the previous text
	c.last = nil

	if !IsSearchable(text) {
		c.clearLocked()
	} else if !c.closed {
		token := c.token
		c.timer = time.AfterFunc(c.debounce, func() { c.settle(token) })
	}
	c.mu.Unlock()

	c.feed.Notify()
}

// Focus re-opens the last computed suggestions when the text is still long
// enough. It never triggers a fetch.
func (c *SearchCoordinator) Focus() {
	c.mu.Lock()
	c.active = true
	if IsSearchable(c.state.QueryText) && len(c.last) > 0 {
		c.state.Suggestions = append([]view.SuggestionCity{}, c.last...)
		c.state.SuggestionsVisible = true
	}
	c.mu.Unlock()

	c.feed.Notify()
}

// Dismiss handles interaction outside both the input and the dropdown.
func (c *SearchCoordinator) Dismiss() {
	c.mu.Lock()
	c.active = false
	c.clearLocked()
	c.mu.Unlock()

	c.feed.Notify()
}

// SelectSuggestion puts the picked city in the box and closes the dropdown.
func (c *SearchCoordinator) SelectSuggestion(s view.SuggestionCity) {
	c.SetQuery(s.Name)
}

// SetQuery replaces the text without starting a debounce window, as done for
// quick-city picks and the seeded default city.
func (c *SearchCoordinator) SetQuery(text string) {
	c.mu.Lock()
	c.state.QueryText = text
	c.resetLocked()
	c.mu.Unlock()

	c.feed.Notify()
}

// Submit returns the trimmed query and resets the suggestions. A blank query
// is not submitted and leaves the state untouched.
func (c *SearchCoordinator) Submit() (string, bool) {
	c.mu.Lock()
	query := strings.TrimSpace(c.state.QueryText)
	if query == "" {
		c.mu.Unlock()
		return "", false
	}
	c.resetLocked()
	c.mu.Unlock()

	c.feed.Notify()
	return query, true
}

// Close stops the pending timer and cancels in-flight settled fetches.
func (c *SearchCoordinator) Close() {
	c.mu.Lock()
	c.closed = true
	c.token++
	c.stopTimerLocked()
	c.mu.Unlock()
	c.cancel()
}

func (c *SearchCoordinator) settle(token uint64) {
	c.mu.Lock()
	if token != c.token || c.closed {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	query := c.state.QueryText
	c.mu.Unlock()

	results := c.suggester.FetchSuggestions(c.ctx, query)

	c.mu.Lock()
	if token != c.token {
		c.mu.Unlock()
		log.Printf("[SearchCoordinator] Dropping suggestions for superseded query %q", query)
		return
	}
	c.last = results
	if c.active {
		c.state.Suggestions = append([]view.SuggestionCity{}, results...)
		c.state.SuggestionsVisible = len(results) > 0
	}
	c.mu.Unlock()

	c.feed.Notify()
}

// resetLocked ends the current search: pending and in-flight settles are
// superseded and the remembered result is forgotten.
func (c *SearchCoordinator) resetLocked() {
	c.token++
	c.stopTimerLocked()
	c.active = false
	c.clearLocked()
	c.last = nil
}

func (c *SearchCoordinator) clearLocked() {
	c.state.Suggestions = []view.SuggestionCity{}
	c.state.SuggestionsVisible = false
}

func (c *SearchCoordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func copySearchState(s view.SearchState) view.SearchState {
	out := s
	out.Suggestions = append([]view.SuggestionCity{}, s.Suggestions...)
	return out
}
