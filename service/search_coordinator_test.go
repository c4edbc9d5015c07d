package services

import (
	"context"
	"testing"
	"time"

	"weather-lookup/models/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 40 * time.Millisecond

func newTestSearch(t *testing.T, suggester Suggester) *SearchCoordinator {
	t.Helper()
	c := NewSearchCoordinator(context.Background(), suggester, testDebounce, nil)
	t.Cleanup(c.Close)
	return c
}

func londonOnly(query string) []view.SuggestionCity {
	return []view.SuggestionCity{suggestion("London", "GB")}
}

func TestSearchCoordinator_BurstSettlesOnce(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := newTestSearch(t, suggester)

	for _, text := range []string{"L", "Lo", "Lon", "Lond"} {
		c.TextChanged(text)
		time.Sleep(testDebounce / 4)
	}

	require.Eventually(t, func() bool { return len(suggester.seen()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * testDebounce)
	assert.Equal(t, []string{"Lond"}, suggester.seen())

	state := c.State()
	assert.Equal(t, "Lond", state.QueryText)
	assert.True(t, state.SuggestionsVisible)
	require.Len(t, state.Suggestions, 1)
	assert.Equal(t, "London, GB", state.Suggestions[0].DisplayLabel)
}

func TestSearchCoordinator_TextStoredImmediately(t *testing.T) {
	c := newTestSearch(t, &fakeSuggester{})

	c.TextChanged("Par")

	assert.Equal(t, "Par", c.State().QueryText)
	assert.False(t, c.State().SuggestionsVisible)
}

func TestSearchCoordinator_ShortTextNeverFetches(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := newTestSearch(t, suggester)

	c.TextChanged("L")
	time.Sleep(3 * testDebounce)

	assert.Empty(t, suggester.seen())
	assert.Empty(t, c.State().Suggestions)
	assert.False(t, c.State().SuggestionsVisible)
}

func TestSearchCoordinator_ShortTextClearsAtOnce(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := newTestSearch(t, suggester)
	c.TextChanged("Lon")
	require.Eventually(t, func() bool { return c.State().SuggestionsVisible }, time.Second, 5*time.Millisecond)

	c.TextChanged("L")

	state := c.State()
	assert.False(t, state.SuggestionsVisible)
	assert.Empty(t, state.Suggestions)
}

func TestSearchCoordinator_EmptyResultStaysHidden(t *testing.T) {
	suggester := &fakeSuggester{}
	c := newTestSearch(t, suggester)

	c.TextChanged("Zzqx")

	require.Eventually(t, func() bool { return len(suggester.seen()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(testDebounce)
	state := c.State()
	assert.False(t, state.SuggestionsVisible)
	assert.NotNil(t, state.Suggestions)
	assert.Empty(t, state.Suggestions)
}

func TestSearchCoordinator_SupersededFetchDropped(t *testing.T) {
	release := make(chan struct{})
	suggester := &fakeSuggester{respond: func(query string) []view.SuggestionCity {
		if query == "Lon" {
			<-release
			return londonOnly(query)
		}
		return []view.SuggestionCity{suggestion("Paris", "FR")}
	}}
	c := newTestSearch(t, suggester)

	c.TextChanged("Lon")
	require.Eventually(t, func() bool { return len(suggester.seen()) == 1 }, time.Second, 5*time.Millisecond)
	c.TextChanged("Par")
	close(release)

	require.Eventually(t, func() bool { return len(suggester.seen()) == 2 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return c.State().SuggestionsVisible }, time.Second, 5*time.Millisecond)
	time.Sleep(testDebounce)

	state := c.State()
	require.Len(t, state.Suggestions, 1)
	assert.Equal(t, "Paris, FR", state.Suggestions[0].DisplayLabel)
}

func TestSearchCoordinator_DismissThenFocusReopens(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := newTestSearch(t, suggester)
	c.TextChanged("Lon")
	require.Eventually(t, func() bool { return c.State().SuggestionsVisible }, time.Second, 5*time.Millisecond)

	c.Dismiss()
	dismissed := c.State()
	assert.False(t, dismissed.SuggestionsVisible)
	assert.Empty(t, dismissed.Suggestions)
	assert.Equal(t, "Lon", dismissed.QueryText)

	c.Focus()
	reopened := c.State()
	assert.True(t, reopened.SuggestionsVisible)
	require.Len(t, reopened.Suggestions, 1)
	assert.Len(t, suggester.seen(), 1, "focus must not fetch")
}

func TestSearchCoordinator_SettleAfterDismissStaysHidden(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := newTestSearch(t, suggester)

	c.TextChanged("Lon")
	c.Dismiss()
	require.Eventually(t, func() bool { return len(suggester.seen()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(testDebounce)
	assert.False(t, c.State().SuggestionsVisible)

	c.Focus()
	assert.True(t, c.State().SuggestionsVisible)
}

func TestSearchCoordinator_FocusAfterNewTextSkipsOldResult(t *testing.T) {
	release := make(chan struct{})
	suggester := &fakeSuggester{respond: func(query string) []view.SuggestionCity {
		if query == "Par" {
			<-release
			return []view.SuggestionCity{suggestion("Paris", "FR")}
		}
		return londonOnly(query)
	}}
	c := newTestSearch(t, suggester)
	defer close(release)
	c.TextChanged("Lon")
	require.Eventually(t, func() bool { return c.State().SuggestionsVisible }, time.Second, 5*time.Millisecond)
	c.Dismiss()

	c.TextChanged("Par")
	c.Focus()

	state := c.State()
	assert.Equal(t, "Par", state.QueryText)
	assert.False(t, state.SuggestionsVisible)
	assert.Empty(t, state.Suggestions)
}

func TestSearchCoordinator_SelectClearsSuggestions(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := newTestSearch(t, suggester)
	c.TextChanged("Lon")
	require.Eventually(t, func() bool { return c.State().SuggestionsVisible }, time.Second, 5*time.Millisecond)

	c.SelectSuggestion(c.State().Suggestions[0])

	state := c.State()
	assert.Equal(t, "London", state.QueryText)
	assert.False(t, state.SuggestionsVisible)
	assert.Empty(t, state.Suggestions)

	c.Focus()
	assert.False(t, c.State().SuggestionsVisible, "selection forgets the old dropdown")
}

func TestSearchCoordinator_SubmitCancelsPendingSettle(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := newTestSearch(t, suggester)

	c.TextChanged("  Lisbon ")
	query, ok := c.Submit()
	time.Sleep(3 * testDebounce)

	assert.True(t, ok)
	assert.Equal(t, "Lisbon", query)
	assert.Empty(t, suggester.seen())
	assert.False(t, c.State().SuggestionsVisible)
}

func TestSearchCoordinator_BlankSubmitIgnored(t *testing.T) {
	c := newTestSearch(t, &fakeSuggester{})
	c.TextChanged("   ")

	query, ok := c.Submit()

	assert.False(t, ok)
	assert.Empty(t, query)
	assert.Equal(t, "   ", c.State().QueryText)
}

func TestSearchCoordinator_SetQueryDoesNotFetch(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := newTestSearch(t, suggester)

	c.SetQuery("Tokyo")
	time.Sleep(3 * testDebounce)

	assert.Equal(t, "Tokyo", c.State().QueryText)
	assert.Empty(t, suggester.seen())
}

func TestSearchCoordinator_CloseStopsTimer(t *testing.T) {
	suggester := &fakeSuggester{respond: londonOnly}
	c := NewSearchCoordinator(context.Background(), suggester, testDebounce, nil)

	c.TextChanged("Lon")
	c.Close()
	c.TextChanged("Lond")
	time.Sleep(3 * testDebounce)

	assert.Empty(t, suggester.seen())
}

func TestSearchCoordinator_NotifiesFeed(t *testing.T) {
	feed := NewChangeFeed()
	signals, unsubscribe := feed.Subscribe()
	defer unsubscribe()
	c := NewSearchCoordinator(context.Background(), &fakeSuggester{respond: londonOnly}, testDebounce, feed)
	defer c.Close()

	c.TextChanged("Lon")
	<-signals

	select {
	case <-signals:
	case <-time.After(time.Second):
		t.Fatal("no signal after settle")
	}
	assert.True(t, c.State().SuggestionsVisible)
}

func TestSearchCoordinator_StateIsCopy(t *testing.T) {
	c := newTestSearch(t, &fakeSuggester{respond: londonOnly})
	c.TextChanged("Lon")
	require.Eventually(t, func() bool { return c.State().SuggestionsVisible }, time.Second, 5*time.Millisecond)

	state := c.State()
	state.Suggestions[0].Name = "changed"

	assert.Equal(t, "London", c.State().Suggestions[0].Name)
}
