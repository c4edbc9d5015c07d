package handlers

import (
	"net/http"
	"strings"

	"weather-lookup/models/view"
	services "weather-lookup/service"

	"github.com/gorilla/mux"
)

const CITY_NAME_PATH_VAR = "name"

type textRequest struct {
	Text *string `json:"text"`
}

type citiesResponse struct {
	Default string   `json:"default"`
	Popular []string `json:"popular"`
}

// SearchHandler exposes the search box of a LookupSession.
type SearchHandler struct {
	session *services.LookupSession
}

func NewSearchHandler(session *services.LookupSession) *SearchHandler {
	return &SearchHandler{session: session}
}

// GetSearch handles GET /v1/search
func (h *SearchHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Search.State())
}

// TextChanged handles POST /v1/search/text. Suggestions arrive later, after
// the debounce window, through GET /v1/search or the stream.
func (h *SearchHandler) TextChanged(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body: "+err.Error())
		return
	}
	if req.Text == nil {
		writeError(w, http.StatusBadRequest, "Invalid argument text")
		return
	}
	h.session.Search.TextChanged(*req.Text)
	writeJSON(w, http.StatusAccepted, h.session.Search.State())
}

// Focus handles POST /v1/search/focus
func (h *SearchHandler) Focus(w http.ResponseWriter, r *http.Request) {
	h.session.Search.Focus()
	writeJSON(w, http.StatusOK, h.session.Search.State())
}

// Dismiss handles POST /v1/search/dismiss
func (h *SearchHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.session.Search.Dismiss()
	writeJSON(w, http.StatusOK, h.session.Search.State())
}

// Submit handles POST /v1/search/submit. A blank query loads nothing and
// returns the unchanged snapshot.
func (h *SearchHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.session.Submit(loadContext(r))
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// Select handles POST /v1/search/select with a suggestion from the dropdown.
func (h *SearchHandler) Select(w http.ResponseWriter, r *http.Request) {
	var picked view.SuggestionCity
	if err := decodeBody(r, &picked); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body: "+err.Error())
		return
	}
	if strings.TrimSpace(picked.Name) == "" && !picked.HasCoordinates() {
		writeError(w, http.StatusBadRequest, "Invalid argument name")
		return
	}
	h.session.PickSuggestion(loadContext(r), picked)
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// GetCities handles GET /v1/cities
func (h *SearchHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, citiesResponse{
		Default: h.session.DefaultCity(),
		Popular: h.session.PopularCities(),
	})
}

// PickCity handles POST /v1/cities/{name}
func (h *SearchHandler) PickCity(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(mux.Vars(r)[CITY_NAME_PATH_VAR])
	if name == "" {
		writeError(w, http.StatusBadRequest, "Invalid argument "+CITY_NAME_PATH_VAR)
		return
	}
	h.session.PickQuickCity(loadContext(r), name)
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}
