package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mattermost/mattermost-plugin-option-bridge/server/options"
)

// authorizer reports whether the given Mattermost user may manage options.
type authorizer func(userID string) bool

// apiHandler exposes the option bridge over REST:
//
//	GET    /api/v1/options/{name}?default=...  read an option
//	POST   /api/v1/options/{name}              create an option
//	PUT    /api/v1/options/{name}              create or overwrite an option
//	DELETE /api/v1/options/{name}              delete an option
//
// POST and PUT expect a JSON body of the form {"value": ...}. This is the
// dynamically typed boundary of the plugin: whatever JSON value the caller
// sends is handed to the bridge as-is.
type apiHandler struct {
	bridge    *options.Bridge
	authorize authorizer
	router    *mux.Router
}

func newAPIHandler(bridge *options.Bridge, authorize authorizer) *apiHandler {
	h := &apiHandler{
		bridge:    bridge,
		authorize: authorize,
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(h.requireAdmin)
	api.HandleFunc("/options/{name}", h.getOption).Methods(http.MethodGet)
	api.HandleFunc("/options/{name}", h.addOption).Methods(http.MethodPost)
	api.HandleFunc("/options/{name}", h.updateOption).Methods(http.MethodPut)
	api.HandleFunc("/options/{name}", h.deleteOption).Methods(http.MethodDelete)
	h.router = router

	return h
}

func (h *apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// requireAdmin rejects requests that did not come through a Mattermost
// session, and sessions whose user lacks the manage-system permission.
func (h *apiHandler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("Mattermost-User-ID")
		if userID == "" {
			writeError(w, http.StatusUnauthorized, "not authorized")
			return
		}
		if !h.authorize(userID) {
			writeError(w, http.StatusForbidden, "permission denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// optionPayload is the request body for POST and PUT.
type optionPayload struct {
	Value any `json:"value"`
}

// optionResponse is the response body for reads and successful writes.
type optionResponse struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

func (h *apiHandler) getOption(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	// The default query parameter is interpreted as JSON when possible
	// (?default=42, ?default=["a","b"]) and as a plain string otherwise.
	var fallback any
	if raw := r.URL.Query().Get("default"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &fallback); err != nil {
			fallback = raw
		}
	}

	value := h.bridge.Get(name, fallback)
	writeJSON(w, http.StatusOK, optionResponse{Name: name, Value: value})
}

func (h *apiHandler) addOption(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var payload optionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON with a value field")
		return
	}

	if !h.bridge.Add(name, payload.Value) {
		writeError(w, http.StatusConflict, "option already exists or could not be created")
		return
	}
	writeJSON(w, http.StatusCreated, optionResponse{Name: name, Value: payload.Value})
}

func (h *apiHandler) updateOption(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var payload optionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON with a value field")
		return
	}

	if !h.bridge.Update(name, payload.Value) {
		writeError(w, http.StatusInternalServerError, "failed to update option")
		return
	}
	writeJSON(w, http.StatusOK, optionResponse{Name: name, Value: payload.Value})
}

func (h *apiHandler) deleteOption(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if !h.bridge.Delete(name) {
		writeError(w, http.StatusInternalServerError, "failed to delete option")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
