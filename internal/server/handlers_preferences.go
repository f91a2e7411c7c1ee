package server

import "net/http"

// PreferenceValue is the wire format for a single preference.
type PreferenceValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// handlePreference handles GET and PUT /api/preferences/{key}. Preferences
// are opaque strings; the UI uses them for things like the theme choice.
func (s *Server) handlePreference(w http.ResponseWriter, r *http.Request) {
	key := PathParam(r, "/api/preferences/")
	if key == "" {
		WriteError(w, http.StatusBadRequest, "Preference key is required")
		return
	}

	prefs := s.app.Storage.PreferenceStorage()

	switch r.Method {
	case http.MethodGet:
		value, err := prefs.Get(r.Context(), key)
		if err != nil {
			WriteError(w, http.StatusNotFound, "Preference not found")
			return
		}
		WriteJSON(w, http.StatusOK, PreferenceValue{Key: key, Value: value})

	case http.MethodPut:
		var req PreferenceValue
		if !DecodeJSON(w, r, &req) {
			return
		}
		if err := prefs.Set(r.Context(), key, req.Value); err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, PreferenceValue{Key: key, Value: req.Value})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut)
	}
}
