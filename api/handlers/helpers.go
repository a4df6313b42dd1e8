package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func contestIDParam(r *http.Request) (sharedtypes.ContestID, error) {
	raw := chi.URLParam(r, "contestID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return sharedtypes.ContestID(id), nil
}

// requestLocation resolves the caller's display timezone from the tz query
// parameter. Formatting is a presentation concern, so the location is an
// explicit parameter threaded into the DTO mappers, never service state.
func requestLocation(r *http.Request) *time.Location {
	name := r.URL.Query().Get("tz")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
