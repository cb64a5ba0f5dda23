package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"caffeine-server/internal/models"
)

// setCORS attaches the permissive CORS trio the front-end dev setup relies on.
// The plain-text 404 path intentionally omits these headers.
func setCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

// writeJSON marshals up front so Content-Length is exact.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	setCORS(w.Header())
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, models.ErrorResponse{Error: message, Details: details})
}

// NotFound answers every unroutable method/path combination with plain text.
func NotFound(w http.ResponseWriter, r *http.Request) {
	body := []byte("404 Not Found")
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusNotFound)
	w.Write(body)
}

// Preflight answers CORS preflight requests for any path.
func Preflight(w http.ResponseWriter, r *http.Request) {
	setCORS(w.Header())
	w.WriteHeader(http.StatusNoContent)
}
