package server

import (
	"encoding/json"
	"net/http"
)

func jsonResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func jsonStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	jsonStatus(w, status, map[string]string{"error": message})
}

// jsonErrorDetails adds the diagnostic details field failure envelopes
// carry alongside the user-facing error string.
func jsonErrorDetails(w http.ResponseWriter, message, details string, status int) {
	jsonStatus(w, status, map[string]string{"error": message, "details": details})
}
