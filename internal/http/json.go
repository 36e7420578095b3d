package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/opsarc/jobdeck/internal/domain/model"
)

// errorResponse is the wire shape for every error the API returns.
type errorResponse struct {
	Error   string             `json:"error"`
	Details []model.FieldError `json:"details,omitempty"`
}

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// WriteErrorMessage writes a JSON error response carrying only a message.
func WriteErrorMessage(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, errorResponse{Error: message})
}

// WriteErrorDetails writes a JSON error response with per-field details.
func WriteErrorDetails(w http.ResponseWriter, code int, message string, details []model.FieldError) {
	WriteJSON(w, code, errorResponse{Error: message, Details: details})
}
