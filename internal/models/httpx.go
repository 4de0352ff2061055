package models

import (
	"encoding/json"
	"net/http"

	"github.com/aishwaryaDel/aihub-bolt/internal/apperr"
	"github.com/aishwaryaDel/aihub-bolt/internal/logs"
)

// Response is the uniform JSON envelope used by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData renders a successful response, optionally with a message.
func WriteData(w http.ResponseWriter, status int, data any, message string) {
	WriteJSON(w, status, Response{Success: true, Data: data, Message: message})
}

// WriteList renders a successful collection response with its count.
func WriteList(w http.ResponseWriter, data any, count int) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{Success: false, Error: message})
}

// WriteServiceError renders a service-layer error. Operational errors map
// 1:1 onto the envelope; anything else is logged in full and rendered as a
// generic 500 so internals never leak to the client.
func WriteServiceError(w http.ResponseWriter, err error) {
	if e, ok := apperr.From(err); ok {
		if e.Err != nil && logs.Logger != nil {
			logs.Logger.Errorf("%s: %v", e.Message, e.Err)
		}
		WriteError(w, e.Code, e.Message)
		return
	}
	if logs.Logger != nil {
		logs.Logger.Errorf("unexpected error: %v", err)
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}
