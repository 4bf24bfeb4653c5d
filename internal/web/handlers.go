package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every framework-level error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError responds with {"detail": message}.
func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, ErrorResponse{Detail: message})
}

// fallbackHandlers answers requests no route accepts.
type fallbackHandlers struct {
	logger *zap.Logger
	// allowed maps each registered path to the methods it accepts.
	allowed map[string][]string
}

func (h *fallbackHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if err := WriteError(w, http.StatusNotFound, "Not Found"); err != nil {
		h.logger.Warn("failed to write not found response", zap.Error(err))
	}
}

func (h *fallbackHandlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if methods := h.allowed[r.URL.Path]; len(methods) > 0 {
		w.Header().Set("Allow", strings.Join(methods, ", "))
	}
	if err := WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed"); err != nil {
		h.logger.Warn("failed to write method not allowed response", zap.Error(err))
	}
}
