package health

import (
	"net/http"
)

// AliveMessage is the liveness probe response body.
const AliveMessage = "I am alive"

// HealthHandlers serves the liveness probe.
type HealthHandlers struct{}

// NewHealthHandlers creates new health HTTP handlers
func NewHealthHandlers() *HealthHandlers {
	return &HealthHandlers{}
}

// Ping reports that the process is up. It ignores headers, query and body.
func (h *HealthHandlers) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(AliveMessage))
}
