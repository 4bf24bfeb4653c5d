package user

import (
	"net/http"

	"userservice/middleware"

	"go.uber.org/zap"
)

// UserHandlers serves the user endpoints.
type UserHandlers struct {
	logger *zap.Logger
}

// NewUserHandlers creates new user HTTP handlers
func NewUserHandlers(logger *zap.Logger) *UserHandlers {
	return &UserHandlers{logger: logger}
}

// CreateUser is a placeholder: the request body is never read, so any
// payload (including none) is accepted and answered with a JSON null.
func (h *UserHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("user creation requested",
		zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		zap.Int64("content_length", r.ContentLength),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("null"))
}
