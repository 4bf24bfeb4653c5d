package web

import (
	"net/http"

	"userservice/internal/config"
	"userservice/internal/health"
	"userservice/internal/user"
	"userservice/middleware"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type route struct {
	method  string
	path    string
	handler http.HandlerFunc
}

// NewRouter registers the API routes. Anything else gets a JSON 404, or a
// JSON 405 when only the method is wrong.
func NewRouter(logger *zap.Logger) *mux.Router {
	healthHandlers := health.NewHealthHandlers()
	userHandlers := user.NewUserHandlers(logger)

	routes := []route{
		{http.MethodGet, "/ping", healthHandlers.Ping},
		{http.MethodPost, "/users", userHandlers.CreateUser},
	}

	fallback := &fallbackHandlers{
		logger:  logger,
		allowed: make(map[string][]string),
	}

	r := mux.NewRouter()
	for _, rt := range routes {
		r.HandleFunc(rt.path, rt.handler).Methods(rt.method)
		fallback.allowed[rt.path] = append(fallback.allowed[rt.path], rt.method)
	}

	r.NotFoundHandler = http.HandlerFunc(fallback.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(fallback.MethodNotAllowed)

	return r
}

// NewHandler wraps the router in the middleware chain. The chain sits
// outside the router so unmatched requests and CORS preflights pass through
// it too.
func NewHandler(cfg *config.Config, logger *zap.Logger) http.Handler {
	return wrap(cfg, logger, NewRouter(logger))
}

// wrap applies the middleware chain, outermost first: RequestID, logging,
// recovery, CORS. Recovery sits inside logging so a recovered panic is
// still logged as a 500.
func wrap(cfg *config.Config, logger *zap.Logger, h http.Handler) http.Handler {
	h = middleware.SetupCORS(cfg.CORSAllowedOrigins)(h)
	h = middleware.RecoveryMiddleware(logger)(h)
	h = middleware.LoggingMiddleware(logger)(h)
	h = middleware.RequestID(h)
	return h
}
