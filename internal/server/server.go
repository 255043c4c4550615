package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/FishingOverhaul_Go/docs"
	"github.com/osse101/FishingOverhaul_Go/internal/handler"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/metrics"
)

// Store is the actor store as seen by the HTTP layer
type Store interface {
	handler.Pinger
	handler.ActorStore
}

// Deps are the services the routes are served from
type Deps struct {
	Store    Store
	Registry handler.Registry
	Fishing  handler.ChanceService
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(addr, apiKey string, trustedProxies []string, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(apiKey, trustedProxies, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(apiKey string, trustedProxies []string, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chances", handler.HandlePreviewChances(deps.Fishing))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/registry", handler.HandleGetRegistry(deps.Registry))
		r.Post("/reload", handler.HandleReload(deps.Registry))
		r.Route("/actors/{"+handler.ParamActorID+"}", func(r chi.Router) {
			r.Get("/", handler.HandleGetActor(deps.Store))
			r.Delete("/", handler.HandleClearActor(deps.Store))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, LogFieldAddr, s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
