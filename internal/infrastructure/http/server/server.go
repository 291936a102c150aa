// Package server provides the HTTP API over the planning service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wellplate/v1/internal/infrastructure/config"
	"github.com/wellplate/v1/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *chi.Mux
	server   *http.Server
	service  inbound.PlanService
	validate *validator.Validate
	metrics  *metrics
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, logger *zap.Logger, service inbound.PlanService) *Server {
	s := &Server{
		config:   cfg,
		logger:   logger,
		service:  service,
		validate: validator.New(),
		metrics:  newMetrics(),
	}

	s.router = s.setupRouter()
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealth)
	r.Get(s.config.Monitoring.ReadinessPath, s.handleHealth)
	if s.config.Monitoring.EnableMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/profiles", s.handleCreateProfile)

		r.Route("/profiles/{profileID}", func(r chi.Router) {
			r.Get("/", s.handleGetProfile)
			r.Patch("/", s.handleUpdateProfile)

			r.Post("/diet-plan", s.handleGenerateDietPlan)
			r.Post("/meal-plan", s.handleGenerateMealPlan)

			r.Get("/daily-targets", s.handleDailyTargets)
			r.Get("/groceries", s.handleGroceryList)

			r.Post("/recipes", s.handleSaveRecipe)
			r.Post("/recipes/custom", s.handleCreateCustomRecipe)
			r.Get("/recipes/{recipeName}/swaps", s.handleSwapSuggestions)
			r.Post("/recipes/{recipeName}/swaps", s.handleApplySwaps)
		})
	})

	return r
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.metrics.observe(r.Method, r.URL.Path, ww.Status(), time.Since(start))
		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", chimiddleware.GetReqID(r.Context())))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"app":     s.config.App.Name,
		"version": s.config.App.Version,
	})
}

// Start begins serving HTTP requests. It blocks until the listener
// closes.
func (s *Server) Start() error {
	s.logger.Info("http server starting", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.server.Shutdown(ctx)
}
