// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/infrastructure/config"
	"github.com/readytocook/v1/internal/infrastructure/http/handlers"
	"github.com/readytocook/v1/internal/infrastructure/http/middleware"
	"github.com/readytocook/v1/internal/infrastructure/monitoring"
	"github.com/readytocook/v1/internal/infrastructure/security"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/internal/ports/outbound"
	"github.com/readytocook/v1/pkg/healthcheck"
)

// Server is the JSON API server for the kitchen inventory
type Server struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
	router *chi.Mux

	tokens        *security.TokenService
	metrics       *monitoring.MetricsCollector
	health        *healthcheck.HealthCheck
	authService   inbound.AuthService
	pantryService inbound.PantryService
	recipeService inbound.RecipeService
	dishService   inbound.DishService
	aiService     outbound.AIService
}

// NewServer creates a new API server instance
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	tokens *security.TokenService,
	metrics *monitoring.MetricsCollector,
	health *healthcheck.HealthCheck,
	authService inbound.AuthService,
	pantryService inbound.PantryService,
	recipeService inbound.RecipeService,
	dishService inbound.DishService,
	aiService outbound.AIService,
) *Server {
	s := &Server{
		config:        cfg,
		logger:        log.Named("apiserver"),
		tokens:        tokens,
		metrics:       metrics,
		health:        health,
		authService:   authService,
		pantryService: pantryService,
		recipeService: recipeService,
		dishService:   dishService,
		aiService:     aiService,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.allowedOrigin()))
	}
	r.Use(chimiddleware.Timeout(60 * time.Second))
	if s.config.Server.EnableCompression {
		r.Use(chimiddleware.Compress(5))
	}
	r.Use(middleware.JSONOnly())
	if s.config.Monitoring.EnableMetrics {
		r.Use(s.metrics.HTTPMiddleware())
	}

	r.Get(s.config.Monitoring.HealthCheckPath, s.health.Handler())
	r.Get(s.config.Monitoring.ReadinessPath, s.health.ReadinessHandler())
	r.Get("/live", s.health.LivenessHandler())
	if s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	r.Route("/api/v1", s.setupAPIV1Routes)

	// Raw completion pass-through kept at its historical path. The
	// provider key stays server-side; callers still need a valid token.
	aiH := handlers.NewAIHandlers(s.aiService, s.logger)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(s.tokens))
		r.Post("/api/openai", aiH.Proxy)
	})

	return r
}

func (s *Server) setupAPIV1Routes(r chi.Router) {
	authH := handlers.NewAuthHandlers(s.authService, s.logger)
	pantryH := handlers.NewPantryHandlers(s.pantryService, s.logger)
	recipeH := handlers.NewRecipeHandlers(s.recipeService, s.logger)
	dishH := handlers.NewDishHandlers(s.dishService, s.logger)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
		r.Post("/refresh", authH.Refresh)
		r.Post("/forgot-password", authH.ForgotPassword)
		r.Post("/reset-password", authH.ResetPassword)
	})

	r.Route("/ingredients", func(r chi.Router) {
		// Autocomplete and expiration lookup hit the static food
		// table only, so they stay public.
		r.Get("/suggestions", pantryH.Suggestions)
		r.Get("/expiration", pantryH.Expiration)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(s.tokens))
			r.Get("/", pantryH.List)
			r.Post("/", pantryH.Create)
			r.Patch("/{id}", pantryH.Update)
			r.Delete("/{id}", pantryH.Delete)
		})
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Use(middleware.Authenticate(s.tokens))
		r.Post("/generate", recipeH.Generate)
	})

	r.Route("/dishes", func(r chi.Router) {
		r.Use(middleware.Authenticate(s.tokens))
		r.Post("/complete", dishH.Complete)
		r.Route("/pending", func(r chi.Router) {
			r.Get("/", dishH.ListPending)
			r.Post("/", dishH.SavePending)
			r.Post("/{id}/finish", dishH.FinishPending)
			r.Delete("/{id}", dishH.DiscardPending)
		})
	})

	r.Route("/history", func(r chi.Router) {
		r.Use(middleware.Authenticate(s.tokens))
		r.Get("/", dishH.ListHistory)
		r.Post("/{id}/favorite", dishH.ToggleFavorite)
		r.Delete("/{id}", dishH.DeleteHistory)
	})
}

func (s *Server) allowedOrigin() string {
	if len(s.config.Server.AllowedOrigins) > 0 {
		return s.config.Server.AllowedOrigins[0]
	}
	return "*"
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting API server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.server.Shutdown(ctx)
}
