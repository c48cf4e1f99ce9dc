// Package apiserver provides the JSON API HTTP server and its route table
package apiserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hearthhq/hearth/internal/infrastructure/config"
	"github.com/hearthhq/hearth/internal/infrastructure/http/handlers"
	"github.com/hearthhq/hearth/internal/infrastructure/http/middleware"
	"github.com/hearthhq/hearth/internal/infrastructure/monitoring"
	"github.com/hearthhq/hearth/pkg/healthcheck"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Handlers groups the handler sets mounted under /api/v1
type Handlers struct {
	Recipes   *handlers.RecipeHandlers
	MealPlans *handlers.MealPlanHandlers
	Household *handlers.HouseholdHandlers
	Dashboard *handlers.DashboardHandlers
}

// APIServer represents the JSON API HTTP server
type APIServer struct {
	config      *config.Config
	logger      *zap.Logger
	server      *http.Server
	router      *chi.Mux
	handlers    Handlers
	metrics     *monitoring.MetricsCollector
	healthCheck *healthcheck.HealthCheck
	rateLimiter *middleware.RateLimiter
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	h Handlers,
	metrics *monitoring.MetricsCollector,
	healthCheck *healthcheck.HealthCheck,
) *APIServer {
	s := &APIServer{
		config:      cfg,
		logger:      log.Named("api-server"),
		handlers:    h,
		metrics:     metrics,
		healthCheck: healthCheck,
	}
	if cfg.RateLimit.Enable {
		s.rateLimiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstSize,
			cfg.RateLimit.CleanupInterval,
			log,
		)
	}

	s.router = s.setupRoutes()

	var handler http.Handler = s.router
	if cfg.Monitoring.EnableTracing {
		handler = otelhttp.NewHandler(handler, cfg.App.Name)
	}

	s.server = &http.Server{
		Addr:           cfg.Address(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRoutes configures the route table
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	if s.config.Monitoring.EnableMetrics {
		r.Use(s.metrics.HTTPMiddleware)
	}

	healthPath := s.config.Monitoring.HealthCheckPath
	r.Get(healthPath, s.healthCheck.Handler())
	r.Get(healthPath+"/live", s.healthCheck.LivenessHandler())
	r.Get(healthPath+"/ready", s.healthCheck.ReadinessHandler())
	if s.config.Monitoring.EnableMetrics {
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		if s.rateLimiter != nil {
			r.Use(s.rateLimiter.Middleware)
		}
		r.Use(chimiddleware.Timeout(30 * time.Second))
		r.Use(middleware.JSONOnly())
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	recipes := s.handlers.Recipes
	meals := s.handlers.MealPlans
	home := s.handlers.Household

	r.Get("/dashboard", s.handlers.Dashboard.Summary)

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipes.ListRecipes)
		r.Post("/", recipes.CreateRecipe)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", recipes.GetRecipe)
			r.Put("/", recipes.UpdateRecipe)
			r.Delete("/", recipes.DeleteRecipe)
			r.Put("/tags", recipes.UpdateTags)
			r.Get("/scaled", recipes.ScaledRecipe)
			r.Post("/meal-plan", recipes.AddToMealPlan)
			r.Post("/shopping-list", recipes.AddToShoppingList)
		})
	})
	r.Get("/tags", recipes.Tags)
	r.Post("/scale", recipes.Scale)

	r.Route("/mealplans", func(r chi.Router) {
		r.Get("/", meals.Entries)
		r.Get("/week", meals.Week)
		r.Get("/dates/{date}", meals.ForDate)
		r.Post("/drop", meals.Drop)
		r.Route("/slots/{key}", func(r chi.Router) {
			r.Get("/", meals.GetSlot)
			r.Put("/", meals.Assign)
			r.Delete("/", meals.Remove)
		})
	})

	r.Route("/shopping", func(r chi.Router) {
		r.Get("/", home.ListShopping)
		r.Post("/", home.AddShoppingItem)
		r.Patch("/{id}", home.ToggleShoppingItem)
		r.Delete("/{id}", home.DeleteShoppingItem)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", home.ListTasks)
		r.Post("/", home.AddTask)
		r.Patch("/{id}", home.ToggleTask)
		r.Delete("/{id}", home.DeleteTask)
	})

	r.Route("/calendar", func(r chi.Router) {
		r.Get("/events", home.ListEvents)
		r.Post("/events", home.AddEvent)
		r.Delete("/events/{id}", home.DeleteEvent)
		r.Get("/months/{year}/{month}", home.Month)
	})

	r.Route("/members", func(r chi.Router) {
		r.Get("/", home.ListMembers)
		r.Post("/", home.AddMember)
		r.Delete("/{id}", home.DeleteMember)
	})

	r.Get("/health/{metric}", home.HealthSeries)
}

// Handler returns the server's root handler
func (s *APIServer) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting API server", zap.String("address", s.server.Addr))
	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	return s.server.Shutdown(ctx)
}
