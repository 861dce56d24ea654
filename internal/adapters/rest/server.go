package rest

import (
	"context"
	"fmt"
	"net/http"

	"shortlet-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig, catalog *CatalogHandler, properties *PropertyHandler, hero *HeroStreamHandler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: NewRouter(cfg.AllowedOrigins, catalog, properties, hero, baseLogger),
		},
		logger: baseLogger.WithFields(port.Fields{"component": "rest_server"}),
	}
}

// NewRouter собирает маршруты /api/v1. Вынесен отдельно, чтобы тесты ходили в роутер через httptest.
func NewRouter(allowedOrigins []string, catalog *CatalogHandler, properties *PropertyHandler, hero *HeroStreamHandler, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", catalog.GetHome)
		r.Get("/contact", catalog.GetContact)
		r.Get("/filters/options", catalog.GetFilterOptions)
		r.Get("/hero/stream", hero.StreamSlides)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", properties.FindProperties)
			r.Get("/{slug}", properties.GetPropertyDetails)
			r.Get("/{slug}/quote", properties.QuoteBooking)
			r.Post("/{slug}/booking-link", properties.BuildBookingLink)
		})
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
