// Package server собирает HTTP API ростера: роутер chi, middleware и handlers.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/roster/internal/server/handlers"
	"github.com/iudanet/roster/internal/server/middleware"
	"github.com/iudanet/roster/internal/server/storage"
	"github.com/iudanet/roster/pkg/api"
)

// Options параметры роутера
type Options struct {
	// DB проверяется в /health, может быть nil
	DB      handlers.Pinger
	Version string
	// WriteRate лимит изменяющих запросов с одного адреса за WriteWindow, 0 отключает лимит
	WriteRate   int
	WriteWindow time.Duration
	// TrustProxy берет адрес клиента из X-Forwarded-For и X-Real-IP.
	// Включать только за прокси, который сам выставляет эти заголовки.
	TrustProxy bool
}

// NewRouter создает роутер API.
// ctx ограничивает время жизни фоновых задач middleware.
func NewRouter(ctx context.Context, logger *slog.Logger, store storage.CharacterStorage, opts Options) http.Handler {
	health := handlers.NewHealthHandler(logger, opts.DB, opts.Version)
	characters := handlers.NewCharacterHandler(logger, store)

	r := chi.NewRouter()
	if opts.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingWithSkip(logger, []string{"/health"}))
	if opts.WriteRate > 0 {
		limiter := middleware.NewRateLimiter(ctx, opts.WriteRate, opts.WriteWindow, logger)
		r.Use(middleware.WriteRateLimit(limiter))
	}

	r.NotFound(handlers.NotFound(logger))
	r.MethodNotAllowed(handlers.MethodNotAllowed(logger))

	r.Get("/health", health.Health)

	r.Route(api.CharactersPath, func(r chi.Router) {
		r.Get("/", characters.List)
		r.Post("/", characters.Create)
		r.Get("/{id}", characters.Get)
		r.Put("/{id}", characters.Update)
		r.Delete("/{id}", characters.Delete)
	})

	return r
}

// Server HTTP сервер с graceful shutdown
type Server struct {
	httpServer      *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New создает сервер на addr
func New(addr string, handler http.Handler, shutdownTimeout time.Duration, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// ListenAndServe обслуживает запросы до отмены ctx, затем дожидается активных запросов
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	s.logger.Info("Server listening", "addr", s.httpServer.Addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server", "timeout", s.shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
