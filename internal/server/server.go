// Package server assembles the central ledger HTTP service: routing,
// middleware chain and lifecycle.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pinkpay/offlinepay/internal/server/config"
	"github.com/pinkpay/offlinepay/internal/server/handlers"
	"github.com/pinkpay/offlinepay/internal/server/middleware"
	"github.com/pinkpay/offlinepay/internal/server/storage"
)

// Server wraps the net/http server and its shared dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New wires handlers, middleware and storage into a ready-to-run server.
func New(cfg config.Config, store storage.Storage, logger *slog.Logger) *Server {
	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig, cfg.InitialBalance, cfg.Currency)
	tokensHandler := handlers.NewTokensHandler(logger, store, store)
	settlementHandler := handlers.NewSettlementHandler(logger, store, store)
	healthHandler := handlers.NewHealthHandler(logger)

	authRequired := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler.Health)
	mux.HandleFunc("/api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("/api/v1/auth/login", authHandler.Login)
	mux.Handle("/api/v1/tokens/issue", authRequired(http.HandlerFunc(tokensHandler.HandleIssue)))
	mux.Handle("/api/v1/tokens/verify", authRequired(http.HandlerFunc(tokensHandler.HandleVerify)))
	mux.Handle("/api/v1/settlement/settle", authRequired(http.HandlerFunc(settlementHandler.HandleSettle)))
	mux.Handle("/api/v1/settlement/received", authRequired(http.HandlerFunc(settlementHandler.HandleReceived)))

	// Outermost first: recovery catches everything, then logging, then
	// rate limiting. The health probe stays out of the log.
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(cfg.RateLimit, cfg.RateWindow, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/healthz"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
		logger: logger,
	}
}

// Listen starts serving until Shutdown is called.
func (s *Server) Listen() error {
	s.logger.Info("ledger server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
