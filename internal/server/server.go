package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kamingo-landing/internal/auth"
	"kamingo-landing/internal/config"
	"kamingo-landing/internal/middlewares"
	"kamingo-landing/internal/models"
	"kamingo-landing/internal/storage"
	"kamingo-landing/internal/token"
	"kamingo-landing/internal/web"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	blocklist   *models.Blocklist
	httpServer  *http.Server
	debugServer *http.Server
	database    *storage.DatabaseProvider
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	var oauthProvider middlewares.OAuthProvider
	if cfg.OAuthEnabled() {
		oauthProvider, err = auth.NewGoogleOAuthProvider(ctx, cfg.OAuth)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to initialize oauth provider: %w", err)
		}
	} else {
		logger.Info("oauth client is not configured, only form login is available")
	}

	var database *storage.DatabaseProvider
	var store storage.Provider
	if cfg.Storage != nil && cfg.Storage.Enabled {
		database, err = storage.NewDatabaseProvider(ctx, cfg)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to initialize database provider: %w", err)
		}

		logger.Debug("running database migrations")
		if err := database.RunMigrations(ctx); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}

		store = database
	} else {
		logger.Info("user storage is disabled, logins will not be recorded")
	}

	var issuer *token.Issuer
	if cfg.Handoff.Secret != "" {
		issuer, err = token.NewIssuer(cfg.Handoff)
		if err != nil {
			cancel()
			return nil, err
		}
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		cancel()
		return nil, err
	}

	blocklist, err := models.NewBlocklist(cfg.Blocklist.Addresses)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to build blocklist: %w", err)
	}

	if blocklist.Len() > 0 {
		logger.Info("ip blocklist active", "entries", blocklist.Len())
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionManager, oauthProvider, store, issuer, renderer)

	router := setupRouter(appCtx, blocklist)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		blocklist:   blocklist,
		httpServer:  server,
		debugServer: debugServer,
		database:    database,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	go func() {
		s.logger.Info("server started", "port", s.cfg.Server.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("shutting down server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("debug server forced to shutdown", "error", err)
		}
	}

	if s.database != nil {
		s.database.Close()
	}

	s.logger.Info("server exited")
	return nil
}
