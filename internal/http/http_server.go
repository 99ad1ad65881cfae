package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/services/achievement"
	"gitlab.com/snapscape.net/internal/core/services/lifecycle"
	"gitlab.com/snapscape.net/internal/handlers"
	"gitlab.com/snapscape.net/internal/handlers/achievements"
	"gitlab.com/snapscape.net/internal/handlers/competitions"
)

type ServiceProvider struct {
	achievementService achievement.IAchievementService
	lifecycleService   lifecycle.ILifecycleService
	jwtService         primary.JWTService
	cronSecretHash     string
}

func NewServiceProvider(
	achievementService achievement.IAchievementService,
	lifecycleService lifecycle.ILifecycleService,
	jwtService primary.JWTService,
	cronSecretHash string,
) *ServiceProvider {
	return &ServiceProvider{
		achievementService: achievementService,
		lifecycleService:   lifecycleService,
		jwtService:         jwtService,
		cronSecretHash:     cronSecretHash,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	if s.ServiceProvider.achievementService == nil || s.ServiceProvider.lifecycleService == nil {
		return fmt.Errorf("%s: services not configured", s.ServiceName)
	}

	r := mux.NewRouter()
	mw := handlers.New(s.ServiceProvider.jwtService, s.ServiceProvider.cronSecretHash, s.logger)

	r.HandleFunc("/healthz", handlers.Healthz).Methods("GET")
	competitions.
		NewCompetitionHandler(s.ServiceProvider.achievementService, s.ServiceProvider.lifecycleService, s.logger).
		RegisterRoutes(r, mw)
	achievements.
		NewAchievementHandler(s.ServiceProvider.achievementService, s.logger).
		RegisterRoutes(r, mw)

	s.router = r
	return nil
}

// Handler exposes the router once Init has run
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "service", s.ServiceName, "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
