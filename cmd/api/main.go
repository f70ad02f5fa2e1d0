package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "github.com/eventlyhq/evently-backend/docs"
	"github.com/eventlyhq/evently-backend/internal/adapter/handler"
	"github.com/eventlyhq/evently-backend/internal/adapter/repository/postgres"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/auth"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/config"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/database"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/middleware"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/observability"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/server"
	authUC "github.com/eventlyhq/evently-backend/internal/usecase/auth"
	"github.com/eventlyhq/evently-backend/internal/usecase/event"
)

//	@title						Evently API
//	@version					1.0
//	@description				Event management backend with JWT authentication
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(pool)
	eventRepo := postgres.NewEventRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)

	// Use cases
	authSvc := authUC.NewService(userRepo, jwtSvc, passwordHasher)
	eventSvc := event.NewService(eventRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	eventHandler := handler.NewEventHandler(eventSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		EventHandler:   eventHandler,
		AuthMiddleware: authMiddleware,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
