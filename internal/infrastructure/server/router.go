package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/eventlyhq/evently-backend/internal/adapter/handler"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	authHandler    *handler.AuthHandler
	eventHandler   *handler.EventHandler
	authMiddleware *middleware.AuthMiddleware
	logger         *zap.Logger
}

type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	EventHandler   *handler.EventHandler
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		authHandler:    cfg.AuthHandler,
		eventHandler:   cfg.EventHandler,
		authMiddleware: cfg.AuthMiddleware,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		events := api.Group("/events")
		{
			// Listing is public; mutations require a valid bearer token.
			events.GET("", r.eventHandler.List)
			events.POST("", r.authMiddleware.RequireAuth(), r.eventHandler.Create)
			events.PUT("/:id", r.authMiddleware.RequireAuth(), r.eventHandler.Update)
			events.DELETE("/:id", r.authMiddleware.RequireAuth(), r.eventHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
