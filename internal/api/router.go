package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adminhub/user-management/internal/api/handler"
	"github.com/adminhub/user-management/internal/api/middleware"
	"github.com/adminhub/user-management/internal/core/domain"
	"github.com/adminhub/user-management/internal/core/ports"
)

// RouterConfig collects the dependencies the HTTP layer needs.
type RouterConfig struct {
	UserService ports.UserService
	AuthService ports.AuthService
	JWTSecret   string
	Mongo       *mongo.Database
	Redis       *redis.Client
	Logger      zerolog.Logger
}

// NewRouter builds the Echo instance with all routes and middleware wired.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("useradmin"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewHealthDependenciesHandler(cfg.Mongo, cfg.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)

	authHandler := handler.NewAuthHandler(cfg.AuthService)
	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	userHandler := handler.NewUserHandler(cfg.UserService)
	users := e.Group("/v1/users", middleware.Auth(cfg.JWTSecret))

	// Reads are open to any operator; mutations require admin.
	users.GET("", userHandler.List, middleware.RBAC(domain.OperatorAdmin, domain.OperatorViewer))
	users.GET("/stats", userHandler.Stats, middleware.RBAC(domain.OperatorAdmin, domain.OperatorViewer))
	users.GET("/:id", userHandler.Get, middleware.RBAC(domain.OperatorAdmin, domain.OperatorViewer))

	users.POST("", userHandler.Create, middleware.RBAC(domain.OperatorAdmin))
	users.PUT("/:id", userHandler.Update, middleware.RBAC(domain.OperatorAdmin))
	users.PATCH("/:id/status", userHandler.ToggleStatus, middleware.RBAC(domain.OperatorAdmin))
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.OperatorAdmin))

	return e
}
