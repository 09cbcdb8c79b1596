package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/adminhub/user-management/docs" // swagger docs

	"github.com/adminhub/user-management/internal/api"
	"github.com/adminhub/user-management/internal/core/service"
	"github.com/adminhub/user-management/internal/infrastructure/config"
	mongodb "github.com/adminhub/user-management/internal/infrastructure/db/mongo"
	redisdb "github.com/adminhub/user-management/internal/infrastructure/db/redis"
	"github.com/adminhub/user-management/internal/infrastructure/queue"
	"github.com/adminhub/user-management/pkg/logger"
)

// @title User Management API
// @version 1.0
// @description Administrative user management API with duplicate-name validation, aggregate stats, and confirmation-gated deletes.
// @host localhost:8080
// @BasePath /v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	accountRepo := mongodb.NewAccountRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account indexes failed")
	}

	notifier := redisdb.NewNotifier(rdb, cfg.NotifyChannel, log)
	dedup := redisdb.NewDedupChecker(rdb)

	auditService := service.NewAuditService(auditRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	userService := service.NewUserService(userRepo, notifier, dispatcher, log, service.Options{
		OptimisticToggle: cfg.OptimisticToggle,
	})
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, 24*time.Hour)

	// Prime the in-memory collection. Not fatal: the service reloads on
	// first read if this fails.
	primeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := userService.Reload(primeCtx); err != nil {
		log.Warn().Err(err).Msg("initial collection load failed")
	}
	cancel()

	e := api.NewRouter(api.RouterConfig{
		UserService: userService,
		AuthService: authService,
		JWTSecret:   cfg.JWTSecret,
		Mongo:       db,
		Redis:       rdb,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
