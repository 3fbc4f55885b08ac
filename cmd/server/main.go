package main

import (
	"time"

	"opsboard/internal/config"
	"opsboard/internal/database"
	"opsboard/internal/handlers"
	"opsboard/internal/metrics"
	"opsboard/internal/migrations"
	"opsboard/internal/repository"
	"opsboard/internal/services"
	"opsboard/internal/session"
	"opsboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()
	log.Info("starting opsboard", zap.String("environment", cfg.Env))

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Migrate schema and seed the role accounts (idempotent)
	if err := migrations.Run(db, cfg.BcryptCost, log); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize session store
	sessions, err := session.NewRedisStore(cfg.RedisURL, time.Duration(cfg.SessionTimeout)*time.Second)
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ecomRepo := repository.NewEcommerceRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, cfg.BcryptCost)
	authService := services.NewAuthService(userRepo, sessions)
	taskService := services.NewTaskService(taskRepo)
	ledgerService := services.NewLedgerService(orderRepo, storeRepo, taskRepo, ecomRepo)

	// Initialize handlers
	handlerSet := &handlers.Set{
		Auth:      handlers.NewAuthHandler(authService),
		Task:      handlers.NewTaskHandler(taskService),
		Order:     handlers.NewOrderHandler(orderRepo, ledgerService),
		Store:     handlers.NewStoreHandler(storeRepo, ledgerService),
		Ecommerce: handlers.NewEcommerceHandler(ecomRepo, ledgerService),
		Dashboard: handlers.NewDashboardHandler(taskService, ledgerService, orderRepo, storeRepo),
		Forecast:  handlers.NewForecastHandler(ledgerService),
		User:      handlers.NewUserHandler(userService),
	}

	// Setup routes
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestID())
	router.Use(logger.Middleware(log))
	router.Use(metrics.Middleware())

	handlerSet.Register(router, authService)

	// Start server
	log.Info("server listening", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
