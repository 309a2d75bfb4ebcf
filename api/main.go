package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	_ "github.com/ifeoluwa-adewoyin/inventory-management/docs"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/auth"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/config"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/db"
	api "github.com/ifeoluwa-adewoyin/inventory-management/internal/http"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/http/handlers"
	rl "github.com/ifeoluwa-adewoyin/inventory-management/internal/http/rate_limiter"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/logging"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/notify"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/redissvc"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/repo"
)

// @title Inventory Management API
// @version 1.0
// @description REST API for managing inventory items, stock levels and low-stock alerts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	logger := logging.New(cfg.LogFormat)
	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("could not connect to Redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()
	handlers.SetAlertCooldown(redissvc.NewRedisService(rdb, ctx, cfg.AlertCooldown))

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	handlers.SetItemRepo(repo.NewPostgresItemRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	if cfg.Alert.Server != "" {
		handlers.SetNotifier(notify.NewGateway(notify.GatewayConfig{
			Server:       cfg.Alert.Server,
			Port:         cfg.Alert.Port,
			From:         cfg.Alert.From,
			To:           cfg.Alert.To,
			User:         cfg.Alert.User,
			Password:     cfg.Alert.Password,
			AuthDisabled: cfg.Alert.AuthDisabled,
		}, logger))
	} else {
		handlers.SetNotifier(notify.NewLogNotifier(logger))
	}

	r := api.NewRouter()
	logger.Info("server running", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
