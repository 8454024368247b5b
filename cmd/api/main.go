package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coursify/coursify-backend/api/routes"
	"github.com/coursify/coursify-backend/internal/auth"
	"github.com/coursify/coursify-backend/internal/cache"
	"github.com/coursify/coursify-backend/internal/config"
	"github.com/coursify/coursify-backend/internal/handlers"
	"github.com/coursify/coursify-backend/internal/observability"
	"github.com/coursify/coursify-backend/internal/repositories"
	mongorepo "github.com/coursify/coursify-backend/internal/repositories/mongodb"
	"github.com/coursify/coursify-backend/internal/services"
	"github.com/coursify/coursify-backend/internal/validation"
	"github.com/coursify/coursify-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	if cfg.JWT.UserSecret == "" || cfg.JWT.AdminSecret == "" {
		log.Error("JWT_USER_SECRET and JWT_ADMIN_SECRET must both be set")
		os.Exit(1)
	}
	if cfg.JWT.UserSecret == cfg.JWT.AdminSecret {
		log.Error("JWT_USER_SECRET and JWT_ADMIN_SECRET must be distinct")
		os.Exit(1)
	}

	if err := validation.Register(); err != nil {
		log.Error("failed to register validators", "error", err)
		os.Exit(1)
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Uniqueness lives in the database: email per account collection and one
	// purchase per (user, course) pair.
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelIndex()
	if err := mongorepo.EnsureIndexes(indexCtx, db); err != nil {
		log.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	// Repositories
	var adminRepo repositories.AccountRepository = mongorepo.NewAdminRepository(db)
	var userRepo repositories.AccountRepository = mongorepo.NewUserRepository(db)
	var courseRepo repositories.CourseRepository = mongorepo.NewCourseRepository(db)
	var purchaseRepo repositories.PurchaseRepository = mongorepo.NewPurchaseRepository(db)

	// Token managers, one per role scope
	tokenTTL := time.Duration(cfg.JWT.ExpiresIn) * time.Second
	userTokens := auth.NewTokenManager(cfg.JWT.UserSecret, auth.RoleUser, tokenTTL)
	adminTokens := auth.NewTokenManager(cfg.JWT.AdminSecret, auth.RoleAdmin, tokenTTL)

	// Preview cache: Redis when configured, in-process otherwise
	previewTTL := time.Duration(cfg.Cache.PreviewTTLSeconds) * time.Second
	var previewCache cache.Store
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, previewTTL)
		if err != nil {
			log.Error("failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		previewCache = redisCache
		log.Info("preview cache backed by Redis", "addr", cfg.Redis.Addr)
	} else {
		previewCache = cache.NewMemory(previewTTL)
	}

	// Services
	userAuthService := services.NewAuthService(userRepo, userTokens)
	adminAuthService := services.NewAuthService(adminRepo, adminTokens)
	courseService := services.NewCourseService(courseRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo, courseRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		UserAuth:    handlers.NewAuthHandler(userAuthService),
		AdminAuth:   handlers.NewAuthHandler(adminAuthService),
		Courses:     handlers.NewCourseHandler(courseService, previewCache, log),
		Purchases:   handlers.NewPurchaseHandler(purchaseService),
		UserTokens:  userTokens,
		AdminTokens: adminTokens,
	}

	registry := prometheus.NewRegistry()
	prom := observability.NewProm(registry)

	router := routes.SetupRouter(cfg, log, prom, deps, registry)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server exiting")
}
