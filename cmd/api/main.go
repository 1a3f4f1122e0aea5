package main

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	_ "go.uber.org/automaxprocs"

	"barberhub/internal/auth"
	"barberhub/internal/config"
	"barberhub/internal/db"
	"barberhub/internal/domain/payment"
	"barberhub/internal/infra/payments"
	"barberhub/internal/logger"
	"barberhub/internal/middleware"
	"barberhub/internal/routes"
	"barberhub/internal/storage"
)

func main() {
	cfg := config.Load()

	log, sync := logger.New(cfg.LogLevel, cfg.LogJSON, cfg.LogFile)
	defer sync()

	database := db.NewDB(cfg)
	if err := db.Migrate(database); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	var revoker *auth.Revoker
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		revoker = auth.NewRevoker(rdb)
		log.Info("token revocation enabled", zap.String("redis", cfg.RedisAddr))
	} else {
		log.Warn("REDIS_ADDR not set, logout will not revoke tokens")
	}

	var store storage.ObjectStorage
	if cfg.S3AccessKey != "" {
		store = storage.NewS3(cfg)
	} else {
		log.Warn("S3 credentials not set, image uploads disabled")
	}

	var provider payment.Provider
	if cfg.StripeSecretKey != "" {
		provider = payments.NewStripeProvider(cfg.StripeSecretKey)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, payment intents disabled")
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, routes.Deps{
		DB:       database,
		Config:   cfg,
		Log:      log,
		Revoker:  revoker,
		Storage:  store,
		Payments: provider,
	})

	log.Info("server listening", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
