package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/barbershop/scheduler/internal/cache"
	"github.com/barbershop/scheduler/internal/config"
	dbpkg "github.com/barbershop/scheduler/internal/db"
	"github.com/barbershop/scheduler/internal/logger"
	"github.com/barbershop/scheduler/internal/middleware"
	"github.com/barbershop/scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	redisClient := cache.NewRedisClient(cfg.RedisAddr)
	if err := redisClient.Ping(context.Background()); err != nil {
		log.Warn("redis unavailable, reports will skip cache", zap.Error(err))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisClient, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
