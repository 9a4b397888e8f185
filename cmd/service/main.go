// File: cmd/service/main.go
// @title        Library API
// @version      1.0
// @description  圖書館後台管理 API：館員認證、館藏與讀者管理、借還書追蹤
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"library-api/internal/cache"
	"library-api/internal/database"
	"library-api/internal/router"
	"library-api/internal/service"
	"library-api/internal/snapshot"
	"library-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "library-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func ttlFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return time.Duration(minutes) * time.Minute, nil
}

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	// 令牌設定啟動時讀取一次，之後以不可變設定傳遞
	accessTTL, err := ttlFromEnv("JWT_ACCESS_TTL_MINUTES", 30*time.Minute)
	if err != nil {
		return err
	}
	refreshTTL, err := ttlFromEnv("JWT_REFRESH_TTL_MINUTES", 7*24*time.Hour)
	if err != nil {
		return err
	}
	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret:     os.Getenv("JWT_SECRET"),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	})
	if err != nil {
		return fmt.Errorf("Token 設定無效: %v", err)
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	snaps := snapshot.NewStore(redis, wp)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, tokens, snaps)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":8080")
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
