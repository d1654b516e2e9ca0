package bootstrap

import (
	"context"
	"log"

	"child-screening-be/internal/config"
	"child-screening-be/internal/controller"
	"child-screening-be/internal/pkg/logger"
	"child-screening-be/internal/repository/contract"
	"child-screening-be/internal/repository/memory"
	"child-screening-be/internal/repository/redisstore"
	"child-screening-be/internal/repository/unitofwork"
	"child-screening-be/internal/service"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	AuthController      controller.IAuthController
	ScreeningController controller.IScreeningController
	ResultController    controller.IResultController

	Sessions contract.SessionRepository
	Logger   logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Session Store (selected by config)
	var sessions contract.SessionRepository
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.Session.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessions = redisstore.NewSessionRepository(rdb, cfg.Session.TTL)
		log.Println("[INFO] Using Session Store: REDIS")
	} else {
		sessions = memory.NewSessionRepository(cfg.Session.TTL)
		log.Println("[INFO] Using Session Store: MEMORY")
	}

	// 3. Services
	authService := service.NewAuthService(uowFactory, sysLogger)
	screeningService := service.NewScreeningService(uowFactory, sysLogger)
	resultService := service.NewResultService(uowFactory)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService, sessions),
		ScreeningController: controller.NewScreeningController(screeningService, sessions),
		ResultController:    controller.NewResultController(resultService, sessions),
		Sessions:            sessions,
		Logger:              sysLogger,
	}
}
