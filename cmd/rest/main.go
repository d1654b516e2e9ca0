package main

import (
	"log"

	"child-screening-be/internal/bootstrap"
	"child-screening-be/internal/config"
	"child-screening-be/internal/model"
	"child-screening-be/internal/server"
	"child-screening-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ChildProfile{},
		&model.QuestionnaireResponse{},
		&model.ScreeningResult{},
	); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	color.Green("Child screening backend ready on port %s", cfg.App.Port)

	// 5. Run Server
	log.Fatal(srv.Run())
}
