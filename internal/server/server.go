package server

import (
	"log"
	"path/filepath"

	"child-screening-be/internal/bootstrap"
	"child-screening-be/internal/config"
	"child-screening-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, forms only
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
	}))

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Static form pages
	app.Static("/", cfg.App.PublicDir)

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	c.AuthController.RegisterRoutes(app)
	c.ScreeningController.RegisterRoutes(app)
	c.ResultController.RegisterRoutes(app)

	// Acknowledgement page for the no-symptoms early exit.
	app.Get("/thankyou", func(ctx *fiber.Ctx) error {
		return ctx.SendFile(filepath.Join(cfg.App.PublicDir, "thankyou.html"))
	})
}
