package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"notification-service/internal/config"
	"notification-service/internal/handler"
	"notification-service/internal/middleware"
	"notification-service/internal/repository"
	"notification-service/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := repository.NewStore(db)
	services := service.NewServices(store, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	announcements := app.Group("/announcements")
	announcements.Get("/", h.Announcement.List)
	announcements.Post("/", h.Announcement.Create)
	announcements.Get("/:id", h.Announcement.Get)
	announcements.Patch("/:id", h.Announcement.Update)
	announcements.Delete("/:id", h.Announcement.Delete)
	announcements.Post("/:id/unsubscribe", h.Announcement.Unsubscribe)

	notifications := app.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/user", h.Notification.ListUser)
	notifications.Post("/", h.Notification.Create)

	email := app.Group("/email")
	email.Post("/", h.Email.Send)
}
