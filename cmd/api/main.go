package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Prajnahr-rao/green-volt-app/internal/config"
	"github.com/Prajnahr-rao/green-volt-app/internal/database"
	"github.com/Prajnahr-rao/green-volt-app/internal/locations"
	"github.com/Prajnahr-rao/green-volt-app/internal/products"
	"github.com/Prajnahr-rao/green-volt-app/internal/router"
	"github.com/Prajnahr-rao/green-volt-app/internal/services"
	"github.com/Prajnahr-rao/green-volt-app/internal/users"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to SQLite database")

	// The default is a destructive reset: all previously stored data is
	// wiped on every start. Set DB_RESET_ON_START=false to keep data
	// across restarts.
	if cfg.ResetOnStart {
		database.Reset(db)
	} else {
		database.Ensure(db)
	}

	app := router.NewApp()
	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API Working")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	r := &router.Router{
		UserHandler:     users.NewHandler(users.NewRepository(db)),
		ProductHandler:  products.NewHandler(products.NewRepository(db)),
		ServiceHandler:  services.NewHandler(services.NewRepository(db)),
		LocationHandler: locations.NewHandler(locations.NewRepository(db)),
		AuthRateLimit:   router.RateLimitAuth(cfg.AuthRateMax, cfg.AuthRateWindow),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("X-Request-Id", reqID)
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %s %d %s", reqID, c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
