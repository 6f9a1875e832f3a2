package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows cross-origin requests with credentials. When
// origin is empty every origin is reflected back; credentialed requests
// forbid a literal "*", so reflection goes through AllowOriginsFunc.
func CorsMiddleware(origin string) fiber.Handler {
	cfg := cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}
	if origin == "" || origin == "*" {
		cfg.AllowOriginsFunc = func(origin string) bool { return true }
	} else {
		cfg.AllowOrigins = origin
	}
	return cors.New(cfg)
}
