package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Payloads up to 50 MB are accepted; image URLs are sometimes sent as
// data URIs by the frontend.
const bodyLimit = 50 * 1024 * 1024

// NewApp builds the fiber application with the shared error handler, so
// every failure path answers with the same {"error": msg} shape.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})
}
