package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Prajnahr-rao/green-volt-app/internal/locations"
	"github.com/Prajnahr-rao/green-volt-app/internal/products"
	"github.com/Prajnahr-rao/green-volt-app/internal/services"
	"github.com/Prajnahr-rao/green-volt-app/internal/users"
)

type Router struct {
	UserHandler     *users.Handler
	ProductHandler  *products.Handler
	ServiceHandler  *services.Handler
	LocationHandler *locations.Handler
	AuthRateLimit   fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthRateLimit != nil {
		app.Post("/register", r.AuthRateLimit, r.UserHandler.Register)
		app.Post("/login", r.AuthRateLimit, r.UserHandler.Login)
	} else {
		app.Post("/register", r.UserHandler.Register)
		app.Post("/login", r.UserHandler.Login)
	}

	app.Get("/users", r.UserHandler.List)
	app.Put("/users/:id", r.UserHandler.Update)
	app.Delete("/users/:id", r.UserHandler.Delete)

	app.Get("/products", r.ProductHandler.List)
	app.Post("/products", r.ProductHandler.Create)
	app.Put("/products/:id", r.ProductHandler.Update)
	app.Delete("/products/:id", r.ProductHandler.Delete)

	app.Get("/services", r.ServiceHandler.List)
	app.Post("/services", r.ServiceHandler.Create)
	app.Put("/services/:id", r.ServiceHandler.Update)
	app.Delete("/services/:id", r.ServiceHandler.Delete)

	app.Get("/locations", r.LocationHandler.List)
	app.Post("/locations", r.LocationHandler.Create)
	app.Put("/locations/:id", r.LocationHandler.Update)
	app.Delete("/locations/:id", r.LocationHandler.Delete)
}
