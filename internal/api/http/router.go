package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ibrahimhozhun/food-ordering-app/internal/api/http/handlers"
	"github.com/ibrahimhozhun/food-ordering-app/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Restaurants    *handlers.RestaurantsHandler
	Orders         *handlers.OrdersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Literal segments such as /me must be
// registered before the :id catch-alls.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup/:role", cfg.Auth.Signup)
	authGroup.Post("/signin/:role", cfg.Auth.Signin)
	authGroup.Post("/signout", cfg.Auth.Signout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	restaurants := app.Group("/restaurants")
	restaurants.Get("/", cfg.Restaurants.List)
	restaurants.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireRestaurant(), cfg.Restaurants.Me)
	restaurants.Patch("/me", cfg.AuthMiddleware.Handle, auth.RequireRestaurant(), cfg.Restaurants.UpdateMe)
	restaurants.Post("/me/menu", cfg.AuthMiddleware.Handle, auth.RequireRestaurant(), cfg.Restaurants.AddMenuItem)
	restaurants.Get("/:id", cfg.Restaurants.Get)

	customers := app.Group("/customers")
	customers.Get("/", cfg.Customers.List)
	customers.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireCustomer(), cfg.Customers.Me)
	customers.Patch("/me/liked-restaurants", cfg.AuthMiddleware.Handle, auth.RequireCustomer(), cfg.Customers.ToggleLike)
	customers.Get("/:id", cfg.AuthMiddleware.Handle, auth.RequireRestaurant(), cfg.Customers.Get)

	orders := app.Group("/orders", cfg.AuthMiddleware.Handle)
	orders.Post("/new-order", auth.RequireCustomer(), cfg.Orders.Create)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Patch("/:id/status", auth.RequireRestaurant(), cfg.Orders.UpdateStatus)
}
