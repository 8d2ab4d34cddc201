package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskdesk/ticket-api/internal/api/http/handlers"
	"github.com/taskdesk/ticket-api/internal/auth"
	"github.com/taskdesk/ticket-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. List and get operations require any
// authenticated caller; mutations require the ADMIN role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("", cfg.AuthMiddleware.Handle)

	adminOnly := auth.RequireRoles(domain.RoleAdmin)
	anyRole := auth.RequireAuthenticated()

	tickets := api.Group("/tickets")
	tickets.Get("", anyRole, cfg.Tickets.List)
	tickets.Get("/:id", anyRole, cfg.Tickets.Get)
	tickets.Post("", adminOnly, cfg.Tickets.Create)
	tickets.Put("/:id", adminOnly, cfg.Tickets.Update)
	tickets.Put("/:id/assign/:userId", adminOnly, cfg.Tickets.Assign)
	tickets.Delete("/:id", adminOnly, cfg.Tickets.Delete)

	users := api.Group("/users")
	users.Get("", anyRole, cfg.Users.List)
	users.Get("/:id/tickets", anyRole, cfg.Users.ListTickets)
	users.Post("", adminOnly, cfg.Users.Create)
	users.Put("/:id", adminOnly, cfg.Users.Update)
}
