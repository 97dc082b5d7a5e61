package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ankush321-collab/data-dashboard/internal/api/http/handlers"
	"github.com/Ankush321-collab/data-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Profile   *handlers.ProfileHandler
	Data      *handlers.DataHandler
	Analytics *handlers.AnalyticsHandler
	Guard     *auth.RequestGuard
}

// RegisterRoutes wires HTTP routes. Everything under /api except signup
// and login sits behind the request guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/signup", cfg.Auth.Signup)
	api.Post("/auth/login", cfg.Auth.Login)

	protected := api.Group("", cfg.Guard.Handle)
	protected.Post("/auth/logout", cfg.Auth.Logout)

	protected.Get("/user/me", cfg.Profile.Me)
	protected.Put("/user", cfg.Profile.Update)
	protected.Patch("/user/password", cfg.Auth.ChangePassword)

	protected.Get("/data", cfg.Data.List)
	protected.Post("/data", cfg.Data.Create)
	protected.Delete("/data", cfg.Data.Delete)

	protected.Get("/analytics", cfg.Analytics.Recent)
	protected.Post("/analytics", cfg.Analytics.Record)
}
