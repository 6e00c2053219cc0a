// file: internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	authcontroller "iagallery_backend/internals/features/auth/controller"
	middlewares "iagallery_backend/internals/middlewares"
)

// RegisterAuthRoutes
// Base: /api/auth
func RegisterAuthRoutes(api fiber.Router) {
	ctrl := authcontroller.NewAuthController()

	g := api.Group("/auth")
	g.Post("/admin/login", middlewares.LoginRateLimiter(), ctrl.AdminLogin)
}
