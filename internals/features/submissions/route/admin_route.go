// file: internals/features/submissions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	subcontroller "iagallery_backend/internals/features/submissions/controller"
	moderation "iagallery_backend/internals/features/submissions/moderation"
)

// Middleware alias to keep signatures short.
type Middleware = fiber.Handler

// RegisterSubmissionAdminRoutes
// Base: /api/a/submissions
func RegisterSubmissionAdminRoutes(admin fiber.Router, dashboard *moderation.Dashboard, middlewares ...Middleware) {
	ctrl := subcontroller.NewAdminSubmissionController(dashboard)

	g := admin.Group("/submissions", middlewares...)
	g.Get("/", ctrl.List) // ?status=pending|approved|rejected
	g.Post("/approve", ctrl.Approve)
	g.Post("/reject", ctrl.Reject)
	g.Post("/move-to-pending", ctrl.MoveToPending)
	g.Post("/delete", ctrl.PermanentDelete)
	g.Post("/update", ctrl.Update)
	g.Post("/delete-image", ctrl.DeleteImage)
	g.Post("/move-image", ctrl.MoveImage)
}
