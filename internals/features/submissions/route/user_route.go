// file: internals/features/submissions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subcontroller "iagallery_backend/internals/features/submissions/controller"
	helperOSS "iagallery_backend/internals/helpers/oss"
	middlewares "iagallery_backend/internals/middlewares"
)

// RegisterSubmissionPublicRoutes
// Base: /api/public
func RegisterSubmissionPublicRoutes(public fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := subcontroller.NewPublicSubmissionController(db, blob)

	public.Get("/gallery", ctrl.Gallery)
	public.Get("/gallery/:id", ctrl.GalleryItem)
	public.Post("/submissions", middlewares.IntakeRateLimiter(), ctrl.Create)
}
