// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authroute "iagallery_backend/internals/features/auth/route"
	model "iagallery_backend/internals/features/submissions/model"
	moderation "iagallery_backend/internals/features/submissions/moderation"
	subroute "iagallery_backend/internals/features/submissions/route"
	subservice "iagallery_backend/internals/features/submissions/service"
	helperOSS "iagallery_backend/internals/helpers/oss"
	authMiddleware "iagallery_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up blob service...")
	blob, err := helperOSS.NewOSSBlobServiceFromEnv("submissions")
	if err != nil {
		log.Fatalf("❌ OSS init failed: %v", err)
	}

	store := subservice.NewSubmissionStore(db, blob)

	// Transitions reaching this process were already confirmed by the
	// operator in the panel's dialog; log each one for the audit trail.
	dashboard := moderation.NewDashboard(store, func(action moderation.Action, s *model.SubmissionModel) bool {
		log.Printf("[MODERATION] confirmed action=%s id=%s title=%q", action, s.SubmissionID, s.SubmissionTitle)
		return true
	})

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	api := app.Group("/api")
	authroute.RegisterAuthRoutes(api)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	subroute.RegisterSubmissionPublicRoutes(public, db, blob)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (credential required)...")
	admin := app.Group("/api/a", authMiddleware.AdminOnly())
	subroute.RegisterSubmissionAdminRoutes(admin, dashboard)
}
