// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "iagallery_backend/internals/helpers"
	helperAuth "iagallery_backend/internals/helpers/auth"
)

type AuthController struct{}

func NewAuthController() *AuthController { return &AuthController{} }

// POST /api/auth/admin/login  {password}
//
// Exchanges the shared admin secret for a short-lived bearer token so the
// panel does not have to resend the password on every call.
func (ctrl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if !helperAuth.CheckAdminPassword(body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong password")
	}
	tok, err := helperAuth.IssueAdminToken()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Token issue failed")
	}
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token":      tok,
		"expires_in": int(helperAuth.AdminTokenTTL.Seconds()),
	})
}
