// file: internals/middlewares/auth/admin_auth.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "iagallery_backend/internals/helpers"
	helperAuth "iagallery_backend/internals/helpers/auth"
)

// AdminOnly guards the /api/a group. Two credentials are accepted:
//   - Authorization: Bearer <admin JWT> (issued by the login route), or
//   - the legacy per-request "password" field the admin panel still sends
//     in every mutating JSON body.
//
// The credential is threaded per request; nothing ambient is trusted.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if h := c.Get(fiber.HeaderAuthorization); h != "" {
			raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if helperAuth.ParseAdminToken(raw) {
				return c.Next()
			}
		}

		if c.Method() == fiber.MethodPost || c.Method() == fiber.MethodPatch || c.Method() == fiber.MethodDelete {
			var body struct {
				Password string `json:"password"`
			}
			// Body is buffered by fiber; controllers can re-parse it.
			if err := c.BodyParser(&body); err == nil && helperAuth.CheckAdminPassword(body.Password) {
				return c.Next()
			}
		}

		return helper.JsonError(c, fiber.StatusUnauthorized, "Admin credential missing or invalid")
	}
}
