package features

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "schoolku_backend/internals/helpers/auth"
)

// RequireRoles menolak request bila role di token tidak termasuk daftar
// yang diizinkan. Dipasang SETELAH AuthJWT.
func RequireRoles(errMessage string, allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, err := helperAuth.GetRoleFromToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, errMessage)
		}
		return c.Next()
	}
}
