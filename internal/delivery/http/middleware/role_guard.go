package middleware

import (
	"github.com/gofiber/fiber/v3"

	"talent-match/internal/domain/user"
	"talent-match/internal/guard"
)

// RequireRoles applies the role-gated policy to an API group. It runs after
// the auth middleware, so an attached session user is guaranteed; a role
// violation answers 403 with the violator's own landing view, mirroring the
// client-side redirect.
func RequireRoles(roles ...user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		snap, ok := SessionUser(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", fiber.Map{"redirectTo": guard.LoginPath}, nil)
		}

		dec := guard.Evaluate(guard.PolicyRoleGated, guard.State{Authenticated: true, Role: snap.Role}, roles)
		if !dec.Allowed {
			return NewAppError(fiber.StatusForbidden, "Forbidden", fiber.Map{"redirectTo": dec.RedirectTo}, nil)
		}
		return c.Next()
	}
}
