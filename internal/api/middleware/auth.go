package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"cadastromunicipal.com/internal/domain"
	"cadastromunicipal.com/internal/model"
)

// Locals keys set by ResolveSession and read by the Require* gates.
const (
	LocalUserID    = "id"
	LocalUserEmail = "email"
	LocalUserRole  = "role"
)

// ResolveSession resolves the session cookie to an authenticated identity
// and stores id/email/role in Locals. It never rejects: a request with no
// cookie, an expired token or a dangling user record simply continues
// unauthenticated, and the Require* gates decide what that means per route.
func ResolveSession(sessions domain.SessionStore, users domain.UserService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}

		userID, err := sessions.Resolve(context.Background(), token)
		if err != nil {
			return c.Next()
		}

		user, err := users.GetByID(context.Background(), userID)
		if err != nil {
			return c.Next()
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserEmail, user.Email)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// RequireAuth passes only when ResolveSession attached an identity.
func RequireAuth(c *fiber.Ctx) error {
	if _, ok := c.Locals(LocalUserID).(uint); !ok {
		return unauthorized(c)
	}
	return c.Next()
}

// RequireAdmin passes for ADMIN and SUPERADMIN. Register it after
// RequireAuth; the gates are an ordered chain of predicates.
func RequireAdmin(c *fiber.Ctx) error {
	role, _ := c.Locals(LocalUserRole).(string)
	if role != model.RoleAdmin && role != model.RoleSuperAdmin {
		return unauthorized(c)
	}
	return c.Next()
}

// RequireSuperAdmin passes for SUPERADMIN only.
func RequireSuperAdmin(c *fiber.Ctx) error {
	role, _ := c.Locals(LocalUserRole).(string)
	if role != model.RoleSuperAdmin {
		return unauthorized(c)
	}
	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "UNAUTHORIZED"})
}
