package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/numetry/internal/utils"
)

// AuthCookieName holds the signed session token issued at login.
const AuthCookieName = "auth_token"

const userContextKey = "currentUserID"

// AuthMiddleware validates the session token and loads the user ID into
// context. Requests without a valid token are sent to loginPath.
func AuthMiddleware(secret, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Redirect(loginPath)
		}

		userID, err := utils.ParseToken(secret, token)
		if err != nil {
			c.ClearCookie(AuthCookieName)
			return c.Redirect(loginPath)
		}

		c.Locals(userContextKey, userID)
		return c.Next()
	}
}

func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(AuthCookieName); token != "" {
		return token
	}

	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// GetCurrentUserID extracts the authenticated user ID from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userContextKey).(uuid.UUID)
	return id, ok
}
