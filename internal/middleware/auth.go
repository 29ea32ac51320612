package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/services"
)

const (
	accessTokenCookie = "access_token"
	accountIDKey      = "user_id"
)

// OptionalAuth reads the access token cookie and, when valid, stores the account id in Locals.
// Requests without a valid token continue anonymously.
func OptionalAuth(authService services.AuthService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(accessTokenCookie)
		if cookie == "" {
			return c.Next()
		}

		claims, err := authService.ParseToken(cookie)
		if err != nil {
			logger.Debug("ignoring invalid access token", zap.Error(err))
			return c.Next()
		}

		c.Locals(accountIDKey, claims.UserID)
		return c.Next()
	}
}

// AccountID returns the authenticated account id set by OptionalAuth.
func AccountID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(accountIDKey).(uint)
	return id, ok && id != 0
}
