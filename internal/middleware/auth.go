package middleware

import (
	"strings"

	"homeport/internal/common"
	"homeport/internal/repositories"
	"homeport/internal/services"

	"github.com/labstack/echo/v4"
)

// BearerAuth validates an optional bearer token and, when it checks out,
// attaches the authenticated identity to the request context. The middleware
// never rejects a request: a missing, invalid, or expired token simply leaves
// the request unauthenticated, and handlers that need an identity enforce it.
func BearerAuth(tokens services.TokenService, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return next(c)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			username := tokens.Validate(tokenString)
			if username == "" {
				return next(c)
			}

			// Expired or unknown subjects are rejected, not repaired.
			user, err := userRepo.GetByUsername(c.Request().Context(), username)
			if err != nil || user == nil {
				return next(c)
			}

			ctx := common.WithIdentity(c.Request().Context(), &common.Identity{
				UserID:   user.ID,
				Username: user.Username,
			})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
