package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gorkemserezli/oxiva-sub001/internal/config"
	"github.com/gorkemserezli/oxiva-sub001/internal/models"
	"github.com/gorkemserezli/oxiva-sub001/internal/utils"
)

const claimsContextKey = "currentClaims"

// AuthMiddleware validates JWT bearer tokens and loads the claims into context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// AdminOnly rejects requests whose token role is not admin-capable.
// Must run after AuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := GetCurrentClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if !models.IsAdminRole(claims.Role) {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// GetCurrentClaims extracts the authenticated token claims from context.
func GetCurrentClaims(c *fiber.Ctx) (*utils.TokenClaims, bool) {
	value := c.Locals(claimsContextKey)
	if value == nil {
		return nil, false
	}

	if claims, ok := value.(*utils.TokenClaims); ok {
		return claims, true
	}

	return nil, false
}

// GetCurrentUserID extracts the authenticated user ID from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := GetCurrentClaims(c)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
