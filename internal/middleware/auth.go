// Package middleware provides authentication, logging, and rate limiting
// middleware for the application.
package middleware

import (
	"strings"

	"gullyconnect/internal/identity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthRequired enforces authentication for protected routes. The identity
// provider issues HS256 session tokens whose "sub" claim is the opaque
// external identity string; on success the external identity and its derived
// storage token are stored in Fiber locals.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		externalID, err := externalIDFromHeader(c, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("externalID", externalID)
		c.Locals("authorID", identity.ToStorageID(externalID))
		return c.Next()
	}
}

// OptionalAuth resolves the identity when a valid token is present but lets
// anonymous requests through. Used on public reads that personalize the
// "liked" flag.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		externalID, err := externalIDFromHeader(c, secret)
		if err == nil {
			c.Locals("externalID", externalID)
			c.Locals("authorID", identity.ToStorageID(externalID))
		}
		return c.Next()
	}
}

func externalIDFromHeader(c *fiber.Ctx, secret string) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token structure - missing subject")
	}

	return sub, nil
}
