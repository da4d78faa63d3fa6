package serverutils

import (
	"os"
	"strings"

	"roombuddy-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware authenticates the request and stores the caller's id in
// Locals("user_id") as a string.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return apperror.Unauthenticated("missing bearer token")
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Unauthenticated("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return apperror.Unauthenticated("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperror.Unauthenticated("invalid claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return apperror.Unauthenticated("token missing user_id")
	}

	ctx.Locals("user_id", userID)
	return ctx.Next()
}
