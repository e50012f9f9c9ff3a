package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/mblog-app/backend/internal/models"
)

// UserIDContextKey is where the authenticated caller's id is stored on the
// echo context.
const UserIDContextKey = "userID"

// JWTAuthMiddleware checks for a valid bearer token and extracts the caller's
// user id into the request context.
func JWTAuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if jwtSecret == "" {
				return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "message": "authentication is not configured"})
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "message": "missing authorization header"})
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "message": "invalid authorization header format"})
			}

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "message": "invalid or expired token"})
			}

			c.Set(UserIDContextKey, claims.UserID)
			return next(c)
		}
	}
}
