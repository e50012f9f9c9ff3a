package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const canonicalUUIDLength = 36

// ValidateUUIDParams rejects requests whose path parameters are not
// canonical hyphenated UUIDs, before any handler or service runs.
// uuid.Parse also accepts urn-prefixed and unhyphenated forms, hence the
// extra length check.
func ValidateUUIDParams() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			names := c.ParamNames()
			values := c.ParamValues()
			for i, name := range names {
				value := strings.TrimSpace(values[i])
				if len(value) != canonicalUUIDLength {
					return invalidParam(c, name)
				}
				if _, err := uuid.Parse(value); err != nil {
					return invalidParam(c, name)
				}
			}
			return next(c)
		}
	}
}

func invalidParam(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"ok":      false,
		"message": fmt.Sprintf("path parameter %q must be a valid uuid", name),
	})
}
