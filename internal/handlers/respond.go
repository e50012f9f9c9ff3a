package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/mblog-app/backend/internal/apperr"
	"github.com/mblog-app/backend/internal/middleware"
)

// respondError translates a typed service failure into its status code and
// the {ok:false, message} envelope. Anything untyped is a 500.
func respondError(c echo.Context, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Kind == apperr.Internal {
			logrus.WithError(err).WithField("path", c.Path()).Error("internal error")
		}
		return c.JSON(ae.Kind.Status(), echo.Map{"ok": false, "message": ae.Message})
	}
	logrus.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "message": "internal server error"})
}

// callerID returns the authenticated user's id set by the JWT middleware,
// or uuid.Nil when the route ran without it.
func callerID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(middleware.UserIDContextKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// paramUUID parses a path parameter already shape-checked by the UUID
// middleware.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.InvalidInput, "invalid "+name)
	}
	return id, nil
}
