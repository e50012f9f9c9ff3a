package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mblog-app/backend/internal/metrics"
	"github.com/mblog-app/backend/internal/models"
	"github.com/mblog-app/backend/internal/services"
)

// UserHandler handles HTTP requests related to user accounts
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRoutes registers user-related routes. Registration, login and
// the user list are open; the rest require a bearer token.
func (h *UserHandler) RegisterUserRoutes(e *echo.Echo, auth, validUUID echo.MiddlewareFunc) {
	e.POST("/users", h.Register)
	e.POST("/users/login", h.Login)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:userId", h.GetUser, auth, validUUID)
	e.DELETE("/users/:userId", h.DeleteUser, auth, validUUID)
}

// Register handles user registration
func (h *UserHandler) Register(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": "invalid request payload"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": err.Error()})
	}

	user, err := h.userService.Register(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"ok":      true,
		"message": "user created",
		"user":    user,
	})
}

// Login verifies credentials and returns a bearer token
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": "invalid request payload"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": err.Error()})
	}

	user, token, err := h.userService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		metrics.LoginFailure.Inc()
		return respondError(c, err)
	}
	metrics.LoginSuccess.Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "login successful",
		"user":    user,
		"token":   token,
	})
}

// GetUser returns a user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := paramUUID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "user found",
		"user":    user,
	})
}

// ListUsers returns all users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "users listed",
		"users":   users,
	})
}

// DeleteUser removes a user by id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := paramUUID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "user removed",
	})
}
