package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mblog-app/backend/internal/services"
)

// FollowHandler handles follow/unfollow HTTP requests. The caller resolved
// from the bearer token is always the follower side of the edge.
type FollowHandler struct {
	followService *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(e *echo.Echo, auth, validUUID echo.MiddlewareFunc) {
	e.POST("/follows/:userId", h.FollowUser, auth, validUUID)
	e.GET("/follows/:userId", h.GetFollow, auth, validUUID)
	e.DELETE("/follows/:userId", h.UnfollowUser, auth, validUUID)
}

// FollowUser creates a follow edge from the caller to the target user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	targetID, err := paramUUID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	follow, err := h.followService.Follow(c.Request().Context(), callerID(c), targetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"ok":      true,
		"message": "user followed",
		"follow":  follow,
	})
}

// GetFollow returns the follow edge between the caller and the target user
func (h *FollowHandler) GetFollow(c echo.Context) error {
	targetID, err := paramUUID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	follow, err := h.followService.Get(c.Request().Context(), callerID(c), targetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "follow found",
		"follow":  follow,
	})
}

// UnfollowUser removes the follow edge from the caller to the target user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	targetID, err := paramUUID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.followService.Unfollow(c.Request().Context(), callerID(c), targetID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "user unfollowed",
	})
}
