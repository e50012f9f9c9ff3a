package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mblog-app/backend/internal/services"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(e *echo.Echo, auth, validUUID echo.MiddlewareFunc) {
	e.POST("/likes/:tweetId", h.LikeTweet, auth, validUUID)
	e.GET("/likes/:tweetId", h.GetLike, auth, validUUID)
	e.DELETE("/likes/:tweetId", h.UnlikeTweet, auth, validUUID)
}

// LikeTweet likes a tweet on behalf of the caller
func (h *LikeHandler) LikeTweet(c echo.Context) error {
	tweetID, err := paramUUID(c, "tweetId")
	if err != nil {
		return respondError(c, err)
	}

	like, err := h.likeService.Add(c.Request().Context(), tweetID, callerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"ok":      true,
		"message": "like added",
		"like":    like,
	})
}

// GetLike returns the caller's like on a tweet. A missing like is a 200 with
// a null like, not an error.
func (h *LikeHandler) GetLike(c echo.Context) error {
	tweetID, err := paramUUID(c, "tweetId")
	if err != nil {
		return respondError(c, err)
	}

	like, err := h.likeService.Get(c.Request().Context(), tweetID, callerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "like fetched",
		"like":    like,
	})
}

// UnlikeTweet removes the caller's like from a tweet
func (h *LikeHandler) UnlikeTweet(c echo.Context) error {
	tweetID, err := paramUUID(c, "tweetId")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.likeService.Remove(c.Request().Context(), tweetID, callerID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "like removed",
	})
}
