package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mblog-app/backend/internal/metrics"
	"github.com/mblog-app/backend/internal/models"
	"github.com/mblog-app/backend/internal/services"
)

// TweetHandler handles HTTP requests related to tweets and the feed
type TweetHandler struct {
	tweetService *services.TweetService
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweetService *services.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// RegisterTweetRoutes registers tweet-related routes. The static /tweets/feed
// route is matched ahead of /tweets/:id by echo.
func (h *TweetHandler) RegisterTweetRoutes(e *echo.Echo, auth, validUUID echo.MiddlewareFunc) {
	e.POST("/tweets", h.CreateTweet, auth)
	e.GET("/tweets/feed", h.GetFeed, auth)
	e.POST("/tweets/:parentId/reply", h.CreateReply, auth, validUUID)
	e.GET("/tweets/:id", h.GetTweet, auth, validUUID)
}

// CreateTweet creates a top-level tweet authored by the caller
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": "invalid request payload"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": err.Error()})
	}

	tweet, err := h.tweetService.Create(c.Request().Context(), req.Content, callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	metrics.TweetsPosted.Inc()

	return c.JSON(http.StatusCreated, echo.Map{
		"ok":      true,
		"message": "tweet created",
		"tweet":   tweet,
	})
}

// CreateReply creates a reply to an existing tweet
func (h *TweetHandler) CreateReply(c echo.Context) error {
	parentID, err := paramUUID(c, "parentId")
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": "invalid request payload"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "message": err.Error()})
	}

	reply, err := h.tweetService.CreateReply(c.Request().Context(), req.Content, parentID, callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	metrics.TweetsPosted.Inc()

	return c.JSON(http.StatusCreated, echo.Map{
		"ok":      true,
		"message": "reply created",
		"reply":   reply,
	})
}

// GetTweet returns a tweet with its author, likes, and direct replies
func (h *TweetHandler) GetTweet(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	tweet, err := h.tweetService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "tweet found",
		"tweet":   tweet,
	})
}

// GetFeed returns the caller's feed, newest first
func (h *TweetHandler) GetFeed(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	page, _ := strconv.Atoi(c.QueryParam("page"))

	feed, err := h.tweetService.Feed(c.Request().Context(), callerID(c), limit, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"message": "feed fetched",
		"feed":    feed,
	})
}
