package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mblog-app/backend/internal/router"
	"github.com/mblog-app/backend/pkg/config"
)

const testSecret = "integration-test-secret"

// newTestServer wires the full router over an in-memory sqlite database,
// mirroring production setup minus the listener.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared&_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})

	e := echo.New()
	cfg := &config.Config{JWTSecret: testSecret}
	router.SetupRoutes(e, db, cfg)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var payload map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec.Code, payload
}

func registerUser(t *testing.T, e *echo.Echo, name string) string {
	t.Helper()
	code, body := doJSON(t, e, http.MethodPost, "/users", "",
		`{"name":"`+name+`","userName":"`+name+`","email":"`+name+`@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, code, "register %s: %v", name, body)
	user := body["user"].(map[string]interface{})
	return user["id"].(string)
}

func loginUser(t *testing.T, e *echo.Echo, name string) string {
	t.Helper()
	code, body := doJSON(t, e, http.MethodPost, "/users/login", "",
		`{"identifier":"`+name+`","password":"password123"}`)
	require.Equal(t, http.StatusOK, code, "login %s: %v", name, body)
	return body["token"].(string)
}

func TestRegisterLoginAndProtectedRoutes(t *testing.T) {
	e := newTestServer(t)

	aliceID := registerUser(t, e, "alice")
	token := loginUser(t, e, "alice")

	// Duplicate username conflicts.
	code, _ := doJSON(t, e, http.MethodPost, "/users", "",
		`{"name":"alice","userName":"alice","email":"alice2@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusConflict, code)

	// Bad credentials.
	code, _ = doJSON(t, e, http.MethodPost, "/users/login", "",
		`{"identifier":"alice","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Protected route without a token.
	code, _ = doJSON(t, e, http.MethodGet, "/users/"+aliceID, "", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	// With the token.
	code, body := doJSON(t, e, http.MethodGet, "/users/"+aliceID, token, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["ok"])

	// Malformed uuid path param is rejected before the handler.
	code, _ = doJSON(t, e, http.MethodGet, "/users/not-a-uuid", token, "")
	assert.Equal(t, http.StatusBadRequest, code)

	// Open user list.
	code, body = doJSON(t, e, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["users"], 1)
}

func TestTweetReplyAndDetail(t *testing.T) {
	e := newTestServer(t)
	registerUser(t, e, "alice")
	token := loginUser(t, e, "alice")

	code, body := doJSON(t, e, http.MethodPost, "/tweets", token, `{"content":"hello world"}`)
	require.Equal(t, http.StatusCreated, code)
	tweet := body["tweet"].(map[string]interface{})
	tweetID := tweet["id"].(string)

	// Reply to it.
	code, body = doJSON(t, e, http.MethodPost, "/tweets/"+tweetID+"/reply", token, `{"content":"a reply"}`)
	require.Equal(t, http.StatusCreated, code)
	reply := body["reply"].(map[string]interface{})
	assert.Equal(t, tweetID, reply["parent_id"])

	// Reply to a tweet that does not exist.
	code, _ = doJSON(t, e, http.MethodPost, "/tweets/7b0ab269-57f6-44a0-9b69-26d0e8f01c11/reply", token, `{"content":"orphan"}`)
	assert.Equal(t, http.StatusNotFound, code)

	// Over-long content.
	code, _ = doJSON(t, e, http.MethodPost, "/tweets", token, `{"content":"`+strings.Repeat("a", 281)+`"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	// Detail shows one level of replies.
	code, body = doJSON(t, e, http.MethodGet, "/tweets/"+tweetID, token, "")
	require.Equal(t, http.StatusOK, code)
	detail := body["tweet"].(map[string]interface{})
	replies := detail["replies"].([]interface{})
	require.Len(t, replies, 1)
	assert.Equal(t, "a reply", replies[0].(map[string]interface{})["content"])
}

func TestFollowLifecycle(t *testing.T) {
	e := newTestServer(t)
	aliceID := registerUser(t, e, "alice")
	bobID := registerUser(t, e, "bob")
	token := loginUser(t, e, "alice")

	// Following yourself is a conflict.
	code, _ := doJSON(t, e, http.MethodPost, "/follows/"+aliceID, token, "")
	assert.Equal(t, http.StatusConflict, code)

	code, body := doJSON(t, e, http.MethodPost, "/follows/"+bobID, token, "")
	require.Equal(t, http.StatusCreated, code)
	follow := body["follow"].(map[string]interface{})
	assert.Equal(t, aliceID, follow["follower_id"])
	assert.Equal(t, bobID, follow["following_id"])

	// Duplicate follow.
	code, _ = doJSON(t, e, http.MethodPost, "/follows/"+bobID, token, "")
	assert.Equal(t, http.StatusConflict, code)

	// Fetch then unfollow.
	code, _ = doJSON(t, e, http.MethodGet, "/follows/"+bobID, token, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, e, http.MethodDelete, "/follows/"+bobID, token, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, e, http.MethodGet, "/follows/"+bobID, token, "")
	assert.Equal(t, http.StatusNotFound, code)

	// Unfollowing again is not found.
	code, _ = doJSON(t, e, http.MethodDelete, "/follows/"+bobID, token, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLikeLifecycle(t *testing.T) {
	e := newTestServer(t)
	registerUser(t, e, "alice")
	registerUser(t, e, "bob")
	aliceToken := loginUser(t, e, "alice")
	bobToken := loginUser(t, e, "bob")

	code, body := doJSON(t, e, http.MethodPost, "/tweets", aliceToken, `{"content":"like me"}`)
	require.Equal(t, http.StatusCreated, code)
	tweetID := body["tweet"].(map[string]interface{})["id"].(string)

	// The author cannot like their own tweet.
	code, _ = doJSON(t, e, http.MethodPost, "/likes/"+tweetID, aliceToken, "")
	assert.Equal(t, http.StatusConflict, code)

	code, _ = doJSON(t, e, http.MethodPost, "/likes/"+tweetID, bobToken, "")
	assert.Equal(t, http.StatusCreated, code)

	// Liking twice conflicts.
	code, _ = doJSON(t, e, http.MethodPost, "/likes/"+tweetID, bobToken, "")
	assert.Equal(t, http.StatusConflict, code)

	// Fetch returns the like.
	code, body = doJSON(t, e, http.MethodGet, "/likes/"+tweetID, bobToken, "")
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, body["like"])

	// Remove, then fetch is a 200 with a null like.
	code, _ = doJSON(t, e, http.MethodDelete, "/likes/"+tweetID, bobToken, "")
	assert.Equal(t, http.StatusOK, code)

	code, body = doJSON(t, e, http.MethodGet, "/likes/"+tweetID, bobToken, "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["like"])

	// Removing again is not found.
	code, _ = doJSON(t, e, http.MethodDelete, "/likes/"+tweetID, bobToken, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestFeedAggregatesFollowedAuthors(t *testing.T) {
	e := newTestServer(t)
	registerUser(t, e, "alice")
	bobID := registerUser(t, e, "bob")
	registerUser(t, e, "carol")
	aliceToken := loginUser(t, e, "alice")
	bobToken := loginUser(t, e, "bob")
	carolToken := loginUser(t, e, "carol")

	doJSON(t, e, http.MethodPost, "/tweets", bobToken, `{"content":"from bob"}`)
	doJSON(t, e, http.MethodPost, "/tweets", carolToken, `{"content":"from carol"}`)
	doJSON(t, e, http.MethodPost, "/tweets", aliceToken, `{"content":"from alice"}`)

	// Alice follows bob but not carol.
	code, _ := doJSON(t, e, http.MethodPost, "/follows/"+bobID, aliceToken, "")
	require.Equal(t, http.StatusCreated, code)

	code, body := doJSON(t, e, http.MethodGet, "/tweets/feed", aliceToken, "")
	require.Equal(t, http.StatusOK, code)
	feed := body["feed"].([]interface{})
	require.Len(t, feed, 2)

	var contents []string
	for _, item := range feed {
		contents = append(contents, item.(map[string]interface{})["content"].(string))
	}
	assert.Contains(t, contents, "from bob")
	assert.Contains(t, contents, "from alice")
	assert.NotContains(t, contents, "from carol")
}
