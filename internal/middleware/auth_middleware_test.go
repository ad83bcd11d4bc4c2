package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell-api/internal/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "token"

func newTestRouter(t *testing.T, tokens *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", SessionAuth(tokens, testCookieName), func(c *gin.Context) {
		userID, ok := UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r
}

func newTokens(t *testing.T, expiry time.Duration) *jwt.Service {
	t.Helper()
	tokens, err := jwt.NewService("test-secret", "api.test", expiry)
	require.NoError(t, err)
	return tokens
}

func doRequest(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuth_NoCookie(t *testing.T) {
	r := newTestRouter(t, newTokens(t, time.Hour))

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized. Please log in.")
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	r := newTestRouter(t, newTokens(t, time.Hour))

	w := doRequest(r, "not-a-valid-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired or invalid token.")
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	expired := newTokens(t, -time.Minute)
	token, err := expired.Issue("user-abc123")
	require.NoError(t, err)

	r := newTestRouter(t, newTokens(t, time.Hour))

	// Expired and invalid tokens get the same message
	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired or invalid token.")
}

func TestSessionAuth_ValidToken(t *testing.T) {
	tokens := newTokens(t, time.Hour)
	token, err := tokens.Issue("user-abc123")
	require.NoError(t, err)

	r := newTestRouter(t, tokens)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-abc123")
}

func TestUserID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)
}
