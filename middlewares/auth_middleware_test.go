package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StarDust130/Prime-Day/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", SessionMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":       c.GetUint("userID"),
			"hasOnboarded": c.GetBool("hasOnboarded"),
		})
	})
	return r
}

func TestSessionMiddlewareRejectsMissingCookie(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestSessionMiddlewareRejectsBadToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddlewareSetsIdentity(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := protectedRouter()

	token, err := utils.IssueSessionToken(7, true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":7,"hasOnboarded":true}`, w.Body.String())
}
