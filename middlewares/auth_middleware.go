// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"

	"github.com/StarDust130/Prime-Day/utils"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the caller from the prime_user cookie. Every
// protected route reads its identity from here and nowhere else.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(utils.SessionCookieName)
		if err != nil || value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := utils.ParseSessionToken(value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("userID", session.UserID)
		c.Set("hasOnboarded", session.HasOnboarded)
		c.Next()
	}
}
