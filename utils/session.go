package utils

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName carries the caller's identity on every protected route.
const SessionCookieName = "prime_user"

const sessionMaxAge = 60 * 60 * 24 * 30 // 30 days

// Session is what the cookie encodes: who the caller is and whether they have
// finished the onboarding quiz.
type Session struct {
	UserID       uint
	HasOnboarded bool
}

func sessionSecret() ([]byte, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, errors.New("SESSION_SECRET not set")
	}
	return []byte(secret), nil
}

// IssueSessionToken signs the session claims with HS256.
func IssueSessionToken(userID uint, hasOnboarded bool) (string, error) {
	secret, err := sessionSecret()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":       userID,
		"hasOnboarded": hasOnboarded,
		"exp":          time.Now().Add(sessionMaxAge * time.Second).Unix(),
	})
	return token.SignedString(secret)
}

// ParseSessionToken validates a cookie value and extracts the session claims.
func ParseSessionToken(value string) (*Session, error) {
	secret, err := sessionSecret()
	if err != nil {
		return nil, err
	}
	token, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid session")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	id, ok := claims["userId"].(float64)
	if !ok || id <= 0 {
		return nil, errors.New("userId claim missing")
	}
	onboarded, _ := claims["hasOnboarded"].(bool)
	return &Session{UserID: uint(id), HasOnboarded: onboarded}, nil
}

// SetSessionCookie issues a fresh session cookie on c.
func SetSessionCookie(c *gin.Context, userID uint, hasOnboarded bool) error {
	value, err := IssueSessionToken(userID, hasOnboarded)
	if err != nil {
		return err
	}
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(SessionCookieName, value, sessionMaxAge, "/", "", secure, true)
	return nil
}

// ClearSessionCookie logs the caller out.
func ClearSessionCookie(c *gin.Context) {
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
