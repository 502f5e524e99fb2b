package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/orderdesk/backoffice/internal/pkg/auth"
)

const (
	// StaffIDContextKey is a gin context key for the authenticated staff identifier.
	StaffIDContextKey = "staffID"
	// SessionTokenContextKey holds the raw session token for CSRF checks.
	SessionTokenContextKey = "sessionToken"

	authCookieName = "backoffice_token"
	csrfHeaderName = "X-CSRF-Token"
)

// SessionParser validates session tokens.
type SessionParser interface {
	ParseToken(token string) (int64, error)
}

// CSRFVerifier checks CSRF tokens against session tokens.
type CSRFVerifier interface {
	VerifyCSRF(sessionToken, csrfToken string) bool
}

// AuthRequired ensures a staff member is authenticated before accessing handler.
func AuthRequired(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		staffID, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(StaffIDContextKey, staffID)
		c.Set(SessionTokenContextKey, token)
		c.Next()
	}
}

// CSRFGuard rejects mutating requests whose CSRF token does not match
// the session. Safe methods pass through.
func CSRFGuard(verifier CSRFVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		session, _ := c.Get(SessionTokenContextKey)
		sessionToken, _ := session.(string)
		csrfToken := c.GetHeader(csrfHeaderName)
		if sessionToken == "" || csrfToken == "" || !verifier.VerifyCSRF(sessionToken, csrfToken) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
