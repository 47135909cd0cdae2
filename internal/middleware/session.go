package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/apierror"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

const (
	// SessionCookie holds the signed session token set by POST /auth/login.
	SessionCookie = "calo_session"
	ClaimsKey     = "claims"

	AdminLoginPath = "/admin/login"
)

// SessionVerifier is the part of service.AuthService the gate needs.
type SessionVerifier interface {
	Verify(token string) (*service.SessionClaims, error)
}

// SessionAuth rejects API requests without a valid admin session with 401.
func SessionAuth(v SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verify(c, v)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("No autorizado"))
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// AdminPageGuard sends unauthenticated browsers to the login page. The login
// page itself and its assets stay reachable.
func AdminPageGuard(v SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isLoginPage(c.Request.URL.Path) {
			c.Next()
			return
		}
		claims, ok := verify(c, v)
		if !ok {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the session claims stored by SessionAuth, or nil.
func GetClaims(c *gin.Context) *service.SessionClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.SessionClaims)
	return claims
}

// verify accepts the first candidate token that verifies, so a stale cookie
// does not hide a valid Bearer header.
func verify(c *gin.Context, v SessionVerifier) (*service.SessionClaims, bool) {
	for _, token := range sessionTokens(c) {
		if claims, err := v.Verify(token); err == nil {
			return claims, true
		}
	}
	return nil, false
}

// sessionTokens returns the cookie token followed by the Bearer header token,
// so scripts can call the API without a browser.
func sessionTokens(c *gin.Context) []string {
	var tokens []string
	if tok, err := c.Cookie(SessionCookie); err == nil && tok != "" {
		tokens = append(tokens, tok)
	}
	header := c.GetHeader("Authorization")
	if tok := strings.TrimPrefix(header, "Bearer "); tok != header && tok != "" {
		tokens = append(tokens, tok)
	}
	return tokens
}

func isLoginPage(path string) bool {
	return path == AdminLoginPath || strings.HasPrefix(path, AdminLoginPath+"/")
}
