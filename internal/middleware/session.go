package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "shiftcheck_session"

	sessionTTL = 72 * time.Hour

	ctxUserID = "user_id"
	ctxRole   = "role"
	ctxName   = "name"
)

// SessionAuth signs and verifies the cookie-borne session tokens.
type SessionAuth struct {
	secret []byte
}

func NewSessionAuth(secret string) *SessionAuth {
	return &SessionAuth{secret: []byte(secret)}
}

// IssueToken builds a signed session token for a freshly authenticated user.
func (s *SessionAuth) IssueToken(userID uint, role, name string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"name":    name,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SessionAuth) parseToken(tokenStr string) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// SetSession drops the session cookie on the response.
func (s *SessionAuth) SetSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

// ClearSession expires the session cookie.
func (s *SessionAuth) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// LoadSession reads the session cookie if one is there and stashes the
// identity in the request context. It never blocks: the landing page tolerates
// anonymous visitors, and the gated groups enforce access via RequireRole.
func (s *SessionAuth) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err == nil && tokenStr != "" {
			if claims, ok := s.parseToken(tokenStr); ok {
				if id, ok := claims["user_id"].(float64); ok {
					c.Set(ctxUserID, uint(id))
				}
				if role, ok := claims["role"].(string); ok {
					c.Set(ctxRole, role)
				}
				if name, ok := claims["name"].(string); ok {
					c.Set(ctxName, name)
				}
			}
		}
		c.Next()
	}
}

// RequireRole gates a route group to one role. Every failure, whether a
// missing session, an expired token or the wrong role, sends the visitor back
// to the landing page; there is no separate 403 surface.
func (s *SessionAuth) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := CurrentRole(c)
		if !ok || got != role {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireLogin admits any authenticated user regardless of role.
func (s *SessionAuth) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID reads the logged-in user's id out of the request context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentRole reads the logged-in user's role out of the request context.
func CurrentRole(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxRole)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// CurrentName reads the logged-in user's display name out of the request context.
func CurrentName(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxName)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
