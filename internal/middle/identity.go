package middle

import (
	"net/http"
	"strings"

	"havjob/internal/auth"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type IdentityMiddlewareParams struct {
	fx.In

	Sessions services.SessionService
	Tokens   *auth.TokenManager
	Logger   *zap.Logger
}

// IdentityMiddleware resolves the caller identity for every request: a
// bearer access token first, then the session cookie. Requests without
// either proceed anonymously; route guards decide what that means.
type IdentityMiddleware struct {
	sessions services.SessionService
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

func NewIdentityMiddleware(p IdentityMiddlewareParams) *IdentityMiddleware {
	return &IdentityMiddleware{
		sessions: p.Sessions,
		tokens:   p.Tokens,
		logger:   p.Logger,
	}
}

func (m *IdentityMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			claims, err := m.tokens.Verify(token, auth.TokenAccess)
			if err == nil {
				auth.SetIdentity(c, auth.Identity{UserID: claims.UserID})
				c.Next()
				return
			}
			m.logger.Debug("rejected bearer token", zap.Error(err))
		}

		if sid, err := c.Cookie(auth.SessionCookie); err == nil && sid != "" {
			payload, err := m.sessions.Get(sid)
			if err == nil {
				auth.SetIdentity(c, auth.Identity{
					UserID:  payload.UserID,
					IsAdmin: payload.IsAdmin,
				})
			}
		}

		c.Next()
	}
}

// RequireUser aborts with 401 unless the caller resolved to a known user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.IdentityFrom(c).UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the caller holds admin privilege.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IdentityFrom(c).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
