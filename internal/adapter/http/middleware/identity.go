package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
)

// Identity headers set by the authentication gateway in front of this
// service. The gateway has already verified the bearer credential; this
// middleware only consumes the result.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	RoleAdmin      = "ADMIN"
)

const (
	ctxCallerID = "caller_id"
	ctxIsAdmin  = "is_admin"
)

func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if callerID == "" {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
			)
			return
		}
		c.Set(ctxCallerID, callerID)
		c.Set(ctxIsAdmin, strings.EqualFold(c.GetHeader(HeaderUserRole), RoleAdmin))
		c.Next()
	}
}

func CallerID(c *gin.Context) string {
	if value, exists := c.Get(ctxCallerID); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

func CallerScope(c *gin.Context) domain.AccessScope {
	scope := domain.AccessScope{CallerID: CallerID(c)}
	if value, exists := c.Get(ctxIsAdmin); exists {
		if admin, ok := value.(bool); ok {
			scope.Admin = admin
		}
	}
	return scope
}
