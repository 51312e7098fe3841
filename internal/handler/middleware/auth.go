package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"roomescape-api/internal/domain/member"
	"roomescape-api/internal/pkg/cookie"
	"roomescape-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxMemberIDKey   = "member_id"
	ctxMemberRoleKey = "member_role"
)

type AuthMiddleware struct {
	resolver usecase.IdentityResolver
}

func NewAuthMiddleware(resolver usecase.IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireAuth resolves the caller credential (cookie first, then Bearer
// header) to a member and stores identity on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		identity, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Warn("identity resolution failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ctxMemberIDKey, identity.ID)
		c.Set(ctxMemberRoleKey, member.Role(identity.Role))
		c.Next()
	}
}

// RequireAdmin is the capability check on admin-only entry points. Must run
// after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetMemberRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}

		if !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetMemberID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxMemberIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func GetMemberRole(c *gin.Context) (member.Role, bool) {
	v, exists := c.Get(ctxMemberRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(member.Role)
	return role, ok
}
