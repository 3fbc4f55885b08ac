package handlers

import (
	"errors"
	"net/http"
	"strings"

	"opsboard/internal/access"
	"opsboard/internal/services"
	"opsboard/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "session"

// RequestID tags every request, honoring an X-Request-ID from the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequireSession resolves the bearer token to a session and stores it in the
// context. Requests without a live session stop here with 401.
func RequireSession(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		data, err := authService.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}

		c.Set(sessionKey, data)
		c.Next()
	}
}

// RequireView gates a route group on the role→view permission table.
func RequireView(view access.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !access.CanView(sess.Role, view) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "View not permitted for this role"})
			return
		}
		c.Next()
	}
}

// RequireKindView is RequireView for task routes where the owning view
// depends on the :kind path parameter.
func RequireKindView() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		view := access.ViewForKind(c.Param("kind"))
		if sess == nil || !access.CanView(sess.Role, view) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "View not permitted for this role"})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates the admin-only actions.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !access.IsAdmin(sess.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session placed by RequireSession, or nil.
func CurrentSession(c *gin.Context) *session.Data {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	data, ok := value.(*session.Data)
	if !ok {
		return nil
	}
	return data
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
