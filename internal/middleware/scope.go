package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/response"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"

	scopeKey = "scope"
)

// Auth requires the X-User-ID header set by the upstream gateway and stores
// the caller's scope on the gin and request contexts.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{UserID: userID, Username: strings.TrimSpace(c.GetHeader(HeaderUsername))}
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(log.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && sc.UserID != ""
}

// SetScope stores sc as if Auth had run. Used by handler tests.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}
