package middleware

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/model"
	"smart-scheduler/pkg/response"
)

const scopeKey = "scope"

// OwnerHeader identifies the requesting owner. All reads and writes are
// scoped by it.
const OwnerHeader = "X-Owner-ID"

// Auth requires the owner header and stores the resolved scope on the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetHeader(OwnerHeader)
		if ownerID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, model.Scope{OwnerID: ownerID})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
