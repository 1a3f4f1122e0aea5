package middleware

import (
	"github.com/gin-gonic/gin"

	"barberhub/internal/httperr"
)

// RequireRole rejects authenticated requests whose token does not carry
// one of the given roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextUserRole)
		if !exists {
			httperr.Unauthorized(c, "role_not_in_token", "Role not found in token.")
			c.Abort()
			return
		}

		role, _ := roleVal.(string)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "insufficient_role", "You do not have access to this resource.")
		c.Abort()
	}
}
