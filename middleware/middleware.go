package middleware

import (
	"net/http"

	"gymsphere/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request through only when the authenticated role
// is one of the listed ones. It assumes AuthMiddleware already ran.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		if !allowed[c.GetString("role")] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "You do not have permission to access this resource",
			})
			return
		}
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin)
}

// StaffOnly covers the front desk and administration.
func StaffOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin, domain.RoleReceptionist)
}

func MemberOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleMember)
}
