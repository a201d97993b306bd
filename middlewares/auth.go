package middlewares

import (
	"strings"

	"campuseats-be/entity"
	"campuseats-be/pkg/resp"
	"campuseats-be/repository"
	"campuseats-be/services"
	"campuseats-be/utils"

	"github.com/gin-gonic/gin"
)

// RequireUser verifies the bearer token and stores the user id in the
// context. 401 on anything short of a valid signed token.
func RequireUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		if claims.UserID == 0 {
			resp.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Next()
	}
}

// RequireActiveAdmin resolves the caller's admin row per request (not
// from the token), so deactivation and role changes apply immediately.
// 403 covers both "not an admin" and "admin but deactivated".
func RequireActiveAdmin(admins *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := utils.CurrentUserID(c)
		if userID == 0 {
			resp.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}
		admin, err := admins.FindByUserID(userID)
		if err != nil || !admin.IsActive {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Set("adminId", admin.ID)
		c.Set("adminRole", admin.Role)
		c.Next()
	}
}

// RequirePermission gates on the capability-to-tier mapping. Must run
// after RequireActiveAdmin.
func RequirePermission(cap services.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.CurrentAdminRole(c)
		if !services.RoleGrants(role, cap) {
			resp.Forbidden(c, "insufficient permission")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin is used solely for roster removal.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentAdminRole(c) != entity.RoleSuperAdmin {
			resp.Forbidden(c, "super admin only")
			c.Abort()
			return
		}
		c.Next()
	}
}
