package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentAdminID(c *gin.Context) uint {
	if v, ok := c.Get("adminId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentAdminRole(c *gin.Context) string {
	if v, ok := c.Get("adminRole"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
