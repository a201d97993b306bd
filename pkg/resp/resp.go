package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

// ShopClosed is a 403 carrying the admin-configured closed messages.
func ShopClosed(c *gin.Context, msgEn, msgMm string) {
	c.JSON(http.StatusForbidden, gin.H{
		"ok":    false,
		"error": "shop_closed",
		"message": gin.H{
			"en": msgEn,
			"mm": msgMm,
		},
	})
}

// ServerError hides the underlying error from the client; callers log it.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}
