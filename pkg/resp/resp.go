package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The dashboard frontend expects {"success": msg} from mutations and
// {"error": msg} from failures; listing endpoints get their own payloads.

func Success(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": msg})
}
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"error": msg})
}
func ValidationFailed(c *gin.Context, msg string, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg, "fields": fields})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
