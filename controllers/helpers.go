package controllers

import (
	"strconv"
	"strings"

	"dashboard/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// isAjax mirrors the classic XHR marker; mutations on ajax-only endpoints run
// only when the client sets it.
func isAjax(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("X-Requested-With"), "XMLHttpRequest")
}

func locale(c *gin.Context) string {
	return i18n.Pick(c.GetHeader("Accept-Language"))
}

func paramID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id)
}
