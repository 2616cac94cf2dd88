package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Healthz reports process liveness and uptime.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "OK",
		"uptime":    time.Since(startedAt).Seconds(),
		"timestamp": time.Now().UnixMilli(),
	})
}
