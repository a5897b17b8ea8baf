package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports service liveness.
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"message":   "Anatolian Spine Clinic API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
