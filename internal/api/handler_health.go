package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth reports liveness and the number of open sessions.
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.sessions.Len()})
}
