package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientIP resolves the originating address the way a proxy-fronted
// deployment needs it: first X-Forwarded-For hop, then X-Real-IP, then the
// socket peer.
func ClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func ParseUUIDParam(c *gin.Context, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(param))
}
