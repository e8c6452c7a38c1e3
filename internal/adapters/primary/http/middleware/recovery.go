package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"breast-cancer-api/internal/adapters/primary/http/dto"
)

// Recovery turns a panic into a logged 500 with the standard JSON error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.WithFields(log.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(ContextRequestID),
			"panic":      recovered,
		}).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgInternalError))
	})
}
