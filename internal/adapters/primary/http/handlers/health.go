package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	resp := gin.H{"status": "ok"}
	if info, ok := h.predictionSvc.ModelInfo(); ok {
		resp["model"] = info
	}
	c.JSON(http.StatusOK, resp)
}
