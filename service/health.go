package service

import (
	"context"
	"time"

	"devplatform/response"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

func (h *Handler) RegisterHealth(api *gin.RouterGroup) {
	api.GET("/health", h.Health)
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()
	if err := h.q.Ping(ctx); err != nil {
		response.InternalError(c, err, response.DatabaseUnavailable)
		return
	}
	response.Success(c, gin.H{"status": "ok"})
}
