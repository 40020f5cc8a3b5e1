package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthCheck 健康检查接口，返回纯文本
func (h *Handlers) HealthCheck(c *gin.Context) {
	if err := h.stores.Ping(c.Request.Context()); err != nil {
		zap.L().Error("health check failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "ALLY Backend is Running but the document store connection failed.")
		return
	}
	c.String(http.StatusOK, "ALLY Backend is Running and SUCCESSFULLY Connected to the document store!")
}
