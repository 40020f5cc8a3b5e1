package response

import (
	"github.com/gin-gonic/gin"
)

// Success 写出带 message 的成功响应，extra 中的字段会并入响应体
func Success(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail 写出统一的失败响应，响应体只有一个 message 字段
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
