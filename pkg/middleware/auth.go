package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"AllyBackend/pkg/auth"
	"AllyBackend/pkg/response"
)

const claimKey = "auth_claim"

// PlaceholderUser 未启用鉴权时使用的占位身份
const PlaceholderUser = "MOCK_USER"

// AuthRequired 鉴权闸门：校验 Bearer Token 并把身份声明写入请求上下文
func AuthRequired(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			response.Fail(c, 401, "Access denied. No authentication token provided.")
			c.Abort()
			return
		}

		claim, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			response.Fail(c, 401, "Authentication failed. Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set(claimKey, claim)
		c.Next()
	}
}

// AllowAll 演示模式：直接放行，不设置身份
// 是否启用在装配期决定一次，不是运行时开关
func AllowAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// BearerToken 从 Authorization 头提取 Bearer Token，没有则返回空串
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// CurrentClaim 取出请求上下文中的身份声明，未鉴权时为 nil
func CurrentClaim(c *gin.Context) *auth.Claim {
	v, ok := c.Get(claimKey)
	if !ok {
		return nil
	}
	claim, ok := v.(*auth.Claim)
	if !ok {
		return nil
	}
	return claim
}

// CurrentUserID 当前用户标识：优先取声明中的手机号，未鉴权时返回占位身份
func CurrentUserID(c *gin.Context) string {
	claim := CurrentClaim(c)
	if claim == nil {
		return PlaceholderUser
	}
	if claim.PhoneNumber != "" {
		return claim.PhoneNumber
	}
	return claim.UID
}
