package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/middleware"
	"AllyBackend/pkg/response"
)

type registerRequest struct {
	PhoneNumber    string  `json:"phoneNumber"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	DisabilityType *string `json:"disabilityType"`
	RollNumber     *string `json:"rollNumber"`
}

type loginRequest struct {
	IDToken     string `json:"idToken"`
	PhoneNumber string `json:"phoneNumber"`
}

// handleUserRegister 注册用户档案，手机号即文档 ID
func (h *Handlers) handleUserRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Missing required fields.")
		return
	}
	if req.PhoneNumber == "" || req.Name == "" || req.Role == "" {
		response.Fail(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	user := models.User{
		Name:       req.Name,
		Role:       req.Role,
		IsVerified: false,
		RollNumber: req.RollNumber,
	}
	// 角色条件字段：志愿者/NGO 有可用状态，PWD 有残障类型，另一侧保持 null
	if req.Role == models.RolePWD {
		user.DisabilityType = req.DisabilityType
	} else {
		unavailable := false
		user.IsAvailable = &unavailable
	}

	if err := h.stores.Users.Create(c.Request.Context(), req.PhoneNumber, &user); err != nil {
		failWith(c, err, "Server error during registration.")
		return
	}

	response.Success(c, http.StatusCreated, "User profile created successfully. Proceed to OTP verification/login.", nil)
}

// handleUserLogin 登录查档
// 默认走安全路径：校验 ID Token 后从声明取手机号；
// 仅在鉴权关闭的演示部署里才信任客户端传来的手机号
func (h *Handlers) handleUserLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Missing phone number for login lookup.")
		return
	}

	phoneNumber := req.PhoneNumber
	if h.verifier != nil {
		token := req.IDToken
		if token == "" {
			token = middleware.BearerToken(c)
		}
		if token == "" {
			response.Fail(c, http.StatusUnauthorized, "Access denied. No authentication token provided.")
			return
		}

		claim, err := h.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			failWith(c, err, "Login failed due to an internal server issue.")
			return
		}
		if claim.PhoneNumber == "" {
			response.Fail(c, http.StatusUnauthorized, "Authentication failed. Invalid or expired token.")
			return
		}
		phoneNumber = claim.PhoneNumber
	} else {
		if phoneNumber == "" {
			response.Fail(c, http.StatusBadRequest, "Missing phone number for login lookup.")
			return
		}
		zap.L().Warn("login lookup without token verification", zap.String("phoneNumber", phoneNumber))
	}

	user, err := h.stores.Users.Get(c.Request.Context(), phoneNumber)
	if err != nil {
		failWith(c, err, "Login failed due to an internal server issue.")
		return
	}

	response.Success(c, http.StatusOK, "Login successful.", gin.H{
		"token": req.IDToken,
		"role":  user.Role,
		"name":  user.Name,
	})
}
