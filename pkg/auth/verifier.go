package auth

import (
	"context"
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"AllyBackend/pkg/errors"
)

// Claim 身份提供方校验通过后得到的声明
type Claim struct {
	UID         string `json:"uid"`
	PhoneNumber string `json:"phoneNumber"`
}

// TokenVerifier 校验 Bearer Token，返回已验证的身份声明
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Claim, error)
}

// FirebaseVerifier 基于 Firebase Auth 的实现
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// Verify 调用身份提供方校验 ID Token
// 缺失、过期、签名无效统一映射为 401，不向客户端区分具体原因
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Claim, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		zap.L().Warn("token verification failed", zap.Error(err))
		return nil, errors.WithCode(http.StatusUnauthorized, "Authentication failed. Invalid or expired token.")
	}

	claim := &Claim{UID: token.UID}
	if phone, ok := token.Claims["phone_number"].(string); ok {
		claim.PhoneNumber = phone
	}
	return claim, nil
}
