package auth

import (
	svcAuth "github.com/qlxz/couple-space/internal/auth"
)

// Handler 认证处理器
type Handler struct {
	svc *svcAuth.LoginService
}

// NewHandler 创建新的认证处理器
func NewHandler(svc *svcAuth.LoginService) *Handler {
	return &Handler{svc: svc}
}
