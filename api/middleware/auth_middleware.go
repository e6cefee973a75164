package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/models"
	"github.com/qlxz/couple-space/database/repo/accounts"
	"github.com/qlxz/couple-space/internal/auth"
)

// ContextUserKey 认证用户在 gin 上下文中的键
const ContextUserKey = "current_user"

// RequireAuth 解析 Bearer token，校验签名与过期时间并加载对应用户
// 令牌缺失、格式错误、过期或 subject 对应的用户已不存在时响应 401
func RequireAuth(tokens *auth.TokenService, accountsRepo *accounts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		subject, err := tokens.ParseSubject(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := accountsRepo.GetUserByUsername(subject)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser 返回当前请求的认证用户；未认证时返回 nil
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	common.RespondError(c, http.StatusUnauthorized, "Could not validate credentials")
	c.Abort()
}
