package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	svcAuth "github.com/qlxz/couple-space/internal/auth"
)

// 登录请求为表单编码（OAuth2 password flow 风格）
type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginHandler user login
func (h *Handler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		common.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	accessToken, _, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, svcAuth.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			common.RespondError(c, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		log.Printf("LoginHandler error for user %s: %v", req.Username, err)
		common.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
