package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/repo/accounts"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler 注册用户，用户名重复时返回 400
func (h *Handler) RegisterHandler(c *gin.Context) {
	var req registerRequest
	if !common.BindJSON(c, &req) {
		return
	}

	user, err := h.svc.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrUsernameTaken) {
			common.RespondError(c, http.StatusBadRequest, "Username already registered")
			return
		}
		log.Printf("RegisterHandler error for user %s: %v", req.Username, err)
		common.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, user)
}
