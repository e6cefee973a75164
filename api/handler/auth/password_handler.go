package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/api/middleware"
	svcAuth "github.com/qlxz/couple-space/internal/auth"
)

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePasswordHandler 校验旧密码后覆盖当前用户的密码哈希
func (h *Handler) ChangePasswordHandler(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req changePasswordRequest
	if !common.BindJSON(c, &req) {
		return
	}

	if err := h.svc.ChangePassword(user, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, svcAuth.ErrWrongOldPassword) {
			common.RespondError(c, http.StatusBadRequest, "Incorrect old password")
			return
		}
		log.Printf("ChangePasswordHandler error for user %s: %v", user.Username, err)
		common.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, common.MessageResponse{Message: "Password updated successfully"})
}
