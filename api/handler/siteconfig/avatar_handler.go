package siteconfig

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/storage"
)

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadAvatarHandler 上传头像文件，返回公开 URL；URL 由前端写回配置
func (h *Handler) UploadAvatarHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		common.RespondError(c, http.StatusUnprocessableEntity, "file is required")
		return
	}

	url, err := h.store.SaveUpload(fh, "avatar")
	if err != nil {
		if errors.Is(err, storage.ErrExtensionNotAllowed) {
			common.RespondError(c, http.StatusBadRequest, "File type not allowed")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to save uploaded file")
		return
	}

	c.JSON(http.StatusOK, uploadResponse{URL: url})
}
