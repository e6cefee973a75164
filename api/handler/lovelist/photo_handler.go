package lovelist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/repo/lovelist"
	"github.com/qlxz/couple-space/storage"
)

type photoUploadResponse struct {
	URL string `json:"url"`
}

// UploadPhotoHandler 为心愿上传配图，覆盖 image_url 字段
// 先校验心愿存在，再写文件
func (h *Handler) UploadPhotoHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, lovelist.ErrItemNotFound) {
			common.RespondNotFound(c, "Item not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to get love list item")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		common.RespondError(c, http.StatusUnprocessableEntity, "file is required")
		return
	}

	url, err := h.store.SaveUpload(fh, "lovelist")
	if err != nil {
		if errors.Is(err, storage.ErrExtensionNotAllowed) {
			common.RespondError(c, http.StatusBadRequest, "File type not allowed")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to save uploaded file")
		return
	}

	if _, err := h.repo.SetImageURL(id, url); err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to save image url")
		return
	}

	c.JSON(http.StatusOK, photoUploadResponse{URL: url})
}
