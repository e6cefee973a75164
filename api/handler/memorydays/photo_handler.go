package memorydays

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/repo/memorydays"
	"github.com/qlxz/couple-space/storage"
)

type photoUploadResponse struct {
	URL string `json:"url"`
	ID  uint   `json:"id"`
}

// UploadPhotoHandler 为纪念日上传照片
// 先校验纪念日存在，再写文件，避免为不存在的父记录落盘孤儿文件
func (h *Handler) UploadPhotoHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, memorydays.ErrMemoryDayNotFound) {
			common.RespondNotFound(c, "Item not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to get memory day")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		common.RespondError(c, http.StatusUnprocessableEntity, "file is required")
		return
	}

	url, err := h.store.SaveUpload(fh, "")
	if err != nil {
		if errors.Is(err, storage.ErrExtensionNotAllowed) {
			common.RespondError(c, http.StatusBadRequest, "File type not allowed")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to save uploaded file")
		return
	}

	photo, err := h.repo.AddPhoto(id, url)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to save photo record")
		return
	}

	c.JSON(http.StatusOK, photoUploadResponse{URL: url, ID: photo.ID})
}

// DeletePhotoHandler 删除照片记录，并尽力删除磁盘上的文件
func (h *Handler) DeletePhotoHandler(c *gin.Context) {
	photoID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	photo, err := h.repo.GetPhotoByID(photoID)
	if err != nil {
		if errors.Is(err, memorydays.ErrPhotoNotFound) {
			common.RespondNotFound(c, "Photo not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to get photo")
		return
	}

	h.store.DeleteByURL(photo.URL)

	if err := h.repo.DeletePhoto(photoID); err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to delete photo record")
		return
	}
	common.RespondAck(c)
}
