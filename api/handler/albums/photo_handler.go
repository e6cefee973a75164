package albums

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/repo/albums"
	"github.com/qlxz/couple-space/storage"
)

type photoUploadResponse struct {
	URL string `json:"url"`
}

// UploadPhotoHandler 上传照片到指定相册（album_id 为表单字段）
// 先校验相册存在，再写文件
func (h *Handler) UploadPhotoHandler(c *gin.Context) {
	albumID, err := strconv.ParseUint(c.PostForm("album_id"), 10, 32)
	if err != nil {
		common.RespondError(c, http.StatusUnprocessableEntity, "album_id is required")
		return
	}

	if _, err := h.repo.GetByID(uint(albumID)); err != nil {
		if errors.Is(err, albums.ErrAlbumNotFound) {
			common.RespondNotFound(c, "Album not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to get album")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		common.RespondError(c, http.StatusUnprocessableEntity, "file is required")
		return
	}

	url, err := h.store.SaveUpload(fh, "album")
	if err != nil {
		if errors.Is(err, storage.ErrExtensionNotAllowed) {
			common.RespondError(c, http.StatusBadRequest, "File type not allowed")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to save uploaded file")
		return
	}

	if _, err := h.repo.AddPhoto(uint(albumID), url); err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to save photo record")
		return
	}

	c.JSON(http.StatusOK, photoUploadResponse{URL: url})
}

// DeletePhotoHandler 删除照片记录，并尽力删除磁盘上的文件
func (h *Handler) DeletePhotoHandler(c *gin.Context) {
	photoID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	photo, err := h.repo.GetPhotoByID(photoID)
	if err != nil {
		if errors.Is(err, albums.ErrPhotoNotFound) {
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
