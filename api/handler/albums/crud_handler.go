package albums

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/models"
	"github.com/qlxz/couple-space/database/repo/albums"
)

// ListHandler 按日期倒序分页返回相册（含照片和评论）
func (h *Handler) ListHandler(c *gin.Context) {
	skip, limit := common.ListQuery(c, h.maxLimit)

	items, err := h.repo.List(skip, limit)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to list albums")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateHandler 创建相册，内联照片 URL 在同一事务内写入
func (h *Handler) CreateHandler(c *gin.Context) {
	var req albumRequest
	if !common.BindJSON(c, &req) {
		return
	}

	album := &models.Album{
		Description: *req.Description,
		Date:        req.Date,
	}
	if err := h.repo.CreateWithPhotos(album, req.Photos); err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to create album")
		return
	}
	c.JSON(http.StatusOK, album)
}

// UpdateHandler 只更新描述和日期
// 请求体中的 photos 列表有意不做同步，照片由上传/删除接口单独管理
func (h *Handler) UpdateHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req albumRequest
	if !common.BindJSON(c, &req) {
		return
	}

	album, err := h.repo.UpdateMeta(id, *req.Description, req.Date)
	if err != nil {
		if errors.Is(err, albums.ErrAlbumNotFound) {
			common.RespondNotFound(c, "Item not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to update album")
		return
	}
	c.JSON(http.StatusOK, album)
}

// DeleteHandler 删除相册及其照片和评论记录
func (h *Handler) DeleteHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, albums.ErrAlbumNotFound) {
			common.RespondNotFound(c, "Item not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to delete album")
		return
	}
	common.RespondAck(c)
}
