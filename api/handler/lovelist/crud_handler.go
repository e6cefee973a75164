package lovelist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/models"
	"github.com/qlxz/couple-space/database/repo/lovelist"
)

// ListHandler 按创建时间倒序分页返回心愿
func (h *Handler) ListHandler(c *gin.Context) {
	skip, limit := common.ListQuery(c, h.maxLimit)

	items, err := h.repo.List(skip, limit)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to list love list items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateHandler 创建心愿
func (h *Handler) CreateHandler(c *gin.Context) {
	var req loveListRequest
	if !common.BindJSON(c, &req) {
		return
	}

	item := &models.LoveListItem{
		Title:       *req.Title,
		IsCompleted: req.IsCompleted,
		ImageURL:    req.ImageURL,
	}
	if err := h.repo.Create(item); err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to create love list item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateHandler 整体覆盖心愿字段
func (h *Handler) UpdateHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req loveListRequest
	if !common.BindJSON(c, &req) {
		return
	}

	item, err := h.repo.Update(id, *req.Title, req.IsCompleted, req.ImageURL)
	if err != nil {
		if errors.Is(err, lovelist.ErrItemNotFound) {
			common.RespondNotFound(c, "Item not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to update love list item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteHandler 删除心愿
func (h *Handler) DeleteHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, lovelist.ErrItemNotFound) {
			common.RespondNotFound(c, "Item not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to delete love list item")
		return
	}
	common.RespondAck(c)
}
