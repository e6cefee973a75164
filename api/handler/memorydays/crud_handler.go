package memorydays

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/models"
	"github.com/qlxz/couple-space/database/repo/memorydays"
)

// ListHandler 按日期倒序分页返回纪念日
func (h *Handler) ListHandler(c *gin.Context) {
	skip, limit := common.ListQuery(c, h.maxLimit)

	items, err := h.repo.List(skip, limit)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to list memory days")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateHandler 创建纪念日
func (h *Handler) CreateHandler(c *gin.Context) {
	var req memoryDayRequest
	if !common.BindJSON(c, &req) {
		return
	}

	item := &models.MemoryDay{
		Title:       *req.Title,
		Date:        req.Date,
		Description: req.Description,
		Icon:        req.icon(),
	}
	if err := h.repo.Create(item); err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to create memory day")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateHandler 整体覆盖纪念日字段
func (h *Handler) UpdateHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req memoryDayRequest
	if !common.BindJSON(c, &req) {
		return
	}

	item, err := h.repo.Update(id, *req.Title, req.Date, req.Description, req.icon())
	if err != nil {
		if errors.Is(err, memorydays.ErrMemoryDayNotFound) {
			common.RespondNotFound(c, "Item not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to update memory day")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteHandler 删除纪念日及其照片记录
func (h *Handler) DeleteHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, memorydays.ErrMemoryDayNotFound) {
			common.RespondNotFound(c, "Item not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to delete memory day")
		return
	}
	common.RespondAck(c)
}
