package memorydays

import (
	"github.com/qlxz/couple-space/database/models"
	"github.com/qlxz/couple-space/database/repo/memorydays"
	"github.com/qlxz/couple-space/storage"
)

// Handler 纪念日处理器
type Handler struct {
	repo     *memorydays.Repository
	store    *storage.LocalStore
	maxLimit int
}

// NewHandler 创建新的纪念日处理器
func NewHandler(repo *memorydays.Repository, store *storage.LocalStore, maxLimit int) *Handler {
	return &Handler{repo: repo, store: store, maxLimit: maxLimit}
}

// 自由文本字段用指针校验：只要求字段出现，空字符串是合法输入
type memoryDayRequest struct {
	Title       *string     `json:"title" binding:"required,max=100"`
	Date        models.Date `json:"date" binding:"required"`
	Description *string     `json:"description"`
	Icon        string      `json:"icon"`
}

func (r *memoryDayRequest) icon() string {
	if r.Icon == "" {
		return models.DefaultMemoryDayIcon
	}
	return r.Icon
}
