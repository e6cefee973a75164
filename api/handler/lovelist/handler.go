package lovelist

import (
	"github.com/qlxz/couple-space/database/repo/lovelist"
	"github.com/qlxz/couple-space/storage"
)

// Handler 心愿清单处理器
type Handler struct {
	repo     *lovelist.Repository
	store    *storage.LocalStore
	maxLimit int
}

// NewHandler 创建新的心愿清单处理器
func NewHandler(repo *lovelist.Repository, store *storage.LocalStore, maxLimit int) *Handler {
	return &Handler{repo: repo, store: store, maxLimit: maxLimit}
}

// 自由文本字段用指针校验：只要求字段出现，空字符串是合法输入
type loveListRequest struct {
	Title       *string `json:"title" binding:"required,max=255"`
	IsCompleted bool    `json:"is_completed"`
	ImageURL    *string `json:"image_url"`
}
