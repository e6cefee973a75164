package albums

import (
	"github.com/qlxz/couple-space/database/models"
	"github.com/qlxz/couple-space/database/repo/albums"
	"github.com/qlxz/couple-space/storage"
)

// Handler 相册处理器
type Handler struct {
	repo     *albums.Repository
	store    *storage.LocalStore
	maxLimit int
}

// NewHandler 创建新的相册处理器
func NewHandler(repo *albums.Repository, store *storage.LocalStore, maxLimit int) *Handler {
	return &Handler{repo: repo, store: store, maxLimit: maxLimit}
}

// 自由文本字段用指针校验：只要求字段出现，空字符串是合法输入
type albumRequest struct {
	Description *string     `json:"description" binding:"required"`
	Date        models.Date `json:"date" binding:"required"`
	Photos      []string    `json:"photos"` // 照片 URL 列表，仅创建时写入
}
