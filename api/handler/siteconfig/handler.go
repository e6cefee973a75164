package siteconfig

import (
	"github.com/qlxz/couple-space/database/repo/siteconfig"
	"github.com/qlxz/couple-space/storage"
)

// Handler 站点配置处理器
type Handler struct {
	repo  *siteconfig.Repository
	store *storage.LocalStore
}

// NewHandler 创建新的站点配置处理器
func NewHandler(repo *siteconfig.Repository, store *storage.LocalStore) *Handler {
	return &Handler{repo: repo, store: store}
}
