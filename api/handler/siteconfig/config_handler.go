package siteconfig

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/models"
)

// 自由文本字段用指针校验：只要求字段出现，空字符串是合法输入
type siteConfigRequest struct {
	BoyName    *string         `json:"boy_name" binding:"required,max=50"`
	GirlName   *string         `json:"girl_name" binding:"required,max=50"`
	StartDate  models.DateTime `json:"start_date" binding:"required"`
	BgImage    *string         `json:"bg_image"`
	MemoryBg   *string         `json:"memory_bg"`
	AlbumBg    *string         `json:"album_bg"`
	LovelistBg *string         `json:"lovelist_bg"`
	BoyAvatar  *string         `json:"boy_avatar"`
	GirlAvatar *string         `json:"girl_avatar"`
	SiteTitle  *string         `json:"site_title" binding:"required,max=100"`
}

// defaultSiteConfig 数据库中尚无配置行时返回的占位配置，永远不落库
func defaultSiteConfig() *models.SiteConfig {
	return &models.SiteConfig{
		ID:        0,
		BoyName:   "Boy",
		GirlName:  "Girl",
		StartDate: models.DateTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)),
		SiteTitle: "Our Love Story",
	}
}

// GetHandler 返回站点配置；没有配置行时返回硬编码默认值（id 为 0）
func (h *Handler) GetHandler(c *gin.Context) {
	cfg, err := h.repo.First()
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to get site config")
		return
	}
	if cfg == nil {
		cfg = defaultSiteConfig()
	}
	c.JSON(http.StatusOK, cfg)
}

// UpsertHandler 覆盖单例配置行，不存在时创建
func (h *Handler) UpsertHandler(c *gin.Context) {
	var req siteConfigRequest
	if !common.BindJSON(c, &req) {
		return
	}

	cfg, err := h.repo.Upsert(&models.SiteConfig{
		BoyName:    *req.BoyName,
		GirlName:   *req.GirlName,
		StartDate:  req.StartDate,
		BgImage:    req.BgImage,
		MemoryBg:   req.MemoryBg,
		AlbumBg:    req.AlbumBg,
		LovelistBg: req.LovelistBg,
		BoyAvatar:  req.BoyAvatar,
		GirlAvatar: req.GirlAvatar,
		SiteTitle:  *req.SiteTitle,
	})
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to save site config")
		return
	}

	c.JSON(http.StatusOK, cfg)
}
