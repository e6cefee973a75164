package siteconfig

import (
	"errors"

	"github.com/qlxz/couple-space/database/models"
	"gorm.io/gorm"
)

// Repository 站点配置仓库，单例行语义：永远只读写第一行
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的站点配置仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// First 返回第一行配置；不存在时返回 (nil, nil)
func (r *Repository) First() (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := r.db.Order("id").First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Upsert 覆盖第一行配置，不存在时创建
func (r *Repository) Upsert(in *models.SiteConfig) (*models.SiteConfig, error) {
	existing, err := r.First()
	if err != nil {
		return nil, err
	}

	if existing == nil {
		in.ID = 0
		if err := r.db.Create(in).Error; err != nil {
			return nil, err
		}
		return in, nil
	}

	in.ID = existing.ID
	if err := r.db.Save(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}
