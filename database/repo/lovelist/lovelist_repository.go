package lovelist

import (
	"errors"

	"github.com/qlxz/couple-space/database/models"
	"gorm.io/gorm"
)

// ErrItemNotFound 心愿不存在
var ErrItemNotFound = errors.New("love list item not found")

// Repository 心愿清单仓库
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的心愿清单仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List 按创建时间倒序分页获取心愿
func (r *Repository) List(skip, limit int) ([]*models.LoveListItem, error) {
	var items []*models.LoveListItem
	err := r.db.Order("created_at desc").Offset(skip).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.LoveListItem{}
	}
	return items, nil
}

// GetByID 获取单条心愿
func (r *Repository) GetByID(id uint) (*models.LoveListItem, error) {
	var item models.LoveListItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建心愿
func (r *Repository) Create(item *models.LoveListItem) error {
	return r.db.Create(item).Error
}

// Update 整体覆盖心愿的可变字段
func (r *Repository) Update(id uint, title string, isCompleted bool, imageURL *string) (*models.LoveListItem, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":        title,
		"is_completed": isCompleted,
		"image_url":    imageURL,
	}
	if err := r.db.Model(&models.LoveListItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete 删除心愿
func (r *Repository) Delete(id uint) error {
	res := r.db.Delete(&models.LoveListItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// SetImageURL 更新心愿配图地址
func (r *Repository) SetImageURL(id uint, url string) (*models.LoveListItem, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.LoveListItem{}).Where("id = ?", id).
		Update("image_url", url).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}
