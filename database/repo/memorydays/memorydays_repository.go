package memorydays

import (
	"errors"

	"github.com/qlxz/couple-space/database/models"
	"gorm.io/gorm"
)

// ErrMemoryDayNotFound 纪念日不存在
var ErrMemoryDayNotFound = errors.New("memory day not found")

// ErrPhotoNotFound 纪念日照片不存在
var ErrPhotoNotFound = errors.New("memory day photo not found")

// Repository 纪念日仓库 - 封装所有纪念日相关的数据库操作
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的纪念日仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List 按日期倒序分页获取纪念日及其照片
func (r *Repository) List(skip, limit int) ([]*models.MemoryDay, error) {
	var items []*models.MemoryDay
	err := r.db.Preload("Photos").
		Order("date desc").Offset(skip).Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.MemoryDay{}
	}
	for _, item := range items {
		if item.Photos == nil {
			item.Photos = []models.MemoryDayPhoto{}
		}
	}
	return items, nil
}

// GetByID 获取纪念日及其照片
func (r *Repository) GetByID(id uint) (*models.MemoryDay, error) {
	var item models.MemoryDay
	err := r.db.Preload("Photos").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoryDayNotFound
		}
		return nil, err
	}
	if item.Photos == nil {
		item.Photos = []models.MemoryDayPhoto{}
	}
	return &item, nil
}

// Create 创建纪念日
func (r *Repository) Create(item *models.MemoryDay) error {
	if err := r.db.Create(item).Error; err != nil {
		return err
	}
	if item.Photos == nil {
		item.Photos = []models.MemoryDayPhoto{}
	}
	return nil
}

// Update 整体覆盖纪念日的可变字段
func (r *Repository) Update(id uint, title string, date models.Date, description *string, icon string) (*models.MemoryDay, error) {
	item, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       title,
		"date":        date,
		"description": description,
		"icon":        icon,
	}
	if err := r.db.Model(&models.MemoryDay{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(item.ID)
}

// Delete 删除纪念日，级联删除其照片行
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item models.MemoryDay
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemoryDayNotFound
			}
			return err
		}

		if err := tx.Where("memory_day_id = ?", id).Delete(&models.MemoryDayPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

// AddPhoto 为纪念日追加照片记录
func (r *Repository) AddPhoto(memoryDayID uint, url string) (*models.MemoryDayPhoto, error) {
	photo := &models.MemoryDayPhoto{MemoryDayID: memoryDayID, URL: url}
	if err := r.db.Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// GetPhotoByID 获取照片记录
func (r *Repository) GetPhotoByID(photoID uint) (*models.MemoryDayPhoto, error) {
	var photo models.MemoryDayPhoto
	err := r.db.First(&photo, "id = ?", photoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// DeletePhoto 删除照片记录
func (r *Repository) DeletePhoto(photoID uint) error {
	res := r.db.Delete(&models.MemoryDayPhoto{}, photoID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}
