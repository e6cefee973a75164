package albums

import (
	"errors"

	"github.com/qlxz/couple-space/database/models"
	"gorm.io/gorm"
)

// ErrAlbumNotFound 相册不存在
var ErrAlbumNotFound = errors.New("album not found")

// ErrPhotoNotFound 相册照片不存在
var ErrPhotoNotFound = errors.New("album photo not found")

// Repository 相册仓库 - 封装所有相册相关的数据库操作
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的相册仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List 按日期倒序分页获取相册及其照片和评论
func (r *Repository) List(skip, limit int) ([]*models.Album, error) {
	var items []*models.Album
	err := r.db.Preload("Photos").Preload("Comments").
		Order("date desc").Offset(skip).Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Album{}
	}
	for _, item := range items {
		normalize(item)
	}
	return items, nil
}

// GetByID 获取相册及其照片和评论
func (r *Repository) GetByID(id uint) (*models.Album, error) {
	var item models.Album
	err := r.db.Preload("Photos").Preload("Comments").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}
	normalize(&item)
	return &item, nil
}

// CreateWithPhotos 创建相册，并在同一事务内为每个 URL 插入一条照片记录
func (r *Repository) CreateWithPhotos(album *models.Album, photoURLs []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(album).Error; err != nil {
			return err
		}
		for _, url := range photoURLs {
			photo := models.AlbumPhoto{AlbumID: album.ID, URL: url}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
			album.Photos = append(album.Photos, photo)
		}
		return nil
	})
	if err != nil {
		return err
	}
	normalize(album)
	return nil
}

// UpdateMeta 只更新描述和日期；照片列表由上传/删除接口单独管理
func (r *Repository) UpdateMeta(id uint, description string, date models.Date) (*models.Album, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"description": description,
		"date":        date,
	}
	if err := r.db.Model(&models.Album{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete 删除相册，级联删除其照片和评论行
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item models.Album
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAlbumNotFound
			}
			return err
		}

		if err := tx.Where("album_id = ?", id).Delete(&models.AlbumPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("album_id = ?", id).Delete(&models.AlbumComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

// AddPhoto 为相册追加照片记录
func (r *Repository) AddPhoto(albumID uint, url string) (*models.AlbumPhoto, error) {
	photo := &models.AlbumPhoto{AlbumID: albumID, URL: url}
	if err := r.db.Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// GetPhotoByID 获取照片记录
func (r *Repository) GetPhotoByID(photoID uint) (*models.AlbumPhoto, error) {
	var photo models.AlbumPhoto
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
	res := r.db.Delete(&models.AlbumPhoto{}, photoID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

// AddComment 为相册追加评论，返回含最新评论的相册
func (r *Repository) AddComment(albumID uint, username, content string) (*models.Album, error) {
	if _, err := r.GetByID(albumID); err != nil {
		return nil, err
	}

	comment := models.AlbumComment{
		AlbumID:  albumID,
		Username: username,
		Content:  content,
	}
	if err := r.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return r.GetByID(albumID)
}

func normalize(album *models.Album) {
	if album.Photos == nil {
		album.Photos = []models.AlbumPhoto{}
	}
	if album.Comments == nil {
		album.Comments = []models.AlbumComment{}
	}
}
