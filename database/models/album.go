package models

import "time"

type Album struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string         `gorm:"type:text" json:"description"`
	Date        Date           `json:"date"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	Photos      []AlbumPhoto   `gorm:"foreignKey:AlbumID" json:"photos"`
	Comments    []AlbumComment `gorm:"foreignKey:AlbumID" json:"comments"`
}

func (Album) TableName() string {
	return "albums"
}

type AlbumPhoto struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AlbumID uint   `gorm:"index" json:"album_id"`
	URL     string `gorm:"type:varchar(255)" json:"url"`
}

func (AlbumPhoto) TableName() string {
	return "album_photos"
}

// AlbumComment 相册评论；username 为留言者自填昵称，不关联 users 表
type AlbumComment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AlbumID   uint      `gorm:"index" json:"album_id"`
	Username  string    `gorm:"type:varchar(50)" json:"username"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AlbumComment) TableName() string {
	return "album_comments"
}
