package models

import "time"

type LoveListItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	IsCompleted bool      `gorm:"default:false" json:"is_completed"`
	ImageURL    *string   `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LoveListItem) TableName() string {
	return "love_list"
}
