package models

import "time"

// DefaultMemoryDayIcon 未指定时使用的纪念日图标
const DefaultMemoryDayIcon = "❤️"

type MemoryDay struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string           `gorm:"type:varchar(100);index" json:"title"`
	Date        Date             `json:"date"`
	Description *string          `gorm:"type:text" json:"description"`
	Icon        string           `gorm:"type:varchar(50)" json:"icon"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	Photos      []MemoryDayPhoto `gorm:"foreignKey:MemoryDayID" json:"photos"`
}

func (MemoryDay) TableName() string {
	return "memory_days"
}

type MemoryDayPhoto struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MemoryDayID uint   `gorm:"index" json:"memory_day_id"`
	URL         string `gorm:"type:varchar(255)" json:"url"`
}

func (MemoryDayPhoto) TableName() string {
	return "memory_day_photos"
}
