package models

// SiteConfig 站点配置，单例行（只读写第一行）
type SiteConfig struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	BoyName    string   `gorm:"type:varchar(50)" json:"boy_name"`
	GirlName   string   `gorm:"type:varchar(50)" json:"girl_name"`
	StartDate  DateTime `json:"start_date"`
	BgImage    *string  `gorm:"type:varchar(255)" json:"bg_image"`
	MemoryBg   *string  `gorm:"type:varchar(255)" json:"memory_bg"`
	AlbumBg    *string  `gorm:"type:varchar(255)" json:"album_bg"`
	LovelistBg *string  `gorm:"type:varchar(255)" json:"lovelist_bg"`
	BoyAvatar  *string  `gorm:"type:varchar(255)" json:"boy_avatar"`
	GirlAvatar *string  `gorm:"type:varchar(255)" json:"girl_avatar"`
	SiteTitle  string   `gorm:"type:varchar(100)" json:"site_title"`
}

func (SiteConfig) TableName() string {
	return "site_config"
}
