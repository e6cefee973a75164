package models

// 用户角色常量
const (
	RoleAdmin = "admin"
	RoleBoy   = "boy"
	RoleGirl  = "girl"
)

type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string `gorm:"type:varchar(50);uniqueIndex" json:"username"`
	HashedPassword string `gorm:"type:varchar(100)" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	Role           string `gorm:"type:varchar(20);default:admin" json:"role"` // boy, girl, admin
}

func (User) TableName() string {
	return "users"
}
