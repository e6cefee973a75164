package accounts

import (
	"errors"
	"fmt"

	"github.com/qlxz/couple-space/database/models"
	"github.com/qlxz/couple-space/utils"
	cryptopackage "github.com/qlxz/couple-space/utils/crypto"
	"gorm.io/gorm"
)

// ErrUserNotFound 用户不存在错误
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken 用户名已被注册
var ErrUsernameTaken = errors.New("username already registered")

// Repository 账户仓库
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的账户仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetUserByUsername 通过用户名获取用户
func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserExists 检查用户是否存在
func (r *Repository) UserExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// CreateUser 创建用户；用户名重复时返回 ErrUsernameTaken
func (r *Repository) CreateUser(user *models.User) error {
	exists, err := r.UserExists(user.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}
	return r.db.Create(user).Error
}

// UpdatePassword 更新用户密码哈希
func (r *Repository) UpdatePassword(userID uint, hashedPassword string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("hashed_password", hashedPassword).Error
}

// CreateDefaultAdminUser 创建默认管理员用户
// 数据库中没有任何用户时生成随机密码，返回该密码让调用者打印一次
func (r *Repository) CreateDefaultAdminUser() (string, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to check user existence: %w", err)
	}
	if count > 0 {
		return "", nil
	}

	randomPassword, err := utils.GenerateRandomToken(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate random password: %w", err)
	}

	hashedPassword, err := cryptopackage.GenerateFromPassword(randomPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash default password: %w", err)
	}

	user := &models.User{
		Username:       "admin",
		HashedPassword: hashedPassword,
		IsActive:       true,
		Role:           models.RoleAdmin,
	}
	if err := r.db.Create(user).Error; err != nil {
		return "", fmt.Errorf("failed to create default admin user: %w", err)
	}

	return randomPassword, nil
}
