package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/qlxz/couple-space/database/models"
	"github.com/qlxz/couple-space/database/repo/accounts"
	cryptopackage "github.com/qlxz/couple-space/utils/crypto"
)

// ErrInvalidCredentials 用户名不存在或密码错误
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ErrWrongOldPassword 修改密码时旧密码校验失败
var ErrWrongOldPassword = errors.New("incorrect old password")

// LoginService 登录与账户服务
type LoginService struct {
	accountsRepo *accounts.Repository
	tokens       *TokenService
}

// NewLoginService 创建新的登录服务
func NewLoginService(accountsRepo *accounts.Repository, tokens *TokenService) *LoginService {
	return &LoginService{
		accountsRepo: accountsRepo,
		tokens:       tokens,
	}
}

// ValidateCredentials 验证用户凭据
func (s *LoginService) ValidateCredentials(username, password string) (*models.User, bool, error) {
	user, err := s.accountsRepo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, accounts.ErrUserNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := cryptopackage.ComparePasswordAndHash(password, user.HashedPassword)
	if err != nil {
		return nil, false, fmt.Errorf("password comparison failed: %w", err)
	}

	return user, ok, nil
}

// Login 验证凭据并签发 access token
func (s *LoginService) Login(username, password string) (string, time.Time, error) {
	user, valid, err := s.ValidateCredentials(username, password)
	if err != nil {
		return "", time.Time{}, err
	}
	if !valid {
		return "", time.Time{}, ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(user.Username)
}

// Register 注册用户，角色固定为 admin；用户名重复时返回 accounts.ErrUsernameTaken
func (s *LoginService) Register(username, password string) (*models.User, error) {
	hashedPassword, err := cryptopackage.GenerateFromPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:       username,
		HashedPassword: hashedPassword,
		IsActive:       true,
		Role:           models.RoleAdmin,
	}
	if err := s.accountsRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword 校验旧密码后覆盖密码哈希
func (s *LoginService) ChangePassword(user *models.User, oldPassword, newPassword string) error {
	ok, err := cryptopackage.ComparePasswordAndHash(oldPassword, user.HashedPassword)
	if err != nil {
		return fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		return ErrWrongOldPassword
	}

	hashedPassword, err := cryptopackage.GenerateFromPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.accountsRepo.UpdatePassword(user.ID, hashedPassword)
}
