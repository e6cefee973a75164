package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore 上传文件的本地磁盘存储
type LocalStore struct {
	absBasePath string
}

// NewLocalStore 创建本地存储，基础目录不存在时自动创建
func NewLocalStore(basePath string) (*LocalStore, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for '%s': %w", basePath, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory '%s': %w", absPath, err)
	}

	return &LocalStore{
		absBasePath: absPath + string(os.PathSeparator),
	}, nil
}

// Save 保存文件到上传目录
func (s *LocalStore) Save(filename string, file io.Reader) error {
	dstPath, err := s.resolve(filename)
	if err != nil {
		return err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file '%s': %w", dstPath, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to copy file content to '%s': %w", dstPath, err)
	}

	return nil
}

// Delete 从上传目录删除文件
func (s *LocalStore) Delete(filename string) error {
	fullPath, err := s.resolve(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file to delete not found: %s", filename)
		}
		return fmt.Errorf("failed to delete local file '%s': %w", fullPath, err)
	}
	return nil
}

// Exists 检查文件是否存在
func (s *LocalStore) Exists(filename string) (bool, error) {
	fullPath, err := s.resolve(filename)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// BasePath 返回存储的基础路径
func (s *LocalStore) BasePath() string {
	return s.absBasePath
}

// resolve 校验文件名并拼接出绝对路径，防止目录遍历
func (s *LocalStore) resolve(filename string) (string, error) {
	if !IsValidFilename(filename) {
		return "", fmt.Errorf("invalid filename: %s", filename)
	}

	fullPath := filepath.Join(s.absBasePath, filename)
	if !strings.HasPrefix(fullPath, s.absBasePath) {
		return "", fmt.Errorf("invalid file path, potential directory traversal: %s", filename)
	}
	return fullPath, nil
}

// IsValidFilename 校验上传文件名是否合法
func IsValidFilename(name string) bool {
	if name == "" {
		return false
	}
	if filepath.IsAbs(name) {
		return false
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return false
	}

	for _, r := range name {
		if (r < 'a' || r > 'z') &&
			(r < 'A' || r > 'Z') &&
			(r < '0' || r > '9') &&
			r != '-' && r != '_' && r != '.' {
			return false
		}
	}
	return true
}
