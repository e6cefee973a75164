package storage

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/qlxz/couple-space/utils"
)

// PublicURLPrefix 上传文件对外暴露的 URL 前缀
const PublicURLPrefix = "/static/uploads/"

// ErrExtensionNotAllowed 上传文件扩展名不在白名单内
var ErrExtensionNotAllowed = errors.New("file extension is not allowed")

// SaveUpload 以随机文件名（prefix_uuid.ext）保存 multipart 文件，返回公开 URL
// 随机文件名同时是私密图片唯一的防猜测手段
func (s *LocalStore) SaveUpload(fh *multipart.FileHeader, prefix string) (string, error) {
	ext := utils.GetExtensionFromFilename(fh.Filename)
	if ext != "" && !utils.IsAllowedImageExtension(ext) {
		return "", fmt.Errorf("%w: %s", ErrExtensionNotAllowed, ext)
	}

	name := uuid.New().String() + ext
	if prefix != "" {
		name = prefix + "_" + name
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { _ = src.Close() }()

	if err := s.Save(name, src); err != nil {
		return "", err
	}

	return PublicURLPrefix + name, nil
}

// DeleteByURL 按公开 URL 尽力删除底层文件
// 文件缺失或删除失败只记录日志，不影响调用方删除数据库记录
func (s *LocalStore) DeleteByURL(url string) {
	if !strings.HasPrefix(url, PublicURLPrefix) {
		return
	}

	name := path.Base(url)
	if err := s.Delete(name); err != nil {
		log.Printf("Failed to delete file for %s: %v", url, err)
	}
}
