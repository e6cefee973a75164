package utils

import (
	"path/filepath"
	"strings"
)

// allowedImageExts 允许上传的图片扩展名
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// GetExtensionFromFilename 从文件名获取扩展名（小写）
func GetExtensionFromFilename(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsAllowedImageExtension 检查扩展名是否为允许的图片类型
func IsAllowedImageExtension(ext string) bool {
	return allowedImageExts[strings.ToLower(ext)]
}
