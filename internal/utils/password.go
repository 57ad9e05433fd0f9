package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GeneratePassword 生成一个 8 位随机密码
// 管理员重置员工密码时使用,明文只返回一次
func GeneratePassword() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
