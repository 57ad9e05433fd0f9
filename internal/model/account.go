package model

import (
	"errors"
	"strings"
	"time"
)

// Account 登录账户数据模型
// 邮箱统一小写存储,唯一索引即可保证大小写不敏感的唯一性
type Account struct {
	ID           uint      `gorm:"primaryKey"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         Role      `gorm:"type:varchar(20);not null;index"`
	IsApproved   bool      `gorm:"not null;default:false;index"`
	Department   *string   `gorm:"type:varchar(50)"` // 审批通过前为空
	Position     *string   `gorm:"type:varchar(50)"`
	RequestedAt  time.Time `gorm:"not null;index"` // 注册申请时间
}

// TableName 指定表名
func (Account) TableName() string {
	return "accounts"
}

// NormalizeEmail 规范化邮箱(小写、去空白)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate 验证账户模型
func (a *Account) Validate() error {
	if a.FullName == "" {
		return errors.New("full name is required")
	}
	if a.Email == "" {
		return errors.New("email is required")
	}
	if a.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	if !a.Role.Valid() {
		return errors.New("role is invalid")
	}
	return nil
}
