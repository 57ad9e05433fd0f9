package model

import (
	"errors"
	"time"
)

// AuditLog 审计日志数据模型
// 记录所有改变账户/员工/报告状态的管理操作
type AuditLog struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)"`
	UserID       string    `gorm:"type:varchar(64);not null;index"`
	Action       string    `gorm:"type:varchar(64);not null;index"` // register/approve/reject/provision/review/delete
	ResourceType string    `gorm:"type:varchar(32);not null"`       // account/employee/report
	ResourceID   string    `gorm:"type:varchar(64);not null;index"`
	RequestID    string    `gorm:"type:varchar(64);index"`
	IP           string    `gorm:"type:varchar(45)"` // IPv4 或 IPv6
	Details      []byte    `gorm:"type:text"`        // 操作详情(JSON)
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName 指定表名
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Validate 验证审计日志模型
func (l *AuditLog) Validate() error {
	if l.ID == "" {
		return errors.New("audit log ID is required")
	}
	if l.UserID == "" {
		return errors.New("user ID is required")
	}
	if l.Action == "" {
		return errors.New("action is required")
	}
	if l.ResourceType == "" {
		return errors.New("resource type is required")
	}
	if l.ResourceID == "" {
		return errors.New("resource ID is required")
	}
	return nil
}
