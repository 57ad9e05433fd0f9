package model

import (
	"errors"
	"time"
)

// 报告审核状态
// Pending 为初始状态,Approved/Rejected 为终态,不允许二次审核
const (
	ReportStatusPending  = "Pending"
	ReportStatusApproved = "Approved"
	ReportStatusRejected = "Rejected"
)

// Report 员工报告数据模型
type Report struct {
	ID           uint       `gorm:"primaryKey"`
	EmployeeID   uint       `gorm:"not null;index"`
	Title        string     `gorm:"type:varchar(200);not null"`
	Type         string     `gorm:"type:varchar(50);not null"`
	Content      string     `gorm:"type:text;not null"`
	DocumentRef  string     `gorm:"type:varchar(500)"` // 上传文档的引用,可为空
	Status       string     `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time  `gorm:"not null;index"`
	ReviewedAt   *time.Time // 审核时间,未审核时为 NULL
	ReviewerName *string    `gorm:"type:varchar(100)"`
	Remarks      *string    `gorm:"type:text"`
}

// TableName 指定表名
func (Report) TableName() string {
	return "reports"
}

// ValidStatus 判断状态是否合法
func ValidStatus(s string) bool {
	return s == ReportStatusPending || s == ReportStatusApproved || s == ReportStatusRejected
}

// Reviewed 判断报告是否已审核
func (r *Report) Reviewed() bool {
	return r.Status != ReportStatusPending
}

// Validate 验证报告模型
func (r *Report) Validate() error {
	if r.EmployeeID == 0 {
		return errors.New("employee ID is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	if !ValidStatus(r.Status) {
		return errors.New("report status is invalid")
	}
	if r.Reviewed() && (r.ReviewedAt == nil || r.ReviewerName == nil) {
		return errors.New("reviewed report requires reviewer and review time")
	}
	if !r.Reviewed() && (r.ReviewedAt != nil || r.ReviewerName != nil) {
		return errors.New("pending report cannot carry review fields")
	}
	return nil
}
