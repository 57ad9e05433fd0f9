package model

import (
	"errors"
	"time"
)

// Employee 员工档案数据模型
// 只在账户审批通过或管理员直接录入时创建,与 Account 一一对应
type Employee struct {
	ID            uint      `gorm:"primaryKey"`
	FullName      string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(100);not null"`
	Department    string    `gorm:"type:varchar(50);not null;index"`
	Position      string    `gorm:"type:varchar(50);not null"`
	DateOfJoining time.Time `gorm:"not null"`
	Role          Role      `gorm:"type:varchar(20);not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	AccountID     uint      `gorm:"not null;uniqueIndex"` // 反向引用,一个账户至多一名员工
	Reports       []Report  `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (Employee) TableName() string {
	return "employees"
}

// Validate 验证员工模型
func (e *Employee) Validate() error {
	if e.FullName == "" {
		return errors.New("full name is required")
	}
	if e.Email == "" {
		return errors.New("email is required")
	}
	if e.Department == "" {
		return errors.New("department is required")
	}
	if e.AccountID == 0 {
		return errors.New("account ID is required")
	}
	return nil
}
