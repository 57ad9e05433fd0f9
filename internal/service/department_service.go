package service

import (
	"errors"
	"fmt"

	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/repository"
	"github.com/mautops/employee-gin/internal/utils"
	"gorm.io/gorm"
)

// DepartmentService 部门目录服务接口
type DepartmentService interface {
	List() ([]*model.Department, error)
	Create(name string) (*model.Department, error)
	Delete(id uint) error
}

// departmentService 部门目录服务实现
type departmentService struct {
	departmentRepo repository.DepartmentRepository
}

// NewDepartmentService 创建部门目录服务
func NewDepartmentService(departmentRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{departmentRepo: departmentRepo}
}

// List 列出所有部门
func (s *departmentService) List() ([]*model.Department, error) {
	return s.departmentRepo.FindAll()
}

// Create 新增部门
func (s *departmentService) Create(name string) (*model.Department, error) {
	trimmed, err := utils.TrimAndValidate(name, 50)
	if err != nil {
		return nil, err
	}

	exists, err := s.departmentRepo.ExistsByName(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to check department: %w", err)
	}
	if exists {
		return nil, ErrDuplicateDepartment
	}

	department := &model.Department{Name: trimmed}
	if err := s.departmentRepo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return department, nil
}

// Delete 删除部门
// 已有员工的 department 字段不受影响(参照关系仅为信息性)
func (s *departmentService) Delete(id uint) error {
	if err := s.departmentRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}
