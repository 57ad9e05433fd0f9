package repository

import (
	"github.com/mautops/employee-gin/internal/model"
	"gorm.io/gorm"
)

// DepartmentRepository 部门仓储接口
type DepartmentRepository interface {
	WithTx(tx *gorm.DB) DepartmentRepository
	Create(department *model.Department) error
	FindAll() ([]*model.Department, error)
	FindByName(name string) (*model.Department, error)
	ExistsByName(name string) (bool, error)
	Delete(id uint) error
}

// departmentRepository 部门仓储实现
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository 创建部门仓储
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *departmentRepository) WithTx(tx *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: tx}
}

// Create 新建部门
func (r *departmentRepository) Create(department *model.Department) error {
	return r.db.Create(department).Error
}

// FindAll 查找所有部门
func (r *departmentRepository) FindAll() ([]*model.Department, error) {
	var departments []*model.Department
	err := r.db.Order("id ASC").Find(&departments).Error
	return departments, err
}

// FindByName 根据名称查找部门
func (r *departmentRepository) FindByName(name string) (*model.Department, error) {
	var department model.Department
	if err := r.db.Where("name = ?", name).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// ExistsByName 判断部门名称是否存在
func (r *departmentRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Department{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Delete 删除部门
// 删除部门不回溯修改已有员工的部门字段
func (r *departmentRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
