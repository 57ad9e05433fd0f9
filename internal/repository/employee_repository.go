package repository

import (
	"github.com/mautops/employee-gin/internal/model"
	"gorm.io/gorm"
)

// EmployeeRepository 员工仓储接口
type EmployeeRepository interface {
	WithTx(tx *gorm.DB) EmployeeRepository
	Create(employee *model.Employee) error
	Save(employee *model.Employee) error
	FindByID(id uint) (*model.Employee, error)
	FindByAccountID(accountID uint) (*model.Employee, error)
	ExistsByAccountID(accountID uint) (bool, error)
	FindAll() ([]*model.Employee, error)
	FindByDepartment(name string) ([]*model.Employee, error)
	Delete(id uint) error
}

// employeeRepository 员工仓储实现
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository 创建员工仓储
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *employeeRepository) WithTx(tx *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: tx}
}

// Create 新建员工
func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

// Save 保存员工
func (r *employeeRepository) Save(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

// FindByID 根据 ID 查找员工
func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByAccountID 根据账户 ID 查找员工
func (r *employeeRepository) FindByAccountID(accountID uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("account_id = ?", accountID).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// ExistsByAccountID 判断账户是否已关联员工
func (r *employeeRepository) ExistsByAccountID(accountID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count > 0, err
}

// FindAll 查找所有员工
func (r *employeeRepository) FindAll() ([]*model.Employee, error) {
	var employees []*model.Employee
	err := r.db.Order("id ASC").Find(&employees).Error
	return employees, err
}

// FindByDepartment 按部门名称查找员工
func (r *employeeRepository) FindByDepartment(name string) ([]*model.Employee, error) {
	var employees []*model.Employee
	err := r.db.Where("department = ?", name).Order("id ASC").Find(&employees).Error
	return employees, err
}

// Delete 硬删除员工
func (r *employeeRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
