package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/repository"
	"github.com/mautops/employee-gin/internal/utils"
	"gorm.io/gorm"
)

// EmployeeService 员工目录服务接口
type EmployeeService interface {
	GetByID(id uint) (*model.Employee, error)
	GetByAccountID(accountID uint) (*model.Employee, error)
	ListAll() ([]*model.Employee, error)
	ListByDepartment(name string) ([]*model.Employee, error)
	Update(ctx context.Context, id uint, patch *EmployeePatch) (*model.Employee, error)
	UpdateOwnProfile(ctx context.Context, accountID uint, patch *EmployeePatch) (*model.Employee, error)
	Delete(ctx context.Context, id uint) error
	ResetPassword(ctx context.Context, id uint) (string, error)
}

// EmployeePatch 员工更新补丁,nil 字段保持不变
type EmployeePatch struct {
	FullName   *string `json:"fullName"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	IsActive   *bool   `json:"isActive"`
}

// employeeService 员工目录服务实现
type employeeService struct {
	db             *gorm.DB
	employeeRepo   repository.EmployeeRepository
	accountRepo    repository.AccountRepository
	reportRepo     repository.ReportRepository
	departmentRepo repository.DepartmentRepository
	auditLogSvc    AuditLogService
}

// NewEmployeeService 创建员工目录服务
func NewEmployeeService(
	db *gorm.DB,
	employeeRepo repository.EmployeeRepository,
	accountRepo repository.AccountRepository,
	reportRepo repository.ReportRepository,
	departmentRepo repository.DepartmentRepository,
	auditLogSvc AuditLogService,
) EmployeeService {
	return &employeeService{
		db:             db,
		employeeRepo:   employeeRepo,
		accountRepo:    accountRepo,
		reportRepo:     reportRepo,
		departmentRepo: departmentRepo,
		auditLogSvc:    auditLogSvc,
	}
}

// GetByID 根据 ID 获取员工
func (s *employeeService) GetByID(id uint) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	return employee, nil
}

// GetByAccountID 根据账户 ID 获取员工
func (s *employeeService) GetByAccountID(accountID uint) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByAccountID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoLinkedEmployee
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	return employee, nil
}

// ListAll 列出所有员工
func (s *employeeService) ListAll() ([]*model.Employee, error) {
	return s.employeeRepo.FindAll()
}

// ListByDepartment 按部门列出员工
func (s *employeeService) ListByDepartment(name string) ([]*model.Employee, error) {
	return s.employeeRepo.FindByDepartment(name)
}

// Update 管理员更新员工资料
func (s *employeeService) Update(ctx context.Context, id uint, patch *EmployeePatch) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	return s.applyPatch(ctx, employee, patch)
}

// UpdateOwnProfile 员工更新本人资料
func (s *employeeService) UpdateOwnProfile(ctx context.Context, accountID uint, patch *EmployeePatch) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByAccountID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoLinkedEmployee
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	return s.applyPatch(ctx, employee, patch)
}

// applyPatch 应用补丁并保存
func (s *employeeService) applyPatch(ctx context.Context, employee *model.Employee, patch *EmployeePatch) (*model.Employee, error) {
	if patch.FullName != nil {
		if err := utils.ValidateFullName(*patch.FullName); err != nil {
			return nil, err
		}
		employee.FullName = *patch.FullName
	}
	if patch.Email != nil {
		if err := utils.ValidateEmail(*patch.Email); err != nil {
			return nil, err
		}
		employee.Email = model.NormalizeEmail(*patch.Email)
	}
	if patch.Department != nil {
		exists, err := s.departmentRepo.ExistsByName(*patch.Department)
		if err != nil {
			return nil, fmt.Errorf("failed to check department: %w", err)
		}
		if !exists {
			return nil, ErrInvalidDepartment
		}
		employee.Department = *patch.Department
	}
	if patch.Position != nil {
		employee.Position = *patch.Position
	}
	if patch.IsActive != nil {
		employee.IsActive = *patch.IsActive
	}

	if err := s.employeeRepo.Save(employee); err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	return employee, nil
}

// Delete 删除员工,级联删除其账户与全部报告
// 单个事务内执行;重复删除返回 ErrEmployeeNotFound,不影响其他员工的数据
func (s *employeeService) Delete(ctx context.Context, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		employees := s.employeeRepo.WithTx(tx)
		accounts := s.accountRepo.WithTx(tx)
		reports := s.reportRepo.WithTx(tx)

		employee, err := employees.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to load employee: %w", err)
		}

		if err := reports.DeleteByEmployeeID(employee.ID); err != nil {
			return fmt.Errorf("failed to delete reports: %w", err)
		}
		if err := employees.Delete(employee.ID); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		// 账户是更长生命周期的锚点,最后移除
		if err := accounts.Delete(employee.AccountID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.auditLogSvc != nil {
		_ = s.auditLogSvc.RecordAction(ctx, actorFromContext(ctx), "delete", "employee", fmt.Sprint(id), nil)
	}

	return nil
}

// ResetPassword 重置员工密码,返回一次性明文
// 明文不落库,调用方负责带外转交给员工
func (s *employeeService) ResetPassword(ctx context.Context, id uint) (string, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmployeeNotFound
		}
		return "", fmt.Errorf("failed to load employee: %w", err)
	}

	account, err := s.accountRepo.FindByID(employee.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("failed to load account: %w", err)
	}

	newPassword := utils.GeneratePassword()
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = hash

	if err := s.accountRepo.Save(account); err != nil {
		return "", fmt.Errorf("failed to save account: %w", err)
	}

	if s.auditLogSvc != nil {
		_ = s.auditLogSvc.RecordAction(ctx, actorFromContext(ctx), "reset_password", "employee", fmt.Sprint(id), nil)
	}

	return newPassword, nil
}
