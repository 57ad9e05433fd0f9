package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/metrics"
	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/repository"
	"github.com/mautops/employee-gin/internal/storage"
	"github.com/mautops/employee-gin/internal/utils"
	"gorm.io/gorm"
)

// WorkflowService 审批与报告审核工作流
// 状态迁移的唯一入口:每个操作都在单个数据库事务内执行,
// 前置检查与写入属于同一个原子单元,不存在可被读者观察到的中间状态
type WorkflowService interface {
	Approve(ctx context.Context, accountID uint, req *ApproveAccountRequest) (*model.Employee, error)
	Reject(ctx context.Context, accountID uint) error
	AdminProvisionEmployee(ctx context.Context, req *ProvisionEmployeeRequest) (*model.Employee, error)
	SubmitReport(ctx context.Context, accountID uint, req *SubmitReportRequest) (*model.Report, error)
	ReviewReport(ctx context.Context, reportID uint, req *ReviewReportRequest) (*model.Report, error)
}

// ApproveAccountRequest 账户审批请求
type ApproveAccountRequest struct {
	Department string `json:"department" binding:"required"`
	Position   string `json:"position" binding:"required"`
}

// ProvisionEmployeeRequest 管理员直接录入员工的请求
// 绕过待审批队列,账户创建即为已审批状态
type ProvisionEmployeeRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Role       string `json:"role"`
}

// SubmitReportRequest 报告提交请求
type SubmitReportRequest struct {
	Title   string
	Type    string
	Content string
	// Document 为可选附件,非空时先同步上传,失败则整个提交中止
	Document         io.Reader
	DocumentFilename string
}

// ReviewReportRequest 报告审核请求
type ReviewReportRequest struct {
	Decision     string  `json:"decision" binding:"required"` // Approve 或 Reject
	ReviewerName string  `json:"reviewerName" binding:"required"`
	Remarks      *string `json:"remarks"`
}

// workflowService 工作流实现
type workflowService struct {
	db             *gorm.DB
	accountRepo    repository.AccountRepository
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	reportRepo     repository.ReportRepository
	documentStore  storage.DocumentStore
	auditLogSvc    AuditLogService
}

// NewWorkflowService 创建工作流服务
func NewWorkflowService(
	db *gorm.DB,
	accountRepo repository.AccountRepository,
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
	reportRepo repository.ReportRepository,
	documentStore storage.DocumentStore,
	auditLogSvc AuditLogService,
) WorkflowService {
	return &workflowService{
		db:             db,
		accountRepo:    accountRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		reportRepo:     reportRepo,
		documentStore:  documentStore,
		auditLogSvc:    auditLogSvc,
	}
}

// Approve 审批通过一个待审批账户,原子地创建关联员工
// 前置条件按序检查,第一个失败即返回:
// 账户存在 → 未审批 → 无既有员工 → 部门在目录中
func (s *workflowService) Approve(ctx context.Context, accountID uint, req *ApproveAccountRequest) (*model.Employee, error) {
	var employee *model.Employee

	err := s.db.Transaction(func(tx *gorm.DB) error {
		accounts := s.accountRepo.WithTx(tx)
		employees := s.employeeRepo.WithTx(tx)
		departments := s.departmentRepo.WithTx(tx)

		// 行级锁串行化同一账户上的并发审批,
		// 保证检查与插入之间不会穿插第二个审批事务
		account, err := accounts.FindByIDForUpdate(accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to load account: %w", err)
		}

		if account.IsApproved {
			return ErrAccountAlreadyApproved
		}

		hasEmployee, err := employees.ExistsByAccountID(accountID)
		if err != nil {
			return fmt.Errorf("failed to check employee: %w", err)
		}
		if hasEmployee {
			return ErrDuplicateEmployee
		}

		deptExists, err := departments.ExistsByName(req.Department)
		if err != nil {
			return fmt.Errorf("failed to check department: %w", err)
		}
		if !deptExists {
			return ErrInvalidDepartment
		}

		// 效果:翻转审批标记并创建员工,同一事务内要么都提交要么都回滚
		account.IsApproved = true
		account.Department = &req.Department
		account.Position = &req.Position
		if err := accounts.Save(account); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}

		employee = &model.Employee{
			FullName:      account.FullName,
			Email:         account.Email,
			Department:    req.Department,
			Position:      req.Position,
			DateOfJoining: time.Now(),
			Role:          account.Role,
			IsActive:      true,
			AccountID:     account.ID,
		}
		if err := employees.Create(employee); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordAccountApproval("approve")

	if s.auditLogSvc != nil {
		details := map[string]interface{}{"department": req.Department, "position": req.Position, "employee_id": employee.ID}
		_ = s.auditLogSvc.RecordAction(ctx, actorFromContext(ctx), "approve", "account", fmt.Sprint(accountID), details)
	}

	return employee, nil
}

// Reject 拒绝一个注册申请,硬删除账户
// 已审批账户不允许走拒绝路径(见 DESIGN.md 的开放问题裁决):
// 已入职的账户应通过员工删除级联移除
func (s *workflowService) Reject(ctx context.Context, accountID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		accounts := s.accountRepo.WithTx(tx)

		account, err := accounts.FindByIDForUpdate(accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to load account: %w", err)
		}

		if account.IsApproved {
			return ErrAccountAlreadyApproved
		}

		if err := accounts.Delete(accountID); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.RecordAccountApproval("reject")

	if s.auditLogSvc != nil {
		_ = s.auditLogSvc.RecordAction(ctx, actorFromContext(ctx), "reject", "account", fmt.Sprint(accountID), nil)
	}

	return nil
}

// AdminProvisionEmployee 管理员直接添加员工
// 原子地创建已审批账户与员工记录
func (s *workflowService) AdminProvisionEmployee(ctx context.Context, req *ProvisionEmployeeRequest) (*model.Employee, error) {
	if err := utils.ValidateFullName(req.FullName); err != nil {
		return nil, err
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var employee *model.Employee
	email := model.NormalizeEmail(req.Email)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		accounts := s.accountRepo.WithTx(tx)
		employees := s.employeeRepo.WithTx(tx)
		departments := s.departmentRepo.WithTx(tx)

		exists, err := accounts.ExistsByEmail(email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return ErrDuplicateEmail
		}

		deptExists, err := departments.ExistsByName(req.Department)
		if err != nil {
			return fmt.Errorf("failed to check department: %w", err)
		}
		if !deptExists {
			return ErrInvalidDepartment
		}

		now := time.Now()
		account := &model.Account{
			FullName:     req.FullName,
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			IsApproved:   true,
			Department:   &req.Department,
			Position:     &req.Position,
			RequestedAt:  now,
		}
		if err := accounts.Create(account); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		employee = &model.Employee{
			FullName:      req.FullName,
			Email:         email,
			Department:    req.Department,
			Position:      req.Position,
			DateOfJoining: now,
			Role:          role,
			IsActive:      true,
			AccountID:     account.ID,
		}
		if err := employees.Create(employee); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordAccountApproval("provision")

	if s.auditLogSvc != nil {
		details := map[string]interface{}{"email": email, "department": req.Department}
		_ = s.auditLogSvc.RecordAction(ctx, actorFromContext(ctx), "provision", "employee", fmt.Sprint(employee.ID), details)
	}

	return employee, nil
}

// SubmitReport 员工提交报告
// 附件上传在报告入库之前同步执行,上传失败整个提交中止,
// 不会留下指向失败上传的孤儿报告
func (s *workflowService) SubmitReport(ctx context.Context, accountID uint, req *SubmitReportRequest) (*model.Report, error) {
	title, err := utils.TrimAndValidate(req.Title, 200)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindByAccountID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoLinkedEmployee
		}
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	documentRef := ""
	if req.Document != nil {
		ref, err := s.documentStore.Upload(req.Document, req.DocumentFilename)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		documentRef = ref
	}

	report := &model.Report{
		EmployeeID:  employee.ID,
		Title:       title,
		Type:        req.Type,
		Content:     req.Content,
		DocumentRef: documentRef,
		Status:      model.ReportStatusPending,
		CreatedAt:   time.Now(),
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	metrics.RecordReportSubmitted()

	return report, nil
}

// ReviewReport 管理员审核报告
// Pending 是唯一可审核状态;已决的报告不允许二次审核,
// 审核人与审核时间作为审计字段一次性写入
func (s *workflowService) ReviewReport(ctx context.Context, reportID uint, req *ReviewReportRequest) (*model.Report, error) {
	status, err := parseDecision(req.Decision)
	if err != nil {
		return nil, err
	}

	var report *model.Report
	err = s.db.Transaction(func(tx *gorm.DB) error {
		reports := s.reportRepo.WithTx(tx)

		report, err = reports.FindByID(reportID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReportNotFound
			}
			return fmt.Errorf("failed to load report: %w", err)
		}

		if report.Reviewed() {
			return ErrReportAlreadyReviewed
		}

		now := time.Now()
		report.Status = status
		report.ReviewedAt = &now
		report.ReviewerName = &req.ReviewerName
		report.Remarks = req.Remarks

		if err := reports.Save(report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordReportReview(status)

	if s.auditLogSvc != nil {
		details := map[string]interface{}{"decision": status, "reviewer": req.ReviewerName}
		_ = s.auditLogSvc.RecordAction(ctx, actorFromContext(ctx), "review", "report", fmt.Sprint(reportID), details)
	}

	return report, nil
}

// parseDecision 解析审核决定
func parseDecision(decision string) (string, error) {
	switch decision {
	case "Approve", "approve", model.ReportStatusApproved:
		return model.ReportStatusApproved, nil
	case "Reject", "reject", model.ReportStatusRejected:
		return model.ReportStatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

// actorFromContext 从 context 读取操作者标识,用于审计
func actorFromContext(ctx context.Context) string {
	if v := ctx.Value("actor"); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "system"
}
